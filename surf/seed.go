// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"
)

// initializeGrid seeds the coarsest grid. With a positive search radius the
// seed is a Gaussian moving average of nearby data, scanned through the
// bin-sorted point array; nodes with no points in range, or every node when
// the radius is zero, receive the global data mean.
func (o *Engine) initializeGrid() {
	rs := o.Sim.Solver.Radius
	if rs <= 0 {
		for r := 0; r < o.ny; r++ {
			for c := 0; c < o.nx; c++ {
				o.u[o.ij(r, c)] = float32(o.zmean)
			}
		}
		return
	}

	// first point of each bin in the sorted array
	start := make([]int, o.nx*o.ny+1)
	for i := range start {
		start[i] = -1
	}
	for i := len(o.data) - 1; i >= 0; i-- {
		if o.data[i].Ind != OutsideIndex {
			start[o.data[i].Ind] = i
		}
	}
	start[o.nx*o.ny] = len(o.data)

	// bin search window
	irad := int(math.Ceil(rs/(o.Sim.Data.Dy*float64(o.stride)))) + 1
	jrad := int(math.Ceil(rs/(o.Sim.Data.Dx*float64(o.stride)))) + 1
	rs2 := rs * rs

	for r := 0; r < o.ny; r++ {
		for c := 0; c < o.nx; c++ {
			xn, yn := o.nodeX(c), o.nodeY(r)
			var sumw, sumwz float64
			for rr := r - irad; rr <= r+irad; rr++ {
				if rr < 0 || rr >= o.ny {
					continue
				}
				for cc := c - jrad; cc <= c+jrad; cc++ {
					if cc < 0 || cc >= o.nx {
						continue
					}
					k := start[rr*o.nx+cc]
					if k < 0 {
						continue
					}
					for ; k < len(o.data) && o.data[k].Ind == rr*o.nx+cc; k++ {
						dx := o.data[k].X - xn
						dy := o.data[k].Y - yn
						d2 := dx*dx + dy*dy
						if d2 > rs2 {
							continue
						}
						w := math.Exp(-4.5 * d2 / rs2)
						sumw += w
						sumwz += w * o.data[k].Z
					}
				}
			}
			if sumw > 0 {
				o.u[o.ij(r, c)] = float32(sumwz / sumw)
			} else {
				o.u[o.ij(r, c)] = float32(o.zmean)
			}
		}
	}
}
