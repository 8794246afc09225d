// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

// fillInForecast relocates the nodes of the previous (coarser) stride into
// the new compact layout and fills the in-between nodes with a bilinear
// forecast. Old node positions become trusted pins (CONSTRAINED) for the
// polishing pass; interpolated nodes are free. Must run right after
// setGridParams switched the engine to the finer stride.
func (o *Engine) fillInForecast(oldStride int) {
	e := oldStride / o.stride
	oldNx := (o.ncol-1)/oldStride + 1
	oldNy := (o.nrow-1)/oldStride + 1
	oldMx := oldNx + 4
	u := o.u

	// relocate in reverse: destinations always have larger linear indices
	for r := oldNy - 1; r >= 0; r-- {
		for c := oldNx - 1; c >= 0; c-- {
			u[o.ij(r*e, c*e)] = u[(r+2)*oldMx+c+2]
		}
	}

	// bilinear forecast inside each bin square, excluding the 00 corner
	for r0 := 0; r0 < oldNy-1; r0++ {
		for c0 := 0; c0 < oldNx-1; c0++ {
			u00 := float64(u[o.ij(r0*e, c0*e)])
			u10 := float64(u[o.ij(r0*e, (c0+1)*e)])
			u01 := float64(u[o.ij((r0+1)*e, c0*e)])
			u11 := float64(u[o.ij((r0+1)*e, (c0+1)*e)])
			cc := u00
			sx := u10 - cc
			sy := u01 - cc
			sxy := u11 - u10 - sy
			for ky := 0; ky < e; ky++ {
				fy := float64(ky) / float64(e)
				for kx := 0; kx < e; kx++ {
					if kx == 0 && ky == 0 {
						continue
					}
					fx := float64(kx) / float64(e)
					u[o.ij(r0*e+ky, c0*e+kx)] = float32((cc + sy*fy) + fx*(sx+sxy*fy))
				}
			}
		}
	}

	// 1-D interpolation along the remaining far edges
	lastR := (oldNy - 1) * e
	for c0 := 0; c0 < oldNx-1; c0++ {
		ua := float64(u[o.ij(lastR, c0*e)])
		ub := float64(u[o.ij(lastR, (c0+1)*e)])
		for kx := 1; kx < e; kx++ {
			f := float64(kx) / float64(e)
			u[o.ij(lastR, c0*e+kx)] = float32(ua + f*(ub-ua))
		}
	}
	lastC := (oldNx - 1) * e
	for r0 := 0; r0 < oldNy-1; r0++ {
		ua := float64(u[o.ij(r0*e, lastC)])
		ub := float64(u[o.ij((r0+1)*e, lastC)])
		for ky := 1; ky < e; ky++ {
			f := float64(ky) / float64(e)
			u[o.ij(r0*e+ky, lastC)] = float32(ua + f*(ub-ua))
		}
	}

	// old nodes are trusted pins for the polishing pass
	o.briggs = o.briggs[:0]
	for r := 0; r < o.ny; r++ {
		for c := 0; c < o.nx; c++ {
			if r%e == 0 && c%e == 0 {
				o.status[o.ij(r, c)] = StatusConstrained
			} else {
				o.status[o.ij(r, c)] = StatusUnconstrained
			}
		}
	}
}
