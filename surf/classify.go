// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"
)

// pinTol is the fraction of the cell size below which a datum pins its node
const pinTol = 0.05

// classify resets every node status and walks the sorted points, turning the
// first point of each occupied bin into either a pinned node (datum within 5%
// of the cell size) or a Briggs (off-node) constraint with quadrant status.
// The Briggs table is rebuilt in bin order, which is also the row-major order
// the relaxation sweep consumes it in.
func (o *Engine) classify() {

	// reset
	for r := 0; r < o.ny; r++ {
		for c := 0; c < o.nx; c++ {
			o.status[o.ij(r, c)] = StatusUnconstrained
		}
	}
	o.briggs = o.briggs[:0]

	// walk sorted points; only the first point of each bin contributes
	dxc := o.Sim.Data.Dx * float64(o.stride)
	dyc := o.Sim.Data.Dy * float64(o.stride)
	last := -1
	for i := range o.data {
		p := &o.data[i]
		if p.Ind == OutsideIndex {
			break
		}
		if p.Ind == last {
			continue
		}
		last = p.Ind
		r := p.Ind / o.nx
		c := p.Ind % o.nx
		ij := o.ij(r, c)

		// fractional offset of the datum from the node (dy positive northward)
		dx := (p.X - o.nodeX(c)) / dxc
		dy := (p.Y - o.nodeY(r)) / dyc

		// pin the node when the datum is close enough
		if math.Abs(dx) < pinTol && math.Abs(dy) < pinTol {
			o.status[ij] = StatusConstrained
			v := p.Z + float64(o.stride)/o.rms*(o.pl.Sx*dx+o.pl.Sy*dy)
			o.u[ij] = float32(o.clipLimits(r, c, v))
			continue
		}

		// reflect the offset into quadrant 1 and record the quadrant status
		var xx, yy float64
		var st byte
		switch {
		case dx >= 0 && dy >= 0:
			st, xx, yy = StatusQuad1, dx, dy
		case dx < 0 && dy >= 0:
			st, xx, yy = StatusQuad2, dy, -dx
		case dx < 0 && dy < 0:
			st, xx, yy = StatusQuad3, -dx, -dy
		default:
			st, xx, yy = StatusQuad4, -dy, dx
		}
		o.status[ij] = st
		o.briggs = append(o.briggs, briggsCoefs(xx, yy, p.Z, o.cf.a0c1, o.cf.a0c2))
	}
}

// briggsCoefs computes the six coefficients encoding an off-node datum at
// normalised offset (xx, yy) >= 0 with value z. The first four weight the
// quadrant position table, the fifth is the data term 4/Δ premultiplied by z,
// and the sixth is the ready-to-multiply update normalisation.
func briggsCoefs(xx, yy, z, a0c1, a0c2 float64) (b [6]float64) {
	s := xx + yy
	Δ := s * (1.0 + s)
	b[0] = (xx*xx + 2.0*xx*yy + xx - yy*yy - yy) / Δ
	b[1] = 2.0 * (yy - xx + 1.0) / (1.0 + s)
	b[2] = 2.0 * (xx - yy + 1.0) / (1.0 + s)
	b[3] = (-xx*xx + 2.0*xx*yy - xx + yy*yy + yy) / Δ
	b4 := 4.0 / Δ
	b[4] = b4 * z
	sum := b[0] + b[1] + b[2] + b[3] + b4
	b[5] = 1.0 / (a0c1 + a0c2*sum)
	return
}
