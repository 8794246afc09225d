// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"

	"github.com/cpmech/gosl/io"
)

// iterate runs Gauss-Seidel sweeps with successive over-relaxation at the
// current stride until the largest nodal change (in user z units) drops to
// the per-stride threshold or the sweep cap is reached. Mode 'I' polishes
// bilinear forecasts between grid-node pins; mode 'D' runs with data
// constraints in place. Constrained nodes are never touched; quadrant nodes
// consume the Briggs table in classification order.
func (o *Engine) iterate(mode byte) {
	itmax := o.Sim.Solver.NmaxIt * o.stride
	limit := o.baseLimit / float64(o.stride)
	ω := o.Sim.Solver.Omega
	u := o.u
	cf := &o.cf

	var change float64
	for it := 1; it <= itmax; it++ {
		o.applyBCs()
		change = 0.0
		ib := 0
		for r := 0; r < o.ny; r++ {
			ij := o.ij(r, 0)
			for c := 0; c < o.nx; c, ij = c+1, ij+1 {
				st := o.status[ij]
				if st == StatusConstrained {
					continue
				}
				old := float64(u[ij])
				var unew float64
				if st == StatusUnconstrained {
					for k := 0; k < 12; k++ {
						unew += cf.cf[setUnconstrained][k] * float64(u[ij+cf.offset[k]])
					}
				} else {
					for k := 0; k < 12; k++ {
						unew += cf.cf[setConstrained][k] * float64(u[ij+cf.offset[k]])
					}
					b := &o.briggs[ib]
					ib++
					var Σ float64
					for k := 0; k < 4; k++ {
						Σ += b[k] * float64(u[ij+cf.offset[cf.quad[st][k]]])
					}
					unew = (unew + cf.a0c2*(Σ+b[4])) * b[5]
				}
				unew = ω*unew + (1.0-ω)*old
				unew = o.clipLimits(r, c, unew)
				if d := math.Abs(unew - old); d > change {
					change = d
				}
				u[ij] = float32(unew)
			}
		}
		o.totalIter++
		chz := change * o.rms
		o.Records = append(o.Records, Record{o.stride, mode, it, chz, limit, o.totalIter})
		if o.Verbose {
			io.Pf("%4d %c %5d  max_change=%13.6e  limit=%13.6e  total=%6d\n", o.stride, mode, it, chz, limit, o.totalIter)
		}
		if chz <= limit {
			return
		}
	}
	io.Pfyel("note: stride %d (%c) stopped at the sweep cap (%d) with max change %g above the limit %g\n",
		o.stride, mode, itmax, change*o.rms, limit)
}
