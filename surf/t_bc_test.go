// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_bc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bc01. ghost values extend planes exactly")

	for _, α := range []float64{1.0, 0.5} {
		sim := testSim(0, 10, 0, 10, 1, 1, false)
		sim.Solver.Aspect = α
		if err := sim.PostProcess(); err != nil {
			tst.Errorf("PostProcess failed: %v\n", err)
			return
		}
		eng := New(sim, false)
		eng.cf.Init(sim.TensB, sim.TensI, sim.Aspect)
		eng.setGridParams(1)

		// plane over (row, col) node coordinates
		f := func(r, c int) float64 { return 3.0 + 0.25*float64(c) - 0.5*float64(r) }
		for r := 0; r < eng.ny; r++ {
			for c := 0; c < eng.nx; c++ {
				eng.u[eng.ij(r, c)] = float32(f(r, c))
			}
		}
		eng.applyBCs()

		// with zero tension the ghost rows continue the plane
		for c := 0; c < eng.nx; c++ {
			chk.Scalar(tst, io.Sf("α=%g north ghost 1 [%d]", α, c), 1e-4, float64(eng.u[eng.ij(-1, c)]), f(-1, c))
			chk.Scalar(tst, io.Sf("α=%g north ghost 2 [%d]", α, c), 1e-4, float64(eng.u[eng.ij(-2, c)]), f(-2, c))
			chk.Scalar(tst, io.Sf("α=%g south ghost 1 [%d]", α, c), 1e-4, float64(eng.u[eng.ij(eng.ny, c)]), f(eng.ny, c))
			chk.Scalar(tst, io.Sf("α=%g south ghost 2 [%d]", α, c), 1e-4, float64(eng.u[eng.ij(eng.ny+1, c)]), f(eng.ny+1, c))
		}
		for r := 0; r < eng.ny; r++ {
			chk.Scalar(tst, io.Sf("α=%g west ghost 2 [%d]", α, r), 1e-4, float64(eng.u[eng.ij(r, -2)]), f(r, -2))
			chk.Scalar(tst, io.Sf("α=%g east ghost 2 [%d]", α, r), 1e-4, float64(eng.u[eng.ij(r, eng.nx+1)]), f(r, eng.nx+1))
		}

		// a relaxation sweep leaves the plane in place
		eng.rms = 1.0
		eng.baseLimit = 1e-3
		eng.iterate('I')
		chk.IntAssert(len(eng.Records), 1)
		for r := 0; r < eng.ny; r++ {
			for c := 0; c < eng.nx; c++ {
				chk.Scalar(tst, io.Sf("α=%g u[%d][%d]", α, r, c), 1e-3, float64(eng.u[eng.ij(r, c)]), f(r, c))
			}
		}
	}
}
