// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

// applyBCs enforces the boundary conditions on the two ghost rows/columns of
// every edge, in the order: first-normal-derivative ghosts, periodic copies
// or x ghosts, corner cross-derivatives, outer-ring conditions. It must run
// before every relaxation sweep.
func (o *Engine) applyBCs() {
	u := o.u
	cf := &o.cf
	nx, ny := o.nx, o.ny

	// first normal derivative on the south/north edges:
	// (1-tb)*d2u/dn2 + tb*du/dn = 0
	for c := 0; c < nx; c++ {
		u[o.ij(-1, c)] = float32(cf.y0*float64(u[o.ij(0, c)]) + cf.y1*float64(u[o.ij(1, c)]))
		u[o.ij(ny, c)] = float32(cf.y0*float64(u[o.ij(ny-1, c)]) + cf.y1*float64(u[o.ij(ny-2, c)]))
	}

	if o.Sim.Periodic {
		// average the paired edge nodes, then copy the ghost columns from
		// the opposite edge (the first ghost rows wrap as well)
		for r := 0; r < ny; r++ {
			avg := (float64(u[o.ij(r, 0)]) + float64(u[o.ij(r, nx-1)])) / 2.0
			u[o.ij(r, 0)] = float32(avg)
			u[o.ij(r, nx-1)] = float32(avg)
		}
		for r := -1; r <= ny; r++ {
			u[o.ij(r, -1)] = u[o.ij(r, nx-2)]
			u[o.ij(r, -2)] = u[o.ij(r, nx-3)]
			u[o.ij(r, nx)] = u[o.ij(r, 1)]
			u[o.ij(r, nx+1)] = u[o.ij(r, 2)]
		}
	} else {
		// first normal derivative on the west/east edges
		for r := 0; r < ny; r++ {
			u[o.ij(r, -1)] = float32(cf.x1*float64(u[o.ij(r, 1)]) + cf.x0*float64(u[o.ij(r, 0)]))
			u[o.ij(r, nx)] = float32(cf.x1*float64(u[o.ij(r, nx-2)]) + cf.x0*float64(u[o.ij(r, nx-1)]))
		}

		// corner cross derivatives: d2u/dxdy = 0
		u[o.ij(-1, -1)] = u[o.ij(-1, 0)] + u[o.ij(0, -1)] - u[o.ij(0, 0)]
		u[o.ij(-1, nx)] = u[o.ij(-1, nx-1)] + u[o.ij(0, nx)] - u[o.ij(0, nx-1)]
		u[o.ij(ny, -1)] = u[o.ij(ny, 0)] + u[o.ij(ny-1, -1)] - u[o.ij(ny-1, 0)]
		u[o.ij(ny, nx)] = u[o.ij(ny, nx-1)] + u[o.ij(ny-1, nx)] - u[o.ij(ny-1, nx-1)]
	}

	// outer ring on the south/north edges: dC/dn = 0
	for c := 0; c < nx; c++ {
		u[o.ij(-2, c)] = float32(float64(u[o.ij(2, c)]) +
			cf.invA2*(float64(u[o.ij(1, c-1)])+float64(u[o.ij(1, c+1)])-float64(u[o.ij(-1, c-1)])-float64(u[o.ij(-1, c+1)])) +
			cf.twoPlusInvA2*(float64(u[o.ij(-1, c)])-float64(u[o.ij(1, c)])))
		u[o.ij(ny+1, c)] = float32(float64(u[o.ij(ny-3, c)]) +
			cf.invA2*(float64(u[o.ij(ny-2, c-1)])+float64(u[o.ij(ny-2, c+1)])-float64(u[o.ij(ny, c-1)])-float64(u[o.ij(ny, c+1)])) +
			cf.twoPlusInvA2*(float64(u[o.ij(ny, c)])-float64(u[o.ij(ny-2, c)])))
	}

	// outer ring on the west/east edges; periodic grids already wrapped
	if o.Sim.Periodic {
		for r := -2; r <= ny+1; r++ {
			u[o.ij(r, -1)] = u[o.ij(r, nx-2)]
			u[o.ij(r, -2)] = u[o.ij(r, nx-3)]
			u[o.ij(r, nx)] = u[o.ij(r, 1)]
			u[o.ij(r, nx+1)] = u[o.ij(r, 2)]
		}
		return
	}
	for r := 0; r < ny; r++ {
		u[o.ij(r, -2)] = float32(float64(u[o.ij(r, 2)]) +
			cf.a2*(float64(u[o.ij(r-1, 1)])+float64(u[o.ij(r+1, 1)])-float64(u[o.ij(r-1, -1)])-float64(u[o.ij(r+1, -1)])) +
			cf.twoPlusA2*(float64(u[o.ij(r, -1)])-float64(u[o.ij(r, 1)])))
		u[o.ij(r, nx+1)] = float32(float64(u[o.ij(r, nx-3)]) +
			cf.a2*(float64(u[o.ij(r-1, nx-2)])+float64(u[o.ij(r+1, nx-2)])-float64(u[o.ij(r-1, nx)])-float64(u[o.ij(r+1, nx)])) +
			cf.twoPlusA2*(float64(u[o.ij(r, nx)])-float64(u[o.ij(r, nx-2)])))
	}
}
