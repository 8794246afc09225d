// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// Plane holds least-squares plane parameters in fractional grid coordinates:
// z ≈ Icept + Sx*col + Sy*rowFromSouth (raw z units, fine-grid cells)
type Plane struct {
	Icept float64 // intercept at the south-west corner
	Sx    float64 // slope per column
	Sy    float64 // slope per row, counted from the south
}

// F evaluates the plane at fractional (column, row-from-south) coordinates
func (o Plane) F(col, rowS float64) float64 {
	return o.Icept + o.Sx*col + o.Sy*rowS
}

// detrend fits and removes the best-fit plane from the data, normalises the
// residuals by their rms, and resolves the convergence limit. Periodic grids
// force the x slope to zero. A residual rms below 1e-8 marks the plane-only
// outcome: the data lie exactly on a plane and no iteration is needed.
func (o *Engine) detrend() {

	// normal equations in fractional (col, row-from-south) coordinates
	dx, dy := o.Sim.Data.Dx, o.Sim.Data.Dy
	n := float64(len(o.data))
	A := la.MatAlloc(3, 3)
	b := make([]float64, 3)
	for _, p := range o.data {
		cx := (p.X - o.xmin) / dx
		cy := (p.Y - o.ymin) / dy
		A[0][0] += 1
		A[0][1] += cx
		A[0][2] += cy
		A[1][1] += cx * cx
		A[1][2] += cx * cy
		A[2][2] += cy * cy
		b[0] += p.Z
		b[1] += p.Z * cx
		b[2] += p.Z * cy
	}
	A[1][0], A[2][0], A[2][1] = A[0][1], A[0][2], A[1][2]

	// solve; singular systems fall back to reduced fits so that degenerate
	// (colinear or constant) data still yield their exact plane
	if o.Sim.Periodic {
		// x is a wrap: fit intercept and south-north slope only
		det := A[0][0]*A[2][2] - A[0][2]*A[0][2]
		if math.Abs(det) > 1e-12 {
			o.pl.Icept = (b[0]*A[2][2] - b[2]*A[0][2]) / det
			o.pl.Sy = (A[0][0]*b[2] - A[0][2]*b[0]) / det
		} else {
			o.pl.Icept = b[0] / A[0][0]
		}
		o.pl.Sx = 0
	} else {
		det := A[0][0]*(A[1][1]*A[2][2]-A[1][2]*A[2][1]) -
			A[0][1]*(A[1][0]*A[2][2]-A[1][2]*A[2][0]) +
			A[0][2]*(A[1][0]*A[2][1]-A[1][1]*A[2][0])
		detX := A[0][0]*A[1][1] - A[0][1]*A[0][1]
		detY := A[0][0]*A[2][2] - A[0][2]*A[0][2]
		switch {
		case math.Abs(det) > 1e-12:
			o.pl.Icept = (b[0]*(A[1][1]*A[2][2]-A[1][2]*A[2][1]) -
				A[0][1]*(b[1]*A[2][2]-A[1][2]*b[2]) +
				A[0][2]*(b[1]*A[2][1]-A[1][1]*b[2])) / det
			o.pl.Sx = (A[0][0]*(b[1]*A[2][2]-A[1][2]*b[2]) -
				b[0]*(A[1][0]*A[2][2]-A[1][2]*A[2][0]) +
				A[0][2]*(A[1][0]*b[2]-b[1]*A[2][0])) / det
			o.pl.Sy = (A[0][0]*(A[1][1]*b[2]-b[1]*A[2][1]) -
				A[0][1]*(A[1][0]*b[2]-b[1]*A[2][0]) +
				b[0]*(A[1][0]*A[2][1]-A[1][1]*A[2][0])) / det
		case math.Abs(detX) > 1e-12:
			o.pl.Icept = (b[0]*A[1][1] - b[1]*A[0][1]) / detX
			o.pl.Sx = (A[0][0]*b[1] - A[0][1]*b[0]) / detX
		case math.Abs(detY) > 1e-12:
			o.pl.Icept = (b[0]*A[2][2] - b[2]*A[0][2]) / detY
			o.pl.Sy = (A[0][0]*b[2] - A[0][2]*b[0]) / detY
		default:
			o.pl.Icept = b[0] / A[0][0]
		}
	}

	// subtract plane and compute residual rms
	res := make([]float64, len(o.data))
	for i := range o.data {
		p := &o.data[i]
		cx := (p.X - o.xmin) / dx
		cy := (p.Y - o.ymin) / dy
		p.Z -= o.pl.F(cx, cy)
		res[i] = p.Z
	}
	o.rms = la.VecNorm(res) / math.Sqrt(n)

	// plane-only outcome
	if o.rms < 1e-8 {
		o.planeOnly = true
		o.rms = 1.0
		return
	}

	// normalise
	o.zmean = 0
	for i := range o.data {
		o.data[i].Z /= o.rms
		o.zmean += o.data[i].Z
	}
	o.zmean /= n

	// convergence limit in raw z units
	s := &o.Sim.Solver
	switch {
	case s.ConvPct > 0:
		o.baseLimit = s.ConvPct / 100.0 * o.rms
	case s.ConvLimit > 0:
		o.baseLimit = s.ConvLimit
	default:
		o.baseLimit = 1e-4 * o.rms
	}
}

// planeAtNode evaluates the fitted plane at a node of the current stride
// (raw z units)
func (o *Engine) planeAtNode(r, c int) float64 {
	col := float64(c * o.stride)
	rowS := float64(o.nrow - 1 - r*o.stride)
	return o.pl.F(col, rowS)
}

// restoreTrend multiplies every node by the rms and adds the plane back
func (o *Engine) restoreTrend() {
	for r := 0; r < o.ny; r++ {
		for c := 0; c < o.nx; c++ {
			ij := o.ij(r, c)
			o.u[ij] = float32(float64(o.u[ij])*o.rms + o.planeAtNode(r, c))
		}
	}
}
