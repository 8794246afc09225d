// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/fun"
)

// PlaneSurface computes the exact gridded surface for data lying on a plane
//
//	z(x,y) = c0 + cx*x + cy*y
//
// Any minimum-curvature surface honouring plane data exactly reproduces the
// plane, so this is the reference for the trend round-trip checks.
type PlaneSurface struct {
	// input
	C0 float64 // intercept
	Cx float64 // slope in x
	Cy float64 // slope in y
}

// Init initialises this structure
func (o *PlaneSurface) Init(prms fun.Prms) {

	// default values
	o.C0 = 0.0
	o.Cx = 1.0
	o.Cy = 0.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "c0":
			o.C0 = p.V
		case "cx":
			o.Cx = p.V
		case "cy":
			o.Cy = p.V
		}
	}
}

// F returns the surface value at (x, y)
func (o *PlaneSurface) F(x, y float64) float64 {
	return o.C0 + o.Cx*x + o.Cy*y
}

// Sample evaluates the plane at the given scattered locations
func (o *PlaneSurface) Sample(X, Y []float64) (Z []float64) {
	Z = make([]float64, len(X))
	for i := range X {
		Z[i] = o.F(X[i], Y[i])
	}
	return
}
