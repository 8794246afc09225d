// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"github.com/cpmech/gosl/fun"
)

// BilinearPatch computes the bilinear interpolant between four corner values
// over the rectangle [x0,x1] x [y0,y1]. With unit aspect ratio and zero
// tension, the relaxation converges to this interpolant when only the four
// corners are constrained.
type BilinearPatch struct {

	// input
	X0, X1 float64 // west and east edges
	Y0, Y1 float64 // south and north edges
	U00    float64 // value at (x0, y0)
	U10    float64 // value at (x1, y0)
	U01    float64 // value at (x0, y1)
	U11    float64 // value at (x1, y1)
}

// Init initialises this structure
func (o *BilinearPatch) Init(prms fun.Prms) {

	// default values
	o.X0, o.X1 = 0.0, 1.0
	o.Y0, o.Y1 = 0.0, 1.0

	// parameters
	for _, p := range prms {
		switch p.N {
		case "x0":
			o.X0 = p.V
		case "x1":
			o.X1 = p.V
		case "y0":
			o.Y0 = p.V
		case "y1":
			o.Y1 = p.V
		case "u00":
			o.U00 = p.V
		case "u10":
			o.U10 = p.V
		case "u01":
			o.U01 = p.V
		case "u11":
			o.U11 = p.V
		}
	}
}

// F returns the interpolant at (x, y)
func (o *BilinearPatch) F(x, y float64) float64 {
	fx := (x - o.X0) / (o.X1 - o.X0)
	fy := (y - o.Y0) / (o.Y1 - o.Y0)
	return (1.0-fx)*(1.0-fy)*o.U00 + fx*(1.0-fy)*o.U10 + (1.0-fx)*fy*o.U01 + fx*fy*o.U11
}
