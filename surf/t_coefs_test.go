// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// geometric (x east, y north) offsets of the stencil positions
var posXY = [12][2]float64{
	posN2: {0, 2}, posNW: {-1, 1}, posN1: {0, 1}, posNE: {1, 1},
	posW2: {-2, 0}, posW1: {-1, 0}, posE1: {1, 0}, posE2: {2, 0},
	posSW: {-1, -1}, posS1: {0, -1}, posSE: {1, -1}, posS2: {0, -2},
}

func Test_coefs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coefs01. stencil coefficient identities")

	for _, ti := range []float64{0.0, 0.25, 0.75, 1.0} {
		for _, α := range []float64{0.5, 1.0, 2.0} {
			var cf Coefs
			cf.Init(0.0, ti, α)

			// a constant surface must be a fixed point of the free update
			sum := 0.0
			for k := 0; k < 12; k++ {
				sum += cf.cf[setUnconstrained][k]
			}
			io.Pforan("ti=%v α=%v: Σ unconstrained = %v\n", ti, α, sum)
			chk.Scalar(tst, "Σ unconstrained", 1e-14, sum, 1.0)

			// the constrained-set row sums to the first Briggs constant
			sum = 0.0
			for k := 0; k < 12; k++ {
				sum += cf.cf[setConstrained][k]
			}
			chk.Scalar(tst, "Σ constrained", 1e-14, sum, cf.a0c1)

			// anisotropy couples the axes by α²
			chk.Scalar(tst, "N1 = α²*W1", 1e-14, cf.cf[setUnconstrained][posN1], α*α*cf.cf[setUnconstrained][posW1])
		}
	}
}

func Test_coefs02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coefs02. Briggs first-moment identity per quadrant")

	var cf Coefs
	cf.Init(0.0, 0.0, 1.0)

	// for any datum offset, the quadrant table and coefficients must
	// reproduce planes exactly: Σ b_k·p_k = -(4/Δ)·(dx, dy)
	offsets := [][2]float64{
		{0.3, 0.4}, {0.49, 0.07}, {-0.3, 0.4}, {-0.45, 0.1},
		{-0.2, -0.35}, {-0.49, -0.49}, {0.25, -0.4}, {0.07, -0.49},
	}
	for _, d := range offsets {
		dx, dy := d[0], d[1]

		// reflection into quadrant 1
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
		b := briggsCoefs(xx, yy, 1.0, cf.a0c1, cf.a0c2)
		Δ := (xx + yy) * (1.0 + xx + yy)
		b4 := 4.0 / Δ

		// moments of the quadrant position table
		var mx, my float64
		for k := 0; k < 4; k++ {
			p := posXY[cf.quad[st][k]]
			mx += b[k] * p[0]
			my += b[k] * p[1]
		}
		io.Pforan("(%+5.2f,%+5.2f) Q%d: moments = (%v, %v)\n", dx, dy, st, mx, my)
		chk.Scalar(tst, "Σ b_k x_k", 1e-13, mx, -b4*dx)
		chk.Scalar(tst, "Σ b_k y_k", 1e-13, my, -b4*dy)

		// the premultiplied data term
		chk.Scalar(tst, "b4", 1e-14, b[4], b4)
	}
}

func Test_coefs03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("coefs03. offset table follows the padded row width")

	var cf Coefs
	cf.Init(0.0, 0.0, 1.0)
	for _, mx := range []int{10, 25} {
		cf.SetOffsets(mx)
		chk.IntAssert(cf.offset[posN2], -2*mx)
		chk.IntAssert(cf.offset[posNW], -mx-1)
		chk.IntAssert(cf.offset[posSE], mx+1)
		chk.IntAssert(cf.offset[posE2], 2)
		chk.IntAssert(cf.offset[posS2], 2*mx)
	}
}
