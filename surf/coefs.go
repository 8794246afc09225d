// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"github.com/cpmech/gosl/io"
)

// stencil positions in padded linear order (rows run north to south, so
// "N" positions have smaller linear indices)
const (
	posN2 = iota // ( 0,+2)
	posNW        // (-1,+1)
	posN1        // ( 0,+1)
	posNE        // (+1,+1)
	posW2        // (-2, 0)
	posW1        // (-1, 0)
	posE1        // (+1, 0)
	posE2        // (+2, 0)
	posSW        // (-1,-1)
	posS1        // ( 0,-1)
	posSE        // (+1,-1)
	posS2        // ( 0,-2)
)

// coefficient sets
const (
	setUnconstrained = 0 // node with no nearby datum
	setConstrained   = 1 // node with a Briggs (off-node) datum
)

// Coefs calculates the 12-node stencil coefficients, the Briggs normalisation
// constants and the boundary-condition constants from the tension factors and
// the aspect ratio. The offset table depends on the padded row width of the
// current stride and must be recomputed whenever it changes.
//  Notes:
//   tb -- boundary tension [0 <= tb <= 1]
//   ti -- interior tension [0 <= ti <= 1]
//   α  -- aspect ratio (dy/dx weight, or cos(mid-lat) for geographic grids)
type Coefs struct {

	// input
	tb, ti, α float64

	// stencil
	offset [12]int        // padded linear offsets of the 12 stencil positions
	cf     [2][12]float64 // [set][position] update coefficients

	// Briggs normalisation
	a0c1, a0c2 float64

	// boundary conditions: first normal derivative
	x0, x1 float64 // west/east ghost constants
	y0, y1 float64 // south/north ghost constants

	// boundary conditions: second ring
	a2, twoPlusA2       float64 // α² and its doubled-plus-two form (west/east)
	invA2, twoPlusInvA2 float64 // 1/α² and its doubled-plus-two form (south/north)

	// quadrant position tables: the four stencil positions whose values
	// enter the Briggs correction, indexed by status Quad1..Quad4
	quad [5][4]int
}

// Init initialises the tension/aspect-dependent constants
func (o *Coefs) Init(tb, ti, α float64) {

	o.tb, o.ti, o.α = tb, ti, α
	α2 := α * α
	α4 := α2 * α2
	loose := 1.0 - ti
	a0 := 1.0 / (6.0*α4*loose + 10.0*α2*loose + 8.0*loose - 2.0*(1.0+α2) + 4.0*ti*(1.0+α2))

	// constrained set (raw, normalised later by the Briggs b5 factor)
	o.cf[setConstrained][posW2] = -loose
	o.cf[setConstrained][posE2] = -loose
	o.cf[setConstrained][posN2] = -loose * α4
	o.cf[setConstrained][posS2] = -loose * α4
	o.cf[setConstrained][posW1] = 2.0 * loose * (1.0 + α2)
	o.cf[setConstrained][posE1] = o.cf[setConstrained][posW1]
	o.cf[setConstrained][posN1] = 2.0 * loose * α2 * (1.0 + α2)
	o.cf[setConstrained][posS1] = o.cf[setConstrained][posN1]
	for _, k := range []int{posNW, posNE, posSW, posSE} {
		o.cf[setConstrained][k] = -2.0 * loose * α2
	}

	// unconstrained set
	o.cf[setUnconstrained][posW2] = -loose * a0
	o.cf[setUnconstrained][posE2] = o.cf[setUnconstrained][posW2]
	o.cf[setUnconstrained][posN2] = -loose * α4 * a0
	o.cf[setUnconstrained][posS2] = o.cf[setUnconstrained][posN2]
	o.cf[setUnconstrained][posW1] = (4.0*loose*(1.0+α2) + ti) * a0
	o.cf[setUnconstrained][posE1] = o.cf[setUnconstrained][posW1]
	o.cf[setUnconstrained][posN1] = α2 * o.cf[setUnconstrained][posW1]
	o.cf[setUnconstrained][posS1] = o.cf[setUnconstrained][posN1]
	for _, k := range []int{posNW, posNE, posSW, posSE} {
		o.cf[setUnconstrained][k] = -2.0 * loose * α2 * a0
	}

	// Briggs normalisation constants
	o.a0c1 = 2.0 * loose * (1.0 + α4)
	o.a0c2 = 2.0 - ti + 2.0*loose*α2

	// first normal derivative constants
	o.x0 = 4.0 * (1.0 - tb) / (2.0 - tb)
	o.x1 = (3.0*tb - 2.0) / (2.0 - tb)
	ydenom := 2.0*α*(1.0-tb) + tb
	o.y0 = 4.0 * α * (1.0 - tb) / ydenom
	o.y1 = (tb - 2.0*α*(1.0-tb)) / ydenom

	// α² and 1/α² for the outer-ring conditions; the edge-difference terms
	// carry them doubled
	o.a2 = α2
	o.twoPlusA2 = 2.0 + 2.0*α2
	o.invA2 = 1.0 / α2
	o.twoPlusInvA2 = 2.0 + 2.0/α2

	// quadrant position tables. The Q1 table is the unique lattice choice
	// making planes exact fixed points of the constrained update
	// (Σ b_k·p_k = -(4/Δ)·(xx,yy)); the others follow from the same
	// rotations used to reflect the data offset into quadrant 1.
	o.quad[StatusQuad1] = [4]int{posNW, posW1, posS1, posSE}
	o.quad[StatusQuad2] = [4]int{posSW, posS1, posE1, posNE}
	o.quad[StatusQuad3] = [4]int{posSE, posE1, posN1, posNW}
	o.quad[StatusQuad4] = [4]int{posNE, posN1, posW1, posSW}
}

// SetOffsets recomputes the stencil offset table for a padded row width
func (o *Coefs) SetOffsets(mx int) {
	o.offset[posN2] = -2 * mx
	o.offset[posNW] = -mx - 1
	o.offset[posN1] = -mx
	o.offset[posNE] = -mx + 1
	o.offset[posW2] = -2
	o.offset[posW1] = -1
	o.offset[posE1] = 1
	o.offset[posE2] = 2
	o.offset[posSW] = mx - 1
	o.offset[posS1] = mx
	o.offset[posSE] = mx + 1
	o.offset[posS2] = 2 * mx
}

// Print prints coefficients
func (o *Coefs) Print() {
	io.Pfgrey("tb=%v, ti=%v, α=%v\n", o.tb, o.ti, o.α)
	io.Pfgrey("unconstrained = %v\n", o.cf[setUnconstrained])
	io.Pfgrey("constrained   = %v\n", o.cf[setConstrained])
	io.Pfgrey("a0c1=%v, a0c2=%v\n", o.a0c1, o.a0c2)
	io.Pfgrey("x0=%v, x1=%v, y0=%v, y1=%v\n", o.x0, o.x1, o.y0, o.y1)
}
