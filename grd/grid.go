// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grd implements a rectangular grid container with region metadata
package grd

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// registration modes
const (
	GridlineReg = 0 // nodes sit on gridlines; Ncol*Nrow values span the region inclusively
	PixelReg    = 1 // values are cell averages; node coordinates are cell centres
)

// Header holds region metadata for a grid
type Header struct {
	West         float64 // minimum x
	East         float64 // maximum x
	South        float64 // minimum y
	North        float64 // maximum y
	Dx           float64 // x increment
	Dy           float64 // y increment
	Ncol         int     // number of columns
	Nrow         int     // number of rows
	Registration int     // GridlineReg or PixelReg
}

// Grid holds a rectangular grid of single-precision values stored row-major,
// rows running north to south and columns west to east
type Grid struct {
	Head Header    // region metadata
	Vals []float32 // [Nrow*Ncol] values; NaN means hole
}

// New returns a new grid with an allocated (zeroed) value array
func New(h Header) (o *Grid) {
	o = new(Grid)
	o.Head = h
	o.Vals = make([]float32, h.Ncol*h.Nrow)
	return
}

// At returns the value at row (from north) and column (from west)
func (o *Grid) At(row, col int) float64 {
	return float64(o.Vals[row*o.Head.Ncol+col])
}

// Set sets the value at row and column
func (o *Grid) Set(row, col int, v float64) {
	o.Vals[row*o.Head.Ncol+col] = float32(v)
}

// X returns the x coordinate of column col
func (o *Grid) X(col int) float64 {
	if o.Head.Registration == PixelReg {
		return o.Head.West + (float64(col)+0.5)*o.Head.Dx
	}
	return o.Head.West + float64(col)*o.Head.Dx
}

// Y returns the y coordinate of row row (row 0 is the northernmost)
func (o *Grid) Y(row int) float64 {
	if o.Head.Registration == PixelReg {
		return o.Head.North - (float64(row)+0.5)*o.Head.Dy
	}
	return o.Head.North - float64(row)*o.Head.Dy
}

// MinMax returns the smallest and largest non-NaN values
func (o *Grid) MinMax() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range o.Vals {
		f := float64(v)
		if math.IsNaN(f) {
			continue
		}
		lo = math.Min(lo, f)
		hi = math.Max(hi, f)
	}
	return
}

// CheckShape returns an error unless the grid has the given dimensions
func (o *Grid) CheckShape(ncol, nrow int) (err error) {
	if o.Head.Ncol != ncol || o.Head.Nrow != nrow {
		return chk.Err("grid has %d x %d values but %d x %d are required", o.Head.Ncol, o.Head.Nrow, ncol, nrow)
	}
	return
}
