// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"

	"github.com/cpmech/surface/grd"
)

// MisfitStats summarises how well the final surface honours the data
type MisfitStats struct {
	Npt       int     // number of points entering the statistics
	Mean      float64 // mean of (estimate - observation), z units
	Rms       float64 // rms of (estimate - observation), z units
	Curvature float64 // total squared Laplacian over interior nodes, z units
}

// finalize runs the post-solve steps on the finest grid: misfit statistics,
// trend restoration, periodic exactness, raw envelope clamping and the
// extraction of the output grid (trimming the expansion pad and emulating
// pixel registration)
func (o *Engine) finalize() (g *grd.Grid, err error) {

	// misfit statistics in the detrended, normalised frame
	if o.Sim.Solver.Misfit && !o.planeOnly {
		o.Stats = o.misfit()
	}

	// back to user units
	o.restoreTrend()

	// periodic exactness: the paired boundary columns become identical
	if o.Sim.Periodic {
		for r := 0; r < o.ny; r++ {
			a := o.ij(r, 0)
			b := o.ij(r, o.nx-1)
			avg := (o.u[a] + o.u[b]) / 2.0
			o.u[a], o.u[b] = avg, avg
		}
	}

	// raw envelope clamp
	o.clampRaw()

	// curvature diagnostic on the restored grid
	if o.Stats != nil {
		o.Stats.Curvature = o.totalCurvature()
	}

	// extract the requested region
	d := &o.Sim.Data
	h := grd.Header{
		West: d.West, East: d.East, South: d.South, North: d.North,
		Dx: d.Dx, Dy: d.Dy,
		Ncol: o.Sim.Ncol, Nrow: o.Sim.Nrow,
		Registration: grd.GridlineReg,
	}
	if d.Pixel {
		h.Registration = grd.PixelReg
	}
	g = grd.New(h)
	for r := 0; r < o.Sim.Nrow; r++ {
		for c := 0; c < o.Sim.Ncol; c++ {
			g.Vals[r*o.Sim.Ncol+c] = o.u[o.ij(r+o.padN, c+o.padW)]
		}
	}
	return
}

// misfit evaluates the surface at every non-pinned data location with a
// third-order Taylor expansion around the nearest node, using central finite
// differences for the derivatives, and reports the mean and rms of
// (estimate - observation) in user z units
func (o *Engine) misfit() (s *MisfitStats) {
	s = new(MisfitStats)
	u := o.u
	cf := &o.cf
	at := func(ij, pos int) float64 { return float64(u[ij+cf.offset[pos]]) }
	var sum, sum2 float64
	for i := range o.data {
		p := &o.data[i]
		if p.Ind == OutsideIndex {
			break
		}
		r := p.Ind / o.nx
		c := p.Ind % o.nx
		ij := o.ij(r, c)
		if o.status[ij] == StatusConstrained {
			continue // pinned: the node carries the datum already
		}

		// fractional offsets (dy positive northward)
		dx := (p.X - o.nodeX(c)) / o.Sim.Data.Dx
		dy := (p.Y - o.nodeY(r)) / o.Sim.Data.Dy

		// derivatives by central differences
		u0 := float64(u[ij])
		ux := (at(ij, posE1) - at(ij, posW1)) / 2.0
		uy := (at(ij, posN1) - at(ij, posS1)) / 2.0
		uxx := at(ij, posE1) - 2.0*u0 + at(ij, posW1)
		uyy := at(ij, posN1) - 2.0*u0 + at(ij, posS1)
		uxy := (at(ij, posNE) - at(ij, posNW) - at(ij, posSE) + at(ij, posSW)) / 4.0
		uxxx := (at(ij, posE2) - 2.0*at(ij, posE1) + 2.0*at(ij, posW1) - at(ij, posW2)) / 2.0
		uyyy := (at(ij, posN2) - 2.0*at(ij, posN1) + 2.0*at(ij, posS1) - at(ij, posS2)) / 2.0
		uxxy := (at(ij, posNE) - 2.0*at(ij, posN1) + at(ij, posNW) - (at(ij, posSE) - 2.0*at(ij, posS1) + at(ij, posSW))) / 2.0
		uxyy := (at(ij, posNE) - 2.0*at(ij, posE1) + at(ij, posSE) - (at(ij, posNW) - 2.0*at(ij, posW1) + at(ij, posSW))) / 2.0

		est := u0 + dx*(ux+dx*(uxx/2.0+dx*uxxx/6.0)) +
			dy*(uy+dy*(uyy/2.0+dy*uyyy/6.0)) +
			dx*dy*(uxy+dx*uxxy/2.0+dy*uxyy/2.0)
		diff := est - p.Z
		sum += diff
		sum2 += diff * diff
		s.Npt++
	}
	if s.Npt > 0 {
		s.Mean = sum / float64(s.Npt) * o.rms
		s.Rms = math.Sqrt(sum2/float64(s.Npt)) * o.rms
	}
	return
}

// totalCurvature sums the squared five-point Laplacian over interior nodes
// of the restored grid; a display-only diagnostic
func (o *Engine) totalCurvature() (css float64) {
	u := o.u
	cf := &o.cf
	for r := 1; r < o.ny-1; r++ {
		for c := 1; c < o.nx-1; c++ {
			ij := o.ij(r, c)
			cv := float64(u[ij+cf.offset[posE1]]) + float64(u[ij+cf.offset[posW1]]) +
				float64(u[ij+cf.offset[posN1]]) + float64(u[ij+cf.offset[posS1]]) -
				4.0*float64(u[ij])
			css += cv * cv
		}
	}
	return
}
