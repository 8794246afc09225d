// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/surface/grd"

	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// PlotGrid draws a filled contour of a grid, optionally overlaying the data
// locations, and saves the figure
//  Input:
//   g        -- grid to plot
//   X, Y     -- data locations to overlay; may be nil
//   dirout   -- output directory
//   fnkey    -- filename key; figure is saved as <fnkey>.eps
func PlotGrid(g *grd.Grid, X, Y []float64, dirout, fnkey string) {

	// mesh coordinates
	nc, nr := g.Head.Ncol, g.Head.Nrow
	xx := utl.DblsAlloc(nr, nc)
	yy := utl.DblsAlloc(nr, nc)
	zz := utl.DblsAlloc(nr, nc)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			xx[r][c] = g.X(c)
			yy[r][c] = g.Y(r)
			zz[r][c] = g.At(r, c)
		}
	}

	// contour and overlay
	plt.SetForEps(0.8, 400)
	plt.Contour(xx, yy, zz, "")
	if X != nil {
		plt.Plot(X, Y, "'k.', clip_on=0")
	}
	plt.Gll("x", "y", "")
	plt.Equal()
	plt.SaveD(dirout, fnkey+".eps")
}
