// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements reporting and plotting of gridding results
package out

import (
	"github.com/cpmech/surface/surf"

	"github.com/cpmech/gosl/io"
)

// PrintConvergence prints the per-sweep convergence log as a table
func PrintConvergence(records []surf.Record) {
	if len(records) == 0 {
		io.Pf("no relaxation sweeps were run\n")
		return
	}
	io.Pf("%6s %4s %6s %15s %15s %8s\n", "stride", "mode", "sweep", "max_change", "limit", "total")
	for _, r := range records {
		io.Pf("%6d %4c %6d %15.6e %15.6e %8d\n", r.Stride, r.Mode, r.Sweep, r.MaxChange, r.Limit, r.Total)
	}
}

// PrintMisfit prints the misfit statistics
func PrintMisfit(s *surf.MisfitStats) {
	if s == nil {
		io.Pf("no misfit statistics available\n")
		return
	}
	io.Pf("misfit over %d points: mean = %g, rms = %g\n", s.Npt, s.Mean, s.Rms)
	io.Pf("total squared curvature = %g\n", s.Curvature)
}
