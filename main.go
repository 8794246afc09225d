// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"math"

	"github.com/cpmech/surface/inp"
	"github.com/cpmech/surface/out"
	"github.com/cpmech/surface/surf"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nsurface -- continuous curvature gridding\n\n")

	// simulation filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a filename. Ex.: topo.sim")
	}

	// check extension
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".sim"
	}

	// other options
	verbose := true
	if len(flag.Args()) > 1 {
		verbose = io.Atob(flag.Arg(1))
	}

	// read input data
	sim := inp.ReadSim(fnamepath, true)
	gridpath, err := sim.GridPath()
	if err != nil {
		chk.Panic("%v", err)
	}

	// read data points
	X, Y, Z := readData(sim)

	// engine
	eng := surf.New(sim, verbose)
	err = eng.SetData(X, Y, Z)
	if err != nil {
		chk.Panic("cannot load data points:\n%v", err)
	}

	// breaklines
	for _, bd := range sim.Breaks {
		polys, err := inp.ReadPoly(bd.File)
		if err != nil {
			chk.Panic("cannot read breakline:\n%v", err)
		}
		zlevel := math.NaN()
		if bd.Zlevel != nil {
			zlevel = *bd.Zlevel
		}
		for _, poly := range polys {
			eng.AddBreakline(poly, zlevel)
		}
	}

	// run
	g, err := eng.Run()
	if err != nil {
		chk.Panic("gridding failed:\n%v", err)
	}

	// report
	if verbose {
		out.PrintConvergence(eng.Records)
		if eng.Stats != nil {
			out.PrintMisfit(eng.Stats)
		}
	}

	// save grid
	err = g.Save(gridpath, sim.EncType)
	if err != nil {
		chk.Panic("cannot save grid:\n%v", err)
	}
	io.Pf("file <%s> written\n", gridpath)
}

// readData reads the scattered data file
func readData(sim *inp.Simulation) (X, Y, Z []float64) {
	if sim.Data.Ptsfile == "" {
		chk.Panic("invalid configuration: missing data points filename")
	}
	X, Y, Z, err := inp.ReadPoints(sim.Data.Ptsfile)
	if err != nil {
		chk.Panic("cannot read data points:\n%v", err)
	}
	return
}
