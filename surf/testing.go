// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"github.com/cpmech/surface/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// verbose turns verbose mode on for tests
func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// testSim builds a simulation covering a region for tests
func testSim(west, east, south, north, dx, dy float64, geog bool) *inp.Simulation {
	var sim inp.Simulation
	sim.Solver.SetDefault()
	sim.Data.West, sim.Data.East = west, east
	sim.Data.South, sim.Data.North = south, north
	sim.Data.Dx, sim.Data.Dy = dx, dy
	sim.Data.Geog = geog
	sim.Key = "test"
	sim.DirOut = "/tmp/surface/test"
	sim.EncType = "gob"
	err := sim.PostProcess()
	if err != nil {
		chk.Panic("testSim: %v", err)
	}
	return &sim
}
