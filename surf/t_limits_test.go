// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"
	"testing"

	"github.com/cpmech/surface/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func Test_lim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lim01. data-driven envelopes bound the surface")

	sim := testSim(0, 10, 0, 10, 1, 1, false)
	sim.LimitLo = &inp.LimitData{Kind: "data"}
	sim.LimitHi = &inp.LimitData{Kind: "data"}
	eng := New(sim, false)

	rnd.Init(99)
	var X, Y, Z []float64
	for i := 0; i < 30; i++ {
		X = append(X, rnd.Float64(0.0, 10.0))
		Y = append(Y, rnd.Float64(0.0, 10.0))
		Z = append(Z, rnd.Float64(-2.0, 5.0))
	}
	err := eng.SetData(X, Y, Z)
	if err != nil {
		tst.Errorf("SetData failed: %v\n", err)
		return
	}
	g, err := eng.Run()
	if err != nil {
		tst.Errorf("Run failed: %v\n", err)
		return
	}

	// min/max of the data bound every node
	zlo, zhi := math.Inf(1), math.Inf(-1)
	for _, z := range Z {
		zlo = math.Min(zlo, z)
		zhi = math.Max(zhi, z)
	}
	lo, hi := g.MinMax()
	io.Pforan("data range = [%v, %v], surface range = [%v, %v]\n", zlo, zhi, lo, hi)
	if lo < zlo-1e-5 || hi > zhi+1e-5 {
		tst.Errorf("surface leaves the data range\n")
	}
}

func Test_lim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lim02. NaN cells of the envelope do not clamp")

	sim := testSim(0, 10, 0, 10, 1, 1, false)
	eng := New(sim, false)

	// lower limit of 3 everywhere except one free node
	eng.limLo = new(Limit)
	eng.limLo.raw = make([]float32, 11*11)
	for i := range eng.limLo.raw {
		eng.limLo.raw[i] = 3.0
	}
	eng.limLo.raw[5*11+5] = float32(math.NaN())
	eng.rms = 1.0
	eng.normalizeLimits()

	eng.setGridParams(1)
	chk.Scalar(tst, "clamped", 1e-14, eng.clipLimits(0, 0, 1.0), 3.0)
	chk.Scalar(tst, "untouched above", 1e-14, eng.clipLimits(0, 0, 4.5), 4.5)
	chk.Scalar(tst, "free node", 1e-14, eng.clipLimits(5, 5, 1.0), 1.0)
}
