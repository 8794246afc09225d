// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"testing"

	"github.com/cpmech/surface/ana"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func Test_detrend01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("detrend01. plane recovery from scattered data")

	// scattered points on z = 1 + 2x + 3y
	var plane ana.PlaneSurface
	plane.Init(fun.Prms{
		&fun.Prm{N: "c0", V: 1.0},
		&fun.Prm{N: "cx", V: 2.0},
		&fun.Prm{N: "cy", V: 3.0},
	})
	rnd.Init(1234)
	n := 50
	X := make([]float64, n)
	Y := make([]float64, n)
	for i := 0; i < n; i++ {
		X[i] = rnd.Float64(0.0, 10.0)
		Y[i] = rnd.Float64(0.0, 10.0)
	}
	Z := plane.Sample(X, Y)

	// engine over 0/10/0/10 with unit increments
	sim := testSim(0, 10, 0, 10, 1, 1, false)
	eng := New(sim, false)
	err := eng.SetData(X, Y, Z)
	if err != nil {
		tst.Errorf("SetData failed: %v\n", err)
		return
	}
	eng.setGridParams(1)
	eng.detrend()

	// slopes are per fine-grid cell (here one unit each)
	io.Pforan("plane = %+v, rms = %v\n", eng.pl, eng.rms)
	chk.Scalar(tst, "icept", 1e-8, eng.pl.Icept, 1.0)
	chk.Scalar(tst, "sx", 1e-9, eng.pl.Sx, 2.0)
	chk.Scalar(tst, "sy", 1e-9, eng.pl.Sy, 3.0)
	if !eng.planeOnly {
		tst.Errorf("exact plane data must give the plane-only outcome\n")
	}
}

func Test_detrend02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("detrend02. noisy data: normalisation and convergence limit")

	rnd.Init(4321)
	n := 80
	X := make([]float64, n)
	Y := make([]float64, n)
	Z := make([]float64, n)
	for i := 0; i < n; i++ {
		X[i] = rnd.Float64(0.0, 10.0)
		Y[i] = rnd.Float64(0.0, 10.0)
		Z[i] = 5.0 - X[i] + rnd.Float64(-1.0, 1.0)
	}

	sim := testSim(0, 10, 0, 10, 1, 1, false)
	eng := New(sim, false)
	err := eng.SetData(X, Y, Z)
	if err != nil {
		tst.Errorf("SetData failed: %v\n", err)
		return
	}
	eng.setGridParams(1)
	eng.detrend()

	io.Pforan("rms = %v, baseLimit = %v\n", eng.rms, eng.baseLimit)
	if eng.planeOnly {
		tst.Errorf("noisy data must not give the plane-only outcome\n")
	}
	if eng.rms <= 0 {
		tst.Errorf("rms must be positive\n")
	}
	chk.Scalar(tst, "default limit", 1e-14, eng.baseLimit, 1e-4*eng.rms)

	// residuals have unit rms after normalisation
	var ss float64
	for _, p := range eng.data {
		ss += p.Z * p.Z
	}
	chk.Scalar(tst, "normalised rms", 1e-10, ss/float64(len(eng.data)), 1.0)
}

func Test_detrend03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("detrend03. degenerate fits: colinear and single-point data")

	// colinear points on z = 2x + 3y + 1 along y = x
	sim := testSim(0, 10, 0, 10, 1, 1, false)
	eng := New(sim, false)
	err := eng.SetData([]float64{1, 4, 8}, []float64{1, 4, 8}, []float64{6, 21, 41})
	if err != nil {
		tst.Errorf("SetData failed: %v\n", err)
		return
	}
	eng.setGridParams(1)
	eng.detrend()
	if !eng.planeOnly {
		tst.Errorf("colinear plane data must give the plane-only outcome\n")
	}

	// single point reduces to a constant
	eng = New(sim, false)
	err = eng.SetData([]float64{5}, []float64{5}, []float64{42})
	if err != nil {
		tst.Errorf("SetData failed: %v\n", err)
		return
	}
	eng.setGridParams(1)
	eng.detrend()
	chk.Scalar(tst, "icept", 1e-14, eng.pl.Icept, 42.0)
	if !eng.planeOnly {
		tst.Errorf("a single datum must give the plane-only outcome\n")
	}
}
