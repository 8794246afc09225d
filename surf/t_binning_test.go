// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

func Test_bins01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bins01. bin indices at different strides")

	sim := testSim(0, 10, 0, 10, 1, 1, false)
	eng := New(sim, false)

	// at stride 1: node (row from north, col) = (10-5, 3) for (3, 5)
	eng.setGridParams(1)
	chk.IntAssert(eng.binIndex(3.0, 5.0), 5*11+3)
	chk.IntAssert(eng.binIndex(0.0, 10.0), 0)
	chk.IntAssert(eng.binIndex(10.4, 0.0), 10*11+10)
	chk.IntAssert(eng.binIndex(11.0, 0.0), OutsideIndex)

	// at stride 2 the active sub-grid is 6 x 6
	eng.setGridParams(2)
	chk.IntAssert(eng.nx, 6)
	chk.IntAssert(eng.ny, 6)
	chk.IntAssert(eng.binIndex(3.0, 5.0), 2*6+2) // nearest node (4, 6)
}

func Test_bins02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bins02. sort order: bins, kinds, distances")

	sim := testSim(0, 10, 0, 10, 1, 1, false)
	eng := New(sim, false)
	rnd.Init(7)
	var X, Y, Z []float64
	for i := 0; i < 60; i++ {
		X = append(X, rnd.Float64(-1.0, 11.0)) // some points fall outside
		Y = append(Y, rnd.Float64(-1.0, 11.0))
		Z = append(Z, rnd.Float64(0.0, 1.0))
	}
	err := eng.SetData(X, Y, Z)
	if err != nil {
		tst.Errorf("SetData failed: %v\n", err)
		return
	}

	// a breakline sample close to a node must precede data in its bin
	eng.data = append(eng.data, Point{X: 5.2, Y: 5.2, Z: 9.0, Kind: KindBreakline})

	eng.setGridParams(2)
	eng.binAndSort()

	srt := pointSorter{eng}
	for i := 1; i < len(eng.data); i++ {
		a, b := &eng.data[i-1], &eng.data[i]
		if a.Ind > b.Ind {
			tst.Errorf("bin indices are not non-decreasing at %d\n", i)
			return
		}
		if a.Ind == b.Ind && a.Ind != OutsideIndex {
			if a.Kind == KindData && b.Kind == KindBreakline {
				tst.Errorf("breakline sample sorted after data in bin %d\n", a.Ind)
				return
			}
			if a.Kind == b.Kind && srt.dist2(a) > srt.dist2(b) {
				tst.Errorf("intra-bin distances are not non-decreasing at %d\n", i)
				return
			}
		}
	}
	io.Pforan("%d points sorted\n", len(eng.data))
}

func Test_bins03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bins03. stride-1 dedup keeps one point per bin")

	sim := testSim(0, 10, 0, 10, 1, 1, false)
	eng := New(sim, false)
	X := []float64{5.0, 5.1, 4.9, 2.0, 2.2}
	Y := []float64{5.0, 5.1, 5.2, 2.0, 2.1}
	Z := []float64{1.0, 2.0, 3.0, 4.0, 5.0}
	err := eng.SetData(X, Y, Z)
	if err != nil {
		tst.Errorf("SetData failed: %v\n", err)
		return
	}
	eng.dedupFinest()

	// bins (5,5) and (2,2) keep their closest point each
	chk.IntAssert(len(eng.data), 2)
	for _, p := range eng.data {
		if p.Z != 1.0 && p.Z != 4.0 {
			tst.Errorf("wrong survivor with z = %v\n", p.Z)
		}
	}
}
