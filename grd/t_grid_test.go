// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grd

import (
	"math"
	"os"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. node coordinates per registration")

	g := New(Header{West: 0, East: 10, South: 0, North: 10, Dx: 1, Dy: 1, Ncol: 11, Nrow: 11})
	chk.Scalar(tst, "x[0]", 1e-15, g.X(0), 0.0)
	chk.Scalar(tst, "x[10]", 1e-15, g.X(10), 10.0)
	chk.Scalar(tst, "y[0]", 1e-15, g.Y(0), 10.0)
	chk.Scalar(tst, "y[10]", 1e-15, g.Y(10), 0.0)

	p := New(Header{West: 0, East: 10, South: 0, North: 10, Dx: 1, Dy: 1, Ncol: 10, Nrow: 10, Registration: PixelReg})
	chk.Scalar(tst, "pixel x[0]", 1e-15, p.X(0), 0.5)
	chk.Scalar(tst, "pixel y[0]", 1e-15, p.Y(0), 9.5)
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. holes are ignored by the range")

	g := New(Header{West: 0, East: 2, South: 0, North: 2, Dx: 1, Dy: 1, Ncol: 3, Nrow: 3})
	for i := range g.Vals {
		g.Vals[i] = float32(i)
	}
	g.Vals[4] = float32(math.NaN())
	lo, hi := g.MinMax()
	io.Pforan("range = [%v, %v]\n", lo, hi)
	chk.Scalar(tst, "lo", 1e-15, lo, 0.0)
	chk.Scalar(tst, "hi", 1e-15, hi, 8.0)

	if err := g.CheckShape(3, 3); err != nil {
		tst.Errorf("shape check failed: %v\n", err)
	}
	if err := g.CheckShape(4, 3); err == nil {
		tst.Errorf("wrong shape must be detected\n")
	}
}

func Test_grid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid03. save and reload a small grid")

	g := New(Header{West: 0, East: 3, South: 0, North: 2, Dx: 1, Dy: 1, Ncol: 4, Nrow: 3})
	for i := range g.Vals {
		g.Vals[i] = float32(i) * 1.5
	}
	err := os.MkdirAll("/tmp/surface", 0777)
	if err != nil {
		tst.Errorf("cannot create output directory: %v\n", err)
		return
	}
	for _, enctype := range []string{"gob", "json"} {
		fn := io.Sf("/tmp/surface/test_grid03_%s.grd", enctype)
		if err := g.Save(fn, enctype); err != nil {
			tst.Errorf("Save failed: %v\n", err)
			return
		}
		r, err := Read(fn, enctype)
		if err != nil {
			tst.Errorf("Read failed: %v\n", err)
			return
		}
		chk.IntAssert(r.Head.Ncol, 4)
		chk.Scalar(tst, "east", 1e-15, r.Head.East, 3.0)
		chk.Scalar(tst, "v[5]", 1e-15, r.At(1, 1), g.At(1, 1))
	}
}
