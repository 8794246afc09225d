// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Vertex holds one polyline vertex; Z is NaN for 2-column records
type Vertex struct {
	X, Y, Z float64
}

// Polyline is a sequence of vertices
type Polyline []Vertex

// ReadPoints reads scattered (x,y,z) triples from an ASCII file.
// Lines starting with '#' are skipped; lines with fewer than 3 columns or
// non-numeric x/y are reported and skipped; a non-numeric z is read as NaN.
func ReadPoints(fnamepath string) (X, Y, Z []float64, err error) {
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, nil, nil, chk.Err("cannot read data file %q: %v", fnamepath, err)
	}
	for i, line := range strings.Split(string(b), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 3 {
			io.Pfred("file %s: line %d has fewer than 3 columns; skipping\n", fnamepath, i+1)
			continue
		}
		x, errx := strconv.ParseFloat(fields[0], 64)
		y, erry := strconv.ParseFloat(fields[1], 64)
		z, errz := strconv.ParseFloat(fields[2], 64)
		if errx != nil || erry != nil {
			io.Pfred("file %s: line %d has non-numeric coordinates; skipping\n", fnamepath, i+1)
			continue
		}
		if errz != nil {
			z = math.NaN()
		}
		X = append(X, x)
		Y = append(Y, y)
		Z = append(Z, z)
	}
	return
}

// ReadPoly reads polylines from an ASCII file. A line starting with '>'
// begins a new segment. Records may have 2 (x,y) or 3 (x,y,z) columns;
// 2-column vertices receive Z = NaN so that a constant level can be
// injected by the caller.
func ReadPoly(fnamepath string) (polys []Polyline, err error) {
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read polyline file %q: %v", fnamepath, err)
	}
	var cur Polyline
	flush := func() {
		if len(cur) > 1 {
			polys = append(polys, cur)
		}
		cur = nil
	}
	for i, line := range strings.Split(string(b), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if strings.HasPrefix(fields[0], ">") {
			flush()
			continue
		}
		if len(fields) < 2 {
			io.Pfred("file %s: line %d has fewer than 2 columns; skipping\n", fnamepath, i+1)
			continue
		}
		x, errx := strconv.ParseFloat(fields[0], 64)
		y, erry := strconv.ParseFloat(fields[1], 64)
		if errx != nil || erry != nil {
			io.Pfred("file %s: line %d has non-numeric coordinates; skipping\n", fnamepath, i+1)
			continue
		}
		z := math.NaN()
		if len(fields) > 2 {
			if v, errz := strconv.ParseFloat(fields[2], 64); errz == nil {
				z = v
			}
		}
		cur = append(cur, Vertex{x, y, z})
	}
	flush()
	return
}
