// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"
)

// binIndex computes the bin index of a point at the current stride, or
// OutsideIndex when the point falls outside the active sub-grid
func (o *Engine) binIndex(x, y float64) int {
	dx := o.Sim.Data.Dx * float64(o.stride)
	dy := o.Sim.Data.Dy * float64(o.stride)
	c := int(math.Floor((x-o.xmin)/dx + 0.5))
	r := (o.ny - 1) - int(math.Floor((y-o.ymin)/dy+0.5))
	if c < 0 || c > o.nx-1 || r < 0 || r > o.ny-1 {
		return OutsideIndex
	}
	return r*o.nx + c
}

// binAndSort recomputes every point's bin index at the current stride and
// sorts the array by (bin ascending, breaklines first, distance to the bin
// node ascending). Points outside the sub-grid sort last.
func (o *Engine) binAndSort() {
	for i := range o.data {
		o.data[i].Ind = o.binIndex(o.data[i].X, o.data[i].Y)
	}
	sort.Sort(&pointSorter{o})
}

// pointSorter orders points for constraint classification; the comparator
// closes over the current-stride geometry of the engine
type pointSorter struct {
	e *Engine
}

func (o *pointSorter) Len() int { return len(o.e.data) }

func (o *pointSorter) Swap(i, j int) {
	o.e.data[i], o.e.data[j] = o.e.data[j], o.e.data[i]
}

func (o *pointSorter) Less(i, j int) bool {
	a, b := &o.e.data[i], &o.e.data[j]
	if a.Ind != b.Ind {
		return a.Ind < b.Ind
	}
	if a.Ind == OutsideIndex {
		return false
	}
	if a.Kind != b.Kind {
		return a.Kind == KindBreakline
	}
	return o.dist2(a) < o.dist2(b)
}

// dist2 returns the squared distance from a point to its bin's node
func (o *pointSorter) dist2(p *Point) float64 {
	r := p.Ind / o.e.nx
	c := p.Ind % o.e.nx
	dx := p.X - o.e.nodeX(c)
	dy := p.Y - o.e.nodeY(r)
	return dx*dx + dy*dy
}

// dedupFinest bins and sorts at stride 1 and discards all but the first
// point of every bin; the discarded points can never constrain a node
func (o *Engine) dedupFinest() {
	o.setGridParams(1)
	o.binAndSort()
	keep := o.data[:0]
	last := -1
	ndup := 0
	for _, p := range o.data {
		if p.Ind == OutsideIndex {
			break // sorted last; already warned at ingestion
		}
		if p.Ind == last {
			ndup++
			if o.Verbose {
				io.Pfred("warning: unusable extra point (%g, %g, %g) in bin %d discarded\n", p.X, p.Y, p.Z, p.Ind)
			}
			continue
		}
		last = p.Ind
		keep = append(keep, p)
	}
	o.data = keep
	if ndup > 0 {
		io.Pfred("warning: %d points shared a grid cell with a closer point and were discarded\n", ndup)
	}
}
