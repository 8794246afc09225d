// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"
	"sort"

	"github.com/cpmech/surface/inp"

	"github.com/cpmech/gosl/io"
)

// AddBreakline densifies a polyline to per-cell granularity and injects the
// samples as priority constraints: for every fine-grid bin the line enters,
// exactly one sample is kept (the candidate closest to the bin's node, with
// orthogonal projections of the node onto the segments also considered), and
// appended to the data array with breakline kind. Must be called before Run.
// Vertices with NaN z take the zlevel; if that is also NaN the sample is
// skipped but still counted in the densification total.
func (o *Engine) AddBreakline(poly inp.Polyline, zlevel float64) {
	if len(poly) < 2 {
		io.Pfred("warning: breakline with fewer than 2 vertices ignored\n")
		return
	}
	dx, dy := o.Sim.Data.Dx, o.Sim.Data.Dy

	// best candidate per fine bin
	type cand struct {
		p  Point
		d2 float64
	}
	best := make(map[int]cand)
	nx, ny := o.ncol, o.nrow
	binOf := func(x, y float64) (r, c int, ok bool) {
		c = int(math.Floor((x-o.xmin)/dx + 0.5))
		r = (ny - 1) - int(math.Floor((y-o.ymin)/dy+0.5))
		ok = c >= 0 && c <= nx-1 && r >= 0 && r <= ny-1
		return
	}
	offer := func(x, y, z float64) {
		r, c, ok := binOf(x, y)
		if !ok || math.IsNaN(z) {
			return
		}
		ddx := x - (o.xmin + float64(c)*dx)
		ddy := y - (o.ymax - float64(r)*dy)
		d2 := ddx*ddx + ddy*ddy
		ind := r*nx + c
		if b, have := best[ind]; !have || d2 < b.d2 {
			best[ind] = cand{Point{X: x, Y: y, Z: z, Kind: KindBreakline}, d2}
		}
	}

	for s := 0; s < len(poly)-1; s++ {
		a, b := poly[s], poly[s+1]
		za, zb := a.Z, b.Z
		if math.IsNaN(za) {
			za = zlevel
		}
		if math.IsNaN(zb) {
			zb = zlevel
		}

		// at least one sample per grid cell crossed
		nint := int(math.Ceil(math.Hypot(b.X-a.X, b.Y-a.Y) * math.Max(1.0/dx, 1.0/dy)))
		if nint < 1 {
			nint = 1
		}
		for k := 0; k <= nint; k++ {
			f := float64(k) / float64(nint)
			offer(a.X+f*(b.X-a.X), a.Y+f*(b.Y-a.Y), za+f*(zb-za))
		}

		// orthogonal projection of each nearby node onto the segment,
		// accepted only when the foot lies within the segment and the bin
		len2 := (b.X-a.X)*(b.X-a.X) + (b.Y-a.Y)*(b.Y-a.Y)
		if len2 == 0 {
			continue
		}
		cmin := int(math.Floor((math.Min(a.X, b.X) - o.xmin) / dx))
		cmax := int(math.Ceil((math.Max(a.X, b.X) - o.xmin) / dx))
		rmin := (ny - 1) - int(math.Ceil((math.Max(a.Y, b.Y)-o.ymin)/dy))
		rmax := (ny - 1) - int(math.Floor((math.Min(a.Y, b.Y)-o.ymin)/dy))
		for r := rmin; r <= rmax; r++ {
			if r < 0 || r > ny-1 {
				continue
			}
			for c := cmin; c <= cmax; c++ {
				if c < 0 || c > nx-1 {
					continue
				}
				xn := o.xmin + float64(c)*dx
				yn := o.ymax - float64(r)*dy
				t := ((xn-a.X)*(b.X-a.X) + (yn-a.Y)*(b.Y-a.Y)) / len2
				if t < 0 || t > 1 {
					continue
				}
				px := a.X + t*(b.X-a.X)
				py := a.Y + t*(b.Y-a.Y)
				if rr, cc, ok := binOf(px, py); !ok || rr != r || cc != c {
					continue
				}
				offer(px, py, za+t*(zb-za))
			}
		}
	}

	// append winners in bin order
	inds := make([]int, 0, len(best))
	for ind := range best {
		inds = append(inds, ind)
	}
	sort.Ints(inds)
	for _, ind := range inds {
		o.data = append(o.data, best[ind].p)
	}
	if o.Verbose {
		io.Pf("breakline densified into %d cell constraints\n", len(best))
	}
}
