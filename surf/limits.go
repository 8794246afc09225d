// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"math"
	"path/filepath"

	"github.com/cpmech/surface/grd"
	"github.com/cpmech/surface/inp"

	"github.com/cpmech/gosl/chk"
)

// Limit holds one envelope (clipping) channel at full resolution. NaN cells
// disable clipping at that node. The raw values are kept for the final clamp
// pass; the normalised copy (detrended, divided by rms) is what the
// relaxation sweep reads.
type Limit struct {
	raw  []float32 // [nrow*ncol] raw limit values
	norm []float32 // [nrow*ncol] detrended, rms-normalised limit values
}

// setupLimits materialises both envelope channels (constant, data-driven or
// grid-sourced) over the working region as raw values; the normalised copies
// are built later by normalizeLimits
func (o *Engine) setupLimits() (err error) {
	o.limLo, err = o.newLimit(o.Sim.LimitLo, true)
	if err != nil {
		return
	}
	o.limHi, err = o.newLimit(o.Sim.LimitHi, false)
	if err != nil {
		return
	}
	return
}

// newLimit materialises one channel; lower selects the data-driven bound
func (o *Engine) newLimit(ld *inp.LimitData, lower bool) (l *Limit, err error) {
	if ld == nil {
		return nil, nil
	}
	l = new(Limit)
	n := o.ncol * o.nrow
	l.raw = make([]float32, n)
	switch ld.Kind {

	case "value":
		for i := range l.raw {
			l.raw[i] = float32(ld.Value)
		}

	case "data":
		// note: detrend has not run yet, so point z values are still raw
		v := math.Inf(1)
		if !lower {
			v = math.Inf(-1)
		}
		for _, p := range o.data {
			if lower {
				v = math.Min(v, p.Z)
			} else {
				v = math.Max(v, p.Z)
			}
		}
		for i := range l.raw {
			l.raw[i] = float32(v)
		}

	case "grid":
		g, err := grd.Read(filepath.Join(o.Sim.DirOut, ld.File), o.Sim.EncType)
		if err != nil {
			return nil, err
		}
		err = g.CheckShape(o.Sim.Ncol, o.Sim.Nrow)
		if err != nil {
			return nil, chk.Err("envelope grid %q does not match the requested grid: %v", ld.File, err)
		}
		// embed into the (possibly expanded) working grid; cells exposed by
		// the expansion carry NaN and do not clamp
		for i := range l.raw {
			l.raw[i] = float32(math.NaN())
		}
		for r := 0; r < o.Sim.Nrow; r++ {
			for c := 0; c < o.Sim.Ncol; c++ {
				l.raw[(r+o.padN)*o.ncol+c+o.padW] = g.Vals[r*o.Sim.Ncol+c]
			}
		}

	default:
		return nil, chk.Err("unknown limit kind %q", ld.Kind)
	}
	return
}

// normalizeLimits prepares the detrended, rms-normalised copies; must run
// after detrend
func (o *Engine) normalizeLimits() {
	for _, l := range []*Limit{o.limLo, o.limHi} {
		if l == nil {
			continue
		}
		l.norm = make([]float32, len(l.raw))
		for r := 0; r < o.nrow; r++ {
			for c := 0; c < o.ncol; c++ {
				i := r*o.ncol + c
				v := float64(l.raw[i])
				if math.IsNaN(v) {
					l.norm[i] = float32(math.NaN())
					continue
				}
				l.norm[i] = float32((v - o.pl.F(float64(c), float64(o.nrow-1-r))) / o.rms)
			}
		}
	}
}

// clipLimits clamps a candidate value at node (r, c) of the current stride
// against the normalised envelopes
func (o *Engine) clipLimits(r, c int, v float64) float64 {
	if o.limLo == nil && o.limHi == nil {
		return v
	}
	i := r*o.stride*o.ncol + c*o.stride
	if o.limLo != nil {
		if lo := float64(o.limLo.norm[i]); !math.IsNaN(lo) && v < lo {
			v = lo
		}
	}
	if o.limHi != nil {
		if hi := float64(o.limHi.norm[i]); !math.IsNaN(hi) && v > hi {
			v = hi
		}
	}
	return v
}

// clampRaw applies the raw envelopes to the restored (raw-unit) grid
func (o *Engine) clampRaw() {
	if o.limLo == nil && o.limHi == nil {
		return
	}
	for r := 0; r < o.nrow; r++ {
		for c := 0; c < o.ncol; c++ {
			ij := o.ij(r, c)
			v := float64(o.u[ij])
			i := r*o.ncol + c
			if o.limLo != nil {
				if lo := float64(o.limLo.raw[i]); !math.IsNaN(lo) && v < lo {
					v = lo
				}
			}
			if o.limHi != nil {
				if hi := float64(o.limHi.raw[i]); !math.IsNaN(hi) && v > hi {
					v = hi
				}
			}
			o.u[ij] = float32(v)
		}
	}
}
