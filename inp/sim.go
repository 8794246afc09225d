// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Data holds global data for gridding runs
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of run
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/surface
	Encoder string `json:"encoder"` // encoder name; "gob" or "json"

	// region
	West  float64 `json:"west"`  // minimum x of requested region
	East  float64 `json:"east"`  // maximum x of requested region
	South float64 `json:"south"` // minimum y of requested region
	North float64 `json:"north"` // maximum y of requested region
	Dx    float64 `json:"dx"`    // x increment
	Dy    float64 `json:"dy"`    // y increment; 0 => same as dx
	Pixel bool    `json:"pixel"` // pixel registration of the output grid
	Geog  bool    `json:"geog"`  // geographic coordinates (x=lon, y=lat)

	// files
	Ptsfile  string `json:"ptsfile"`  // scattered (x,y,z) data file
	Gridfile string `json:"gridfile"` // output grid filename (under dirout)
}

// SolverData holds relaxation solver data
type SolverData struct {

	// tension and relaxation
	Tension  float64 `json:"tension"`  // tension factor in [0,1]; 0 => minimum curvature
	TensionB float64 `json:"tensionb"` // boundary tension; negative => use tension
	TensionI float64 `json:"tensioni"` // interior tension; negative => use tension
	Omega    float64 `json:"omega"`    // over-relaxation factor in [1,2]

	// convergence
	ConvLimit float64 `json:"convlimit"` // absolute convergence limit in z units; 0 => 1e-4 * rms
	ConvPct   float64 `json:"convpct"`   // convergence limit as percentage of rms; overrides convlimit
	NmaxIt    int     `json:"nmaxit"`    // base max number of sweeps per stride; multiplied by stride

	// geometry and seeding
	Aspect float64 `json:"aspect"` // aspect ratio (dy/dx weight); 0 => 1 or cos(mid-lat) if geog
	Radius float64 `json:"radius"` // search radius for moving-average seeding; 0 => mean seed

	// scheduling
	Suggest bool `json:"suggest"` // report grid dimensions with richer factorisations
	Expand  bool `json:"expand"`  // expand region symmetrically to the best suggested dimensions

	// reporting
	Misfit bool `json:"misfit"` // compute misfit statistics after the final stride
}

// LimitData holds one envelope (clipping) channel
type LimitData struct {
	Kind  string  `json:"kind"`  // "value", "data" or "grid"
	Value float64 `json:"value"` // constant limit when kind == "value"
	File  string  `json:"file"`  // full-resolution grid file when kind == "grid"
}

// BreakData holds one breakline input
type BreakData struct {
	File   string   `json:"file"`   // polyline file; ">" starts a new segment
	Zlevel *float64 `json:"zlevel"` // constant z injected into (x,y) polylines
}

// Simulation holds all gridding run data
type Simulation struct {

	// input
	Data    Data         `json:"data"`      // global data
	Solver  SolverData   `json:"solver"`    // solver data
	LimitLo *LimitData   `json:"limitlow"`  // lower envelope; nil => disabled
	LimitHi *LimitData   `json:"limithigh"` // upper envelope; nil => disabled
	Breaks  []*BreakData `json:"breaks"`    // breakline inputs

	// derived
	Key      string  // simulation key; e.g. mysim.sim => mysim
	DirOut   string  // directory for output results
	EncType  string  // encoder type
	Ncol     int     // number of columns of the (gridline) solution grid
	Nrow     int     // number of rows of the (gridline) solution grid
	Xmin     float64 // west edge of the solution grid (shifted for pixel registration)
	Ymin     float64 // south edge of the solution grid
	Xmax     float64 // east edge of the solution grid
	Ymax     float64 // north edge of the solution grid
	Periodic bool    // grid is periodic in x (geographic and spans 360)
	Aspect   float64 // resolved aspect ratio
	TensB    float64 // resolved boundary tension
	TensI    float64 // resolved interior tension
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	o.TensionB = -1
	o.TensionI = -1
	o.Omega = 1.4
	o.NmaxIt = 250
}

// ReadSim reads all data from a .sim JSON file
func ReadSim(simfilepath string, createDirOut bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Solver.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	o.Key = io.FnKey(filepath.Base(simfilepath))

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/surface/" + o.Key
	}

	// encoder type
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// create directory
	if createDirOut {
		err = os.MkdirAll(o.DirOut, 0777)
		if err != nil {
			chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
		}
	}

	// derived data
	err = o.PostProcess()
	if err != nil {
		chk.Panic("ReadSim: %v", err)
	}
	return &o
}

// PostProcess computes derived quantities and validates the configuration
func (o *Simulation) PostProcess() (err error) {

	// increments
	d := &o.Data
	if d.Dy == 0 {
		d.Dy = d.Dx
	}
	if d.Dx <= 0 || d.Dy <= 0 {
		return chk.Err("invalid configuration: increments must be positive (dx=%v, dy=%v)", d.Dx, d.Dy)
	}
	if d.East <= d.West || d.North <= d.South {
		return chk.Err("invalid configuration: empty region (%v/%v/%v/%v)", d.West, d.East, d.South, d.North)
	}

	// solution grid region; pixel registration is emulated with a gridline
	// grid over the half-increment-shrunk region
	o.Xmin, o.Xmax = d.West, d.East
	o.Ymin, o.Ymax = d.South, d.North
	if d.Pixel {
		o.Xmin += d.Dx / 2.0
		o.Xmax -= d.Dx / 2.0
		o.Ymin += d.Dy / 2.0
		o.Ymax -= d.Dy / 2.0
	}
	o.Ncol = int(math.Floor((o.Xmax-o.Xmin)/d.Dx+0.5)) + 1
	o.Nrow = int(math.Floor((o.Ymax-o.Ymin)/d.Dy+0.5)) + 1
	if o.Ncol < 4 || o.Nrow < 4 {
		return chk.Err("degenerate grid: need at least 4 nodes per side; got %d x %d", o.Ncol, o.Nrow)
	}

	// snap the far edges to the increments
	o.Xmax = o.Xmin + float64(o.Ncol-1)*d.Dx
	o.Ymax = o.Ymin + float64(o.Nrow-1)*d.Dy

	// periodicity in x
	o.Periodic = d.Geog && math.Abs((o.Xmax-o.Xmin)-360.0) < 1e-8

	// aspect ratio
	o.Aspect = o.Solver.Aspect
	if o.Aspect == 0 {
		o.Aspect = 1.0
		if d.Geog {
			o.Aspect = math.Cos((o.Ymin + o.Ymax) / 2.0 * math.Pi / 180.0)
		}
	}
	if o.Aspect <= 0 {
		return chk.Err("invalid configuration: aspect ratio must be positive (%v)", o.Aspect)
	}

	// tension split
	s := &o.Solver
	o.TensB, o.TensI = s.TensionB, s.TensionI
	if o.TensB < 0 {
		o.TensB = s.Tension
	}
	if o.TensI < 0 {
		o.TensI = s.Tension
	}
	if o.TensB < 0 || o.TensB > 1 || o.TensI < 0 || o.TensI > 1 {
		return chk.Err("invalid configuration: tension must be within [0,1] (boundary=%v, interior=%v)", o.TensB, o.TensI)
	}

	// relaxation factor
	if s.Omega < 1 || s.Omega > 2 {
		return chk.Err("invalid configuration: over-relaxation factor must be within [1,2] (%v)", s.Omega)
	}
	if s.NmaxIt < 1 {
		return chk.Err("invalid configuration: nmaxit must be at least 1 (%d)", s.NmaxIt)
	}
	if s.ConvLimit < 0 || s.ConvPct < 0 {
		return chk.Err("invalid configuration: convergence limit cannot be negative")
	}
	if s.Radius < 0 {
		return chk.Err("invalid configuration: search radius cannot be negative (%v)", s.Radius)
	}

	// limits
	for _, l := range []*LimitData{o.LimitLo, o.LimitHi} {
		if l == nil {
			continue
		}
		switch l.Kind {
		case "value", "data":
		case "grid":
			if l.File == "" {
				return chk.Err("invalid configuration: limit of kind %q needs a grid file", l.Kind)
			}
		default:
			return chk.Err("invalid configuration: unknown limit kind %q", l.Kind)
		}
	}
	return
}

// GridPath returns the full path of the output grid file
func (o *Simulation) GridPath() (fnamepath string, err error) {
	if o.Data.Gridfile == "" {
		return "", chk.Err("invalid configuration: missing output grid filename")
	}
	return filepath.Join(o.DirOut, o.Data.Gridfile), nil
}
