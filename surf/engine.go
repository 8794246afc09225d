// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package surf implements the continuous-curvature gridding engine: a
// finite-difference relaxation solver with Gauss-Seidel successive
// over-relaxation running inside a multigrid (multi-stride) progression
package surf

import (
	"math"

	"github.com/cpmech/surface/grd"
	"github.com/cpmech/surface/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// node statuses
const (
	StatusUnconstrained byte = iota // free node
	StatusQuad1                     // nearest datum lies in quadrant 1 (NE)
	StatusQuad2                     // nearest datum lies in quadrant 2 (NW)
	StatusQuad3                     // nearest datum lies in quadrant 3 (SW)
	StatusQuad4                     // nearest datum lies in quadrant 4 (SE)
	StatusConstrained               // value pinned; never updated
)

// point kinds
const (
	KindData      byte = iota // scattered observation
	KindBreakline             // densified breakline sample; wins bin ties
)

// OutsideIndex flags points falling outside the active sub-grid
const OutsideIndex = math.MaxInt

// Point holds one (detrended, normalised) data record. The original
// coordinates persist across strides; only Ind is recomputed.
type Point struct {
	X, Y, Z float64 // coordinates and (detrended, rms-normalised) value
	Ind     int     // bin index at the current stride; OutsideIndex if discarded
	Kind    byte    // KindData or KindBreakline
}

// Record holds one relaxation sweep log entry
type Record struct {
	Stride    int     // current stride
	Mode      byte    // 'I' (grid nodes) or 'D' (data constraints)
	Sweep     int     // sweep number within this stride/mode
	MaxChange float64 // max |change| in user z units
	Limit     float64 // convergence threshold for this stride, z units
	Total     int     // cumulative sweep count
}

// Engine implements the gridding solver. It exclusively owns the data
// points, status bytes, Briggs table, envelope grids and the padded output
// buffer from construction through finalisation.
type Engine struct {

	// input
	Sim     *inp.Simulation // configuration
	Verbose bool            // log one line per sweep

	// results
	Records []Record     // per-sweep convergence log
	Stats   *MisfitStats // misfit statistics; nil unless requested

	// working region (may be larger than requested when expanded)
	ncol, nrow int     // working grid dimensions (stride 1)
	xmin, ymin float64 // west/south edges of the working grid
	xmax, ymax float64 // east/north edges of the working grid
	padW, padE int     // expansion columns to trim at output
	padS, padN int     // expansion rows to trim at output

	// padded storage (allocated once for the finest stride)
	u      []float32 // padded node values
	status []byte    // padded node statuses

	// data
	data  []Point // observations and breakline samples
	zmean float64 // mean of point z values (normalised units after detrend)

	// trend and scaling
	pl  Plane   // best-fit plane (raw units, fractional fine-grid coordinates)
	rms float64 // rms of detrended residuals; multiplies normalised values back

	// stride schedule
	factors []int // remaining prime factors of the initial gcd, ascending
	stride  int   // current stride; 1 is finest
	nx, ny  int   // active sub-grid dimensions at the current stride
	cmx     int   // padded row width at the current stride (nx + 4)

	// coefficients and constraints
	cf     Coefs        // stencil, Briggs and boundary-condition constants
	briggs [][6]float64 // one entry per non-pinned constrained bin, in classification order

	// envelopes
	limLo, limHi *Limit // optional clipping channels; nil when disabled

	// convergence
	baseLimit float64 // convergence limit in raw z units
	planeOnly bool    // data lie exactly on a plane; skip iteration
	totalIter int     // cumulative sweeps
}

// New returns a new engine for the given configuration
func New(sim *inp.Simulation, verbose bool) (o *Engine) {
	o = new(Engine)
	o.Sim = sim
	o.Verbose = verbose
	o.setupRegion()
	o.u = make([]float32, (o.ncol+4)*(o.nrow+4))
	o.status = make([]byte, (o.ncol+4)*(o.nrow+4))
	return
}

// setupRegion fixes the working region, expanding it symmetrically when the
// scheduler is allowed to search for better-factoring dimensions
func (o *Engine) setupRegion() {
	s := o.Sim
	o.ncol, o.nrow = s.Ncol, s.Nrow
	o.xmin, o.xmax = s.Xmin, s.Xmax
	o.ymin, o.ymax = s.Ymin, s.Ymax
	if !s.Solver.Expand {
		return
	}
	nc, nr := o.ncol, o.nrow
	if !s.Periodic {
		nc, nr = SuggestSizes(o.ncol, o.nrow)
	} else {
		_, nr = SuggestSizes(o.ncol, o.nrow) // x is a wrap; only rows may grow
	}
	if nc == o.ncol && nr == o.nrow {
		return
	}
	o.padW = (nc - o.ncol) / 2
	o.padE = nc - o.ncol - o.padW
	o.padS = (nr - o.nrow) / 2
	o.padN = nr - o.nrow - o.padS
	o.xmin -= float64(o.padW) * s.Data.Dx
	o.xmax += float64(o.padE) * s.Data.Dx
	o.ymin -= float64(o.padS) * s.Data.Dy
	o.ymax += float64(o.padN) * s.Data.Dy
	o.ncol, o.nrow = nc, nr
	if o.Verbose {
		io.Pfyel("grid expanded to %d x %d nodes for a richer stride schedule\n", nc, nr)
	}
}

// setGridParams fixes the active sub-grid dimensions and the offset table
// for a given stride
func (o *Engine) setGridParams(stride int) {
	o.stride = stride
	o.nx = (o.ncol-1)/stride + 1
	o.ny = (o.nrow-1)/stride + 1
	o.cmx = o.nx + 4
	o.cf.SetOffsets(o.cmx)
}

// ij maps a node (row from north, column from west) of the active sub-grid
// to its padded linear index
func (o *Engine) ij(r, c int) int {
	return (r+2)*o.cmx + c + 2
}

// nodeX returns the x coordinate of column c at the current stride
func (o *Engine) nodeX(c int) float64 {
	return o.xmin + float64(c*o.stride)*o.Sim.Data.Dx
}

// nodeY returns the y coordinate of row r at the current stride
func (o *Engine) nodeY(r int) float64 {
	return o.ymax - float64(r*o.stride)*o.Sim.Data.Dy
}

// SetData loads scattered observations. Records with NaN z or falling
// outside the working region are dropped with a warning; for periodic grids,
// points within half a cell of the east/west edge are duplicated on the
// opposite side.
func (o *Engine) SetData(X, Y, Z []float64) (err error) {
	if len(X) != len(Y) || len(X) != len(Z) {
		return chk.Err("coordinate arrays have different lengths: %d, %d, %d", len(X), len(Y), len(Z))
	}
	ndrop := 0
	for i := 0; i < len(X); i++ {
		x, y, z := X[i], Y[i], Z[i]
		if math.IsNaN(z) || math.IsNaN(x) || math.IsNaN(y) {
			ndrop++
			continue
		}
		if o.Sim.Periodic {
			x = o.xmin + math.Mod(x-o.xmin, 360.0)
			if x < o.xmin {
				x += 360.0
			}
		}
		if x < o.xmin-o.Sim.Data.Dx/2.0 || x > o.xmax+o.Sim.Data.Dx/2.0 ||
			y < o.ymin-o.Sim.Data.Dy/2.0 || y > o.ymax+o.Sim.Data.Dy/2.0 {
			ndrop++
			continue
		}
		o.data = append(o.data, Point{X: x, Y: y, Z: z, Kind: KindData})
		if o.Sim.Periodic {
			if x >= o.xmax-o.Sim.Data.Dx/2.0 {
				o.data = append(o.data, Point{X: x - 360.0, Y: y, Z: z, Kind: KindData})
			} else if x <= o.xmin+o.Sim.Data.Dx/2.0 {
				o.data = append(o.data, Point{X: x + 360.0, Y: y, Z: z, Kind: KindData})
			}
		}
	}
	if ndrop > 0 {
		io.Pfred("warning: %d points with NaN values or outside the region were dropped\n", ndrop)
	}
	return
}

// Run grids the loaded data and returns the final grid
func (o *Engine) Run() (g *grd.Grid, err error) {

	// input checks
	if len(o.data) == 0 {
		return nil, chk.Err("no data points inside the region: cannot interpolate")
	}

	// discard points that can never constrain a node
	o.dedupFinest()

	// envelopes need raw data values; normalised copies come after detrend
	err = o.setupLimits()
	if err != nil {
		return nil, err
	}

	// remove best-fit plane and normalise by the residual rms
	o.detrend()
	o.normalizeLimits()

	// plane-only shortcut: the data lie exactly on a plane
	if o.planeOnly {
		if o.Verbose {
			io.Pfyel("data lie exactly on a plane: returning the plane without iteration\n")
		}
		o.setGridParams(1)
		return o.finalize()
	}

	// stride schedule
	ini := o.schedule()

	// coefficients
	o.cf.Init(o.Sim.TensB, o.Sim.TensI, o.Sim.Aspect)

	// coarsest stride: seed, classify, relax with data
	o.setGridParams(ini)
	o.binAndSort()
	o.initializeGrid()
	o.classify()
	o.iterate('D')

	// refine until the finest stride
	for o.stride > 1 {
		old := o.stride
		o.setGridParams(o.nextStride())
		o.fillInForecast(old)
		o.iterate('I')
		o.binAndSort()
		o.classify()
		o.iterate('D')
	}

	// misfit, trend restoration, clamping, output
	return o.finalize()
}
