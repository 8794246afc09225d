// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surf

import (
	"sort"

	"github.com/cpmech/gosl/io"
)

// gcdInt returns the greatest common divisor of two positive integers
func gcdInt(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// primeFactors returns the prime factors of n in ascending order,
// with multiplicity; n < 2 yields an empty list
func primeFactors(n int) (facs []int) {
	for p := 2; p*p <= n; p++ {
		for n%p == 0 {
			facs = append(facs, p)
			n /= p
		}
	}
	if n > 1 {
		facs = append(facs, n)
	}
	return
}

// schedule computes the stride schedule for the working grid and returns the
// initial stride. The remaining factors are consumed by nextStride, largest
// first. Coprime dimensions produce a loud warning and a single stride of 1.
func (o *Engine) schedule() (ini int) {
	g := gcdInt(o.ncol-1, o.nrow-1)
	if g == 1 {
		io.Pfred("warning: (ncol-1, nrow-1) = (%d, %d) are coprime; no multigrid progression is\n", o.ncol-1, o.nrow-1)
		io.Pfred("warning: possible and convergence will be slow. Consider different dimensions.\n")
	}
	o.factors = primeFactors(g)
	ini = g

	// keep at least 4 nodes per side at every stride
	for ini > 1 && ((o.ncol-1)/ini+1 < 4 || (o.nrow-1)/ini+1 < 4) {
		ini /= o.factors[len(o.factors)-1]
		o.factors = o.factors[:len(o.factors)-1]
	}
	if ini < 1 {
		ini = 1
		o.factors = nil
	}
	if o.Sim.Solver.Suggest {
		reportSuggestion(o.ncol, o.nrow)
	}
	return
}

// nextStride divides the current stride by the largest remaining prime
// factor, dividing again while the sub-grid would have fewer than 4 nodes
// per side
func (o *Engine) nextStride() (s int) {
	s = o.stride
	for len(o.factors) > 0 {
		s /= o.factors[len(o.factors)-1]
		o.factors = o.factors[:len(o.factors)-1]
		if (o.ncol-1)/s+1 >= 4 && (o.nrow-1)/s+1 >= 4 {
			return
		}
	}
	return 1
}

// workScore estimates the total relaxation work for given dimensions: the
// sum over the stride schedule of active nodes times the stride (the sweep
// cap grows with the stride). Lower is better.
func workScore(ncol, nrow int) (score float64) {
	g := gcdInt(ncol-1, nrow-1)
	facs := primeFactors(g)
	s := g
	for s > 1 && ((ncol-1)/s+1 < 4 || (nrow-1)/s+1 < 4) {
		s /= facs[len(facs)-1]
		facs = facs[:len(facs)-1]
	}
	for {
		nx := (ncol-1)/s + 1
		ny := (nrow-1)/s + 1
		score += float64(nx*ny) * float64(s)
		if s == 1 {
			return
		}
		if len(facs) == 0 {
			s = 1
			continue
		}
		s /= facs[len(facs)-1]
		facs = facs[:len(facs)-1]
	}
}

// SuggestSizes searches dimensions at or above (ncol, nrow) whose stride
// schedules factor into many small primes, returning the pair with the
// smallest estimated work
func SuggestSizes(ncol, nrow int) (bestNc, bestNr int) {
	const maxAdd = 32
	bestNc, bestNr = ncol, nrow
	best := workScore(ncol, nrow)
	for dc := 0; dc <= maxAdd; dc++ {
		for dr := 0; dr <= maxAdd; dr++ {
			w := workScore(ncol+dc, nrow+dr)
			if w < best {
				best = w
				bestNc, bestNr = ncol+dc, nrow+dr
			}
		}
	}
	return
}

// reportSuggestion prints the most promising nearby dimensions and the
// potential speedup relative to the given ones
func reportSuggestion(ncol, nrow int) {
	nc, nr := SuggestSizes(ncol, nrow)
	if nc == ncol && nr == nrow {
		io.Pf("grid dimensions %d x %d already admit a good stride schedule\n", ncol, nrow)
		return
	}
	cur := workScore(ncol, nrow)
	alt := workScore(nc, nr)
	io.Pfyel("hint: dimensions %d x %d would reduce the estimated relaxation work by a factor of %.2f\n", nc, nr, cur/alt)
	io.Pfyel("hint: current stride schedule: %v\n", strides(ncol, nrow))
	io.Pfyel("hint: suggested stride schedule: %v\n", strides(nc, nr))
}

// strides lists the stride sequence (coarsest first) for given dimensions
func strides(ncol, nrow int) (seq []int) {
	g := gcdInt(ncol-1, nrow-1)
	facs := primeFactors(g)
	sort.Ints(facs)
	s := g
	for s > 1 && ((ncol-1)/s+1 < 4 || (nrow-1)/s+1 < 4) {
		s /= facs[len(facs)-1]
		facs = facs[:len(facs)-1]
	}
	for {
		seq = append(seq, s)
		if s == 1 {
			return
		}
		if len(facs) == 0 {
			s = 1
			continue
		}
		s /= facs[len(facs)-1]
		facs = facs[:len(facs)-1]
	}
}
