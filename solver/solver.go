// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package solver implements the two outer drivers every sweeper
// (sn.Sweeper[C], moc.Sweeper, cmdo.Composite[C]) plugs into: the
// one-pass-per-group FixedSourceSolver and the power-iteration
// EigenSolver built on top of it, per spec.md §4.7/§4.8. Grounded on
// original_source/src/mocc-core/fixed_source_solver.cpp's per-group
// fission/in_scatter/sweep loop and eigen_solver.hpp's k-update relation.
package solver

import (
	"math"

	"github.com/ntouran/mocc/merr"
)

// Sweeper is the common capability every concrete sweeper (sn.Sweeper[C],
// moc.Sweeper, cmdo.Composite[C]) satisfies, letting FixedSourceSolver and
// EigenSolver stay generic over which transport kernel backs them.
type Sweeper interface {
	StoreOldFlux()
	Sweep(group int) error
	CalcFissionSource(k float64, out []float64)
	TotalFission(old bool) float64
	NumGroups() int
	NumPins() int
	GetPinFlux(group int) []float64
}

// Source is the subset of xsource.Source's (and xsource.Source2D3D's)
// API the solver drives directly. Both satisfy it without an adapter
// since Source2D3D overrides Fission/InScatter with the matching
// signature.
type Source interface {
	Fission(fissionDensity []float64, group int)
	InScatter(group int)
}

// FixedSourceSolver runs one pass over every energy group: stash old
// flux, then per group set up the fission (if in eigenvalue mode) and
// in-scatter source terms and sweep, per spec.md §4.7.
type FixedSourceSolver struct {
	sweeper Sweeper
	source  Source
	nGroup  int

	eigenMode     bool
	fissionSource []float64
}

// NewFixedSourceSolver builds a FixedSourceSolver over the given sweeper
// and source.
func NewFixedSourceSolver(sweeper Sweeper, source Source) (*FixedSourceSolver, error) {
	if sweeper == nil {
		return nil, merr.Config("solver.FixedSourceSolver", "sweeper must not be nil")
	}
	if source == nil {
		return nil, merr.Config("solver.FixedSourceSolver", "source must not be nil")
	}
	return &FixedSourceSolver{sweeper: sweeper, source: source, nGroup: sweeper.NumGroups()}, nil
}

// SetEigenvalueMode toggles whether Step requires an attached fission
// source, per spec.md §4.7's "Fails (ConfigError) if no fission source
// has been attached when called in eigenvalue mode."
func (f *FixedSourceSolver) SetEigenvalueMode(v bool) { f.eigenMode = v }

// AttachFissionSource sets the per-pin fission density Step's per-group
// Source.Fission call chi-weights; called by EigenSolver once per outer
// before Step.
func (f *FixedSourceSolver) AttachFissionSource(fs []float64) { f.fissionSource = fs }

// Step runs one outer pass: stashes old flux, then for every group sets
// up the fission (if attached) and in-scatter terms and sweeps.
func (f *FixedSourceSolver) Step() error {
	if f.eigenMode && f.fissionSource == nil {
		return merr.Config("solver.FixedSourceSolver", "eigenvalue mode requires an attached fission source")
	}
	f.sweeper.StoreOldFlux()
	for g := 0; g < f.nGroup; g++ {
		if f.fissionSource != nil {
			f.source.Fission(f.fissionSource, g)
		}
		f.source.InScatter(g)
		if err := f.sweeper.Sweep(g); err != nil {
			return err
		}
	}
	return nil
}

// EigenSolver is the power-iteration k-eigenvalue outer loop, per
// spec.md §4.8, built on top of a FixedSourceSolver's per-outer group
// pass.
type EigenSolver struct {
	sweeper Sweeper
	fss     *FixedSourceSolver

	epsK, epsF float64
	maxIter    int

	K             float64
	fissionSource []float64

	onInterrupt func()
	interrupted bool
}

// OnInterrupt installs a callback Solve invokes, once, just before
// returning early because Interrupt was called — the solver's own
// responsibility for atomic checkpointing spec.md's Design Notes
// recommend ("express as an installable interrupt callback on the solver
// object"), wired by main.go to a signal.Notify(os.Interrupt) handler.
func (e *EigenSolver) OnInterrupt(cb func()) { e.onInterrupt = cb }

// Interrupt requests that Solve stop after its current outer iteration.
// Safe to call from a signal handler goroutine; Solve only observes it
// between outers, never mid-sweep.
func (e *EigenSolver) Interrupt() { e.interrupted = true }

// NewEigenSolver builds an EigenSolver driving sweeper through fss, with
// convergence tolerances epsK (on k) and epsF (on the relative L2 norm
// of the fission source) and a maximum outer-iteration count.
func NewEigenSolver(sweeper Sweeper, fss *FixedSourceSolver, epsK, epsF float64, maxIter int) (*EigenSolver, error) {
	if epsK <= 0 || epsF <= 0 {
		return nil, merr.Config("solver.EigenSolver", "convergence tolerances must be > 0, got epsK=%v epsF=%v", epsK, epsF)
	}
	if maxIter <= 0 {
		return nil, merr.Config("solver.EigenSolver", "max_iter must be > 0, got %d", maxIter)
	}
	return &EigenSolver{
		sweeper: sweeper, fss: fss,
		epsK: epsK, epsF: epsF, maxIter: maxIter,
		K:             1.0,
		fissionSource: make([]float64, sweeper.NumPins()),
	}, nil
}

// GetK returns the current k-eigenvalue estimate.
func (e *EigenSolver) GetK() float64 { return e.K }

// GetFissionSource returns the current per-pin fission source estimate.
func (e *EigenSolver) GetFissionSource() []float64 { return e.fissionSource }

// Solve runs power iteration to convergence, per spec.md §4.8's outer
// loop: initialize k=1 and F=calc_fission_source(1), then repeatedly run
// one FixedSourceSolver pass, recompute F', update k' = k*sum(F')/sum(F),
// and stop when both |k'-k| < epsK and L2(F'-F)/L2(F) < epsF. Returns
// merr.ConvergenceError if the two conditions have not held together
// within maxIter outers.
func (e *EigenSolver) Solve() error {
	e.fss.SetEigenvalueMode(true)
	e.sweeper.CalcFissionSource(e.K, e.fissionSource)

	for iter := 0; iter < e.maxIter; iter++ {
		e.fss.AttachFissionSource(e.fissionSource)
		if err := e.fss.Step(); err != nil {
			return err
		}

		newF := make([]float64, len(e.fissionSource))
		e.sweeper.CalcFissionSource(e.K, newF)

		sumOld := sum(e.fissionSource)
		sumNew := sum(newF)
		newK := e.K
		if sumOld != 0 {
			newK = e.K * sumNew / sumOld
		}

		dk := math.Abs(newK - e.K)
		df := l2RelDiff(newF, e.fissionSource)

		e.K = newK
		copy(e.fissionSource, newF)

		if dk < e.epsK && df < e.epsF {
			return nil
		}

		if e.interrupted {
			if e.onInterrupt != nil {
				e.onInterrupt()
			}
			return nil
		}
	}
	return merr.Convergence("solver.EigenSolver", e.maxIter, "k-eigenvalue did not converge (k=%v)", e.K)
}

func sum(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x
	}
	return s
}

// l2RelDiff returns L2(a-b)/L2(b), or 0 if both norms are zero (a
// genuinely zero fission source is considered converged rather than
// producing a 0/0 NaN).
func l2RelDiff(a, b []float64) float64 {
	var num, den float64
	for i := range a {
		d := a[i] - b[i]
		num += d * d
		den += b[i] * b[i]
	}
	if den == 0 {
		if num == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return math.Sqrt(num / den)
}
