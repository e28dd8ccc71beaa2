// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mc is the Monte Carlo eigenvalue path's typed stub. A full Monte
// Carlo transport kernel is explicitly out of scope (spec.md's Non-goals),
// but `type=montecarlo` must still be a recognized, selectable sweeper so
// the config-driven sweeper factory stays total over every documented
// `type` value rather than failing to parse a config that names it.
// Grounded on original_source/solvers/monte_carlo_eigenvalue_solver.hpp's
// public surface (Sweep, CreateSource), reproduced here with Sweep
// returning merr.ErrNotImplemented and every other method a no-op or a
// zero value.
package mc

import (
	"github.com/ntouran/mocc/mesh"
	"github.com/ntouran/mocc/merr"
	"github.com/ntouran/mocc/xsource"
)

// Sweeper is a non-functional stand-in for a Monte Carlo transport kernel,
// present only so solver.Sweeper has a total set of implementations across
// every `type` spec.md's sweeper config recognizes.
type Sweeper struct {
	cm *mesh.CoreMesh
	ng int
}

// NewSweeper builds a Sweeper stub over the given CoreMesh and group
// count. It never fails; the failure is deferred to Sweep, matching
// spec.md's requirement that config parsing itself accept `type=montecarlo`
// without complaint.
func NewSweeper(cm *mesh.CoreMesh, ng int) *Sweeper {
	return &Sweeper{cm: cm, ng: ng}
}

// CreateSource returns a Source sized to the mesh, mirroring every other
// sweeper's CreateSource shape, since a caller assembling a generic solver
// pipeline should not need a type switch before it learns the kernel is
// unimplemented.
func (s *Sweeper) CreateSource() *xsource.Source {
	return xsource.NewSource(s.cm.NumPins(), s.ng, nil, nil)
}

// AssignSource is a no-op; there is nothing to assign to.
func (s *Sweeper) AssignSource(*xsource.Source) {}

// StoreOldFlux is a no-op.
func (s *Sweeper) StoreOldFlux() {}

// NumGroups returns the group count the stub was built with.
func (s *Sweeper) NumGroups() int { return s.ng }

// NumPins returns the pin count of the bound mesh.
func (s *Sweeper) NumPins() int { return s.cm.NumPins() }

// Sweep always fails with merr.ErrNotImplemented.
func (s *Sweeper) Sweep(group int) error { return merr.ErrNotImplemented }

// CalcFissionSource is a no-op; out is left unchanged.
func (s *Sweeper) CalcFissionSource(k float64, out []float64) {}

// TotalFission returns 0; a real value requires a real kernel.
func (s *Sweeper) TotalFission(old bool) float64 { return 0 }

// GetPinFlux returns a zeroed flux array sized to the mesh.
func (s *Sweeper) GetPinFlux(group int) []float64 {
	return make([]float64, s.cm.NumPins())
}
