// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xsmesh maps fine regions (or, homogenized, whole pins) to
// macroscopic cross sections: transport, nu-fission, kappa-fission, chi,
// and the scattering matrix. It is built once from a mesh.CoreMesh and
// mat.Library (the fine XSMesh), or rebuilt per outer iteration from a
// flux estimate (the homogenized XSMeshHomogenized).
package xsmesh

import "github.com/ntouran/mocc/mat"

// Region is one cross-section region: the fine-region indices it covers,
// and its macroscopic cross sections. Immutable once emitted by
// homogenization.
type Region struct {
	FSRs []int
	Xstr []float64
	Xsnf []float64
	Xsch []float64
	Xskf []float64
	Xssc mat.ScatteringMatrix
}

// NumGroups returns the number of energy groups.
func (r *Region) NumGroups() int { return len(r.Xstr) }

// newScatteringMatrixFromDense wraps mat.NewScatteringMatrix so
// homogenization code in this package doesn't need to import mat directly
// at every call site.
func newScatteringMatrixFromDense(scat [][]float64) mat.ScatteringMatrix {
	return mat.NewScatteringMatrix(scat)
}
