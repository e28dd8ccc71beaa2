// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import "github.com/cpmech/gosl/chk"

// Material holds per-group macroscopic cross sections for one material:
// absorption, nu-fission, kappa-fission, fission, chi, and a scattering
// matrix. The transport cross section is derived, not stored:
// Xstr(g) = Xsab[g] + Xssc.Out(g).
type Material struct {
	Name string
	Xsab []float64 // absorption
	Xsnf []float64 // nu-fission
	Xskf []float64 // kappa-fission
	Xsf  []float64 // fission
	Xsch []float64 // chi
	Xssc ScatteringMatrix
}

// NewMaterial validates that all per-group slices share a common length
// and builds a Material.
func NewMaterial(name string, xsab, xsnf, xskf, xsf, xsch []float64, scat [][]float64) (*Material, error) {
	ng := len(xsab)
	for _, v := range [][]float64{xsnf, xskf, xsf, xsch} {
		if len(v) != ng {
			return nil, chk.Err("mat: material %q has mismatched group-vector lengths", name)
		}
	}
	if len(scat) != ng {
		return nil, chk.Err("mat: material %q scattering matrix has %d rows, expected %d", name, len(scat), ng)
	}
	return &Material{
		Name: name,
		Xsab: xsab, Xsnf: xsnf, Xskf: xskf, Xsf: xsf, Xsch: xsch,
		Xssc: NewScatteringMatrix(scat),
	}, nil
}

// NumGroups returns the number of energy groups.
func (m *Material) NumGroups() int { return len(m.Xsab) }

// Xstr returns the transport cross section for group g: absorption plus
// total out-scatter from g.
func (m *Material) Xstr(g int) float64 {
	return m.Xsab[g] + m.Xssc.Out(g)
}

// XstrAll returns the transport cross section for every group.
func (m *Material) XstrAll() []float64 {
	ng := m.NumGroups()
	out := make([]float64, ng)
	for g := 0; g < ng; g++ {
		out[g] = m.Xstr(g)
	}
	return out
}

// FissionSource returns sum_g(Xsnf[g]), used as the weighting factor for
// homogenizing chi by fission source rather than by volume.
func (m *Material) FissionSource() float64 {
	var s float64
	for _, v := range m.Xsnf {
		s += v
	}
	return s
}
