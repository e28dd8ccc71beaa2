// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xsource builds the per-region, per-group source a sweeper's
// inner iteration consumes: fission, in-scatter (from groups other than
// the one being swept), external, and self-scatter. The last is
// recomputed every inner iteration from the evolving one-group flux, so
// it is kept out of the accumulated Q and folded in only by SelfScatter.
package xsource

import (
	"math"

	"github.com/ntouran/mocc/xsmesh"
)

// Source is the per-group scalar source array for one sweeper: external +
// fission + in-scatter contributions, sized to the number of regions the
// owning XS mesh covers (fine regions for a plain XSMesh, pins for a
// Homogenized one). Self-scatter is computed separately, per inner
// iteration, via SelfScatter.
type Source struct {
	nReg    int
	ng      int
	regions []xsmesh.Region // XS regions whose FSRs partition [0, nReg)
	flux    [][]float64     // shared reference to the sweeper's flux(region, group)
	ext     [][]float64     // optional fixed external source, nil if none
	q       [][]float64     // accumulated fission+in-scatter+external, per group
}

// NewSource builds a Source over the given XS regions and a read-only
// reference to the owning sweeper's flux array (flux[region][group]).
// regions' FSRs must partition [0, nReg).
func NewSource(nReg, ng int, regions []xsmesh.Region, flux [][]float64) *Source {
	q := make([][]float64, ng)
	for g := range q {
		q[g] = make([]float64, nReg)
	}
	return &Source{nReg: nReg, ng: ng, regions: regions, flux: flux, q: q}
}

// NumGroups returns the number of energy groups.
func (s *Source) NumGroups() int { return s.ng }

// Size returns the number of regions the source is sized over.
func (s *Source) Size() int { return s.nReg }

// SetExternal attaches a fixed external source, ext[region][group]. A nil
// external source (the default) contributes nothing.
func (s *Source) SetExternal(ext [][]float64) { s.ext = ext }

// AddExternalDelta adds a per-region delta to one group's external source,
// leaving any previously set external source (and every other group)
// unchanged, allocating the external array first if none has been set.
// Used by the 2D3D composite sweeper's transverse-leakage contribution,
// which is only known after a prior Sn sweep has produced axial currents
// and so cannot be folded into SetExternal up front.
func (s *Source) AddExternalDelta(group int, delta []float64) {
	if s.ext == nil {
		s.ext = make([][]float64, s.nReg)
		for i := range s.ext {
			s.ext[i] = make([]float64, s.ng)
		}
	}
	for i, d := range delta {
		s.ext[i][group] += d
	}
}

// Fission sets the fission contribution to Q for the given group from a
// per-region fission density fissionDensity[region] (already summed over
// all groups: Σ_g' ν·Σf(g')·φ(g')), chi-weighted per XS region. It
// overwrites any prior fission contribution for this group, matching the
// original's source_->fission(*fs_, ig) called once per group per outer.
func (s *Source) Fission(fissionDensity []float64, group int) {
	for _, xsr := range s.regions {
		chi := xsr.Xsch[group]
		for _, ireg := range xsr.FSRs {
			s.q[group][ireg] = chi * fissionDensity[ireg]
		}
	}
}

// InScatter adds the in-scatter contribution to Q for the given group from
// every other group's current flux, using each XS region's scattering
// row. The self-scatter term (group -> group) is excluded here; it is
// folded in separately by SelfScatter on every inner iteration.
func (s *Source) InScatter(group int) {
	for _, xsr := range s.regions {
		row := xsr.Xssc.To(group)
		for gp := row.MinG; gp <= row.MaxG; gp++ {
			if gp == group {
				continue
			}
			coeff := row.From[gp-row.MinG]
			for _, ireg := range xsr.FSRs {
				s.q[group][ireg] += coeff * s.flux[ireg][gp]
			}
		}
	}
	if s.ext != nil {
		for ireg := 0; ireg < s.nReg; ireg++ {
			s.q[group][ireg] += s.ext[ireg][group]
		}
	}
}

// SelfScatter folds the self-scatter term (group -> group, using the
// supplied one-group flux rather than the stored multigroup flux, since it
// changes every inner iteration) into the group's accumulated Q and
// divides by 4*pi, writing the result into out. out must have length
// Size(); it is the array the cell worker reads as q[i] in the sweep.
func (s *Source) SelfScatter(group int, flux1g []float64, out []float64) {
	for _, xsr := range s.regions {
		row := xsr.Xssc.To(group)
		var self float64
		if group >= row.MinG && group <= row.MaxG {
			self = row.From[group-row.MinG]
		}
		for _, ireg := range xsr.FSRs {
			out[ireg] = (s.q[group][ireg] + self*flux1g[ireg]) / (4.0 * math.Pi)
		}
	}
}
