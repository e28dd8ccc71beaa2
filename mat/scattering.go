// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mat is the material library: per-material macroscopic cross
// sections and scattering matrices, plus a thin text-format reader. The
// reader is an ambient collaborator (spec.md places "the material library
// file reader" out of the core's scope) but the Material/ScatteringMatrix
// data types it produces are consumed throughout xsmesh, sn, and moc.
package mat

import "github.com/cpmech/gosl/chk"

// ScatteringRow is the compact nonzero in-scatter row for one destination
// group: coefficients from source groups [MinG, MaxG] into that
// destination.
type ScatteringRow struct {
	MinG, MaxG int
	From       []float64 // length MaxG-MinG+1
}

// ScatteringMatrix is a dense ng x ng scattering matrix, stored per
// destination-group row in compact (MinG, MaxG, From) form, with a
// per-source-group "out" total precomputed for the transport XS formula.
type ScatteringMatrix struct {
	ng   int
	rows []ScatteringRow // rows[g] = nonzero in-scatter coefficients into g
	out  []float64       // out[g] = total out-scatter from g = sum_g' scat(g->g')
}

// NewScatteringMatrix builds a ScatteringMatrix from a dense ng x ng
// matrix scat[g][g'] (scattering from g to g'), compacting each
// destination row to its nonzero span.
func NewScatteringMatrix(scat [][]float64) ScatteringMatrix {
	ng := len(scat)
	rows := make([]ScatteringRow, ng)
	out := make([]float64, ng)

	// rows[g] holds in-scatter into g: look at column g across all scat[g'][g].
	for g := 0; g < ng; g++ {
		minG, maxG := -1, -1
		for gp := 0; gp < ng; gp++ {
			if scat[gp][g] != 0 {
				if minG == -1 {
					minG = gp
				}
				maxG = gp
			}
		}
		if minG == -1 {
			rows[g] = ScatteringRow{MinG: 0, MaxG: -1, From: nil}
			continue
		}
		from := make([]float64, maxG-minG+1)
		for gp := minG; gp <= maxG; gp++ {
			from[gp-minG] = scat[gp][g]
		}
		rows[g] = ScatteringRow{MinG: minG, MaxG: maxG, From: from}
	}

	for gp := 0; gp < ng; gp++ {
		var sum float64
		for g := 0; g < ng; g++ {
			sum += scat[gp][g]
		}
		out[gp] = sum
	}

	return ScatteringMatrix{ng: ng, rows: rows, out: out}
}

// NumGroups returns the number of energy groups.
func (s ScatteringMatrix) NumGroups() int { return s.ng }

// To returns the compact in-scatter row for destination group g.
func (s ScatteringMatrix) To(g int) ScatteringRow { return s.rows[g] }

// Out returns the total out-scatter from source group g: sum over
// destination groups g' of scat(g -> g').
func (s ScatteringMatrix) Out(g int) float64 { return s.out[g] }

// AsDense reconstructs the full ng x ng matrix (scat[g][g'], g source, g'
// destination), mainly for output serialization.
func (s ScatteringMatrix) AsDense() [][]float64 {
	dense := make([][]float64, s.ng)
	for g := range dense {
		dense[g] = make([]float64, s.ng)
	}
	for g, row := range s.rows {
		for gp := row.MinG; gp <= row.MaxG; gp++ {
			dense[gp][g] = row.From[gp-row.MinG]
		}
	}
	return dense
}

// AsVector flattens AsDense() row-major (source-group-major), matching the
// layout the original HDF5 writer used for /xsmesh/xssc.
func (s ScatteringMatrix) AsVector() []float64 {
	dense := s.AsDense()
	v := make([]float64, 0, s.ng*s.ng)
	for _, row := range dense {
		v = append(v, row...)
	}
	return v
}

// checkConservation validates that, for every source group, the sum of its
// compact-row contributions across all destination rows equals Out(g) —
// the fine-grained/aggregate conservation invariant from spec.md §8.4.
func checkConservation(s ScatteringMatrix) error {
	sums := make([]float64, s.ng)
	for g, row := range s.rows {
		for gp := row.MinG; gp <= row.MaxG; gp++ {
			sums[gp] += row.From[gp-row.MinG]
		}
		_ = g
	}
	for gp := 0; gp < s.ng; gp++ {
		if diff := sums[gp] - s.out[gp]; diff > 1e-9 || diff < -1e-9 {
			return chk.Err("mat: scattering matrix fails conservation for group %d: row sum %g != out %g",
				gp, sums[gp], s.out[gp])
		}
	}
	return nil
}
