// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// Assembly is an axial stack of Lattice references with per-plane heights
// Hz[0..nz). All lattices in an assembly share the same (Hx, Hy).
type Assembly struct {
	ID       int
	Lattices []*Lattice // length Nz, plane 0 at the bottom
	Hz       []float64
	Hx, Hy   float64
}

// NewAssembly builds an Assembly from its per-plane lattices and heights.
// Errors if the lattice footprints differ, or if both a scalar height and
// a per-plane height vector were supplied upstream (that over-specification
// check belongs to the config loader — see config's assemblyHeights — since it
// depends on which attributes were present in the input document, not on
// the Lattice/height data itself).
func NewAssembly(id int, lattices []*Lattice, hz []float64) (*Assembly, error) {
	if len(lattices) == 0 {
		return nil, chk.Err("mesh: assembly %d has no planes", id)
	}
	if len(hz) != len(lattices) {
		return nil, chk.Err("mesh: assembly %d: got %d plane heights for %d lattices", id, len(hz), len(lattices))
	}
	hx, hy := lattices[0].Hx, lattices[0].Hy
	for _, l := range lattices {
		if l.Hx != hx || l.Hy != hy {
			return nil, chk.Err("mesh: assembly %d has lattices with mismatched footprints", id)
		}
	}
	for _, h := range hz {
		if h <= 0 {
			return nil, chk.Err("mesh: assembly %d has a non-positive plane height", id)
		}
	}
	return &Assembly{
		ID:       id,
		Lattices: append([]*Lattice(nil), lattices...),
		Hz:       append([]float64(nil), hz...),
		Hx:       hx, Hy: hy,
	}, nil
}

// NumPlanes returns the number of axial planes (== len(Hz)).
func (a *Assembly) NumPlanes() int { return len(a.Hz) }

// NumRegions returns the total fine-region count across all planes.
func (a *Assembly) NumRegions() int {
	n := 0
	for _, l := range a.Lattices {
		n += l.NumRegions()
	}
	return n
}

// NumXSRegions returns the total XS-region count across all planes.
func (a *Assembly) NumXSRegions() int {
	n := 0
	for _, l := range a.Lattices {
		n += l.NumXSRegions()
	}
	return n
}
