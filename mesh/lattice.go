// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// Lattice is a 2-D grid of Pin references with dimensions (Nx, Ny) and
// footprint (Hx, Hy); it aggregates fine-region and XS-region counts over
// its pins.
type Lattice struct {
	ID     int
	Nx, Ny int
	Hx, Hy float64
	Pins   []*Pin // length Nx*Ny, row-major with ix fastest-varying, lower-left origin
}

// NewLattice builds a Lattice from a flat, lower-left-origin pin slice.
// Every pin must share the same footprint so Hx, Hy are well defined.
func NewLattice(id, nx, ny int, pins []*Pin) (*Lattice, error) {
	if nx <= 0 || ny <= 0 {
		return nil, chk.Err("mesh: lattice %d has invalid dimensions %dx%d", id, nx, ny)
	}
	if len(pins) != nx*ny {
		return nil, chk.Err("mesh: lattice %d expects %d pins, got %d", id, nx*ny, len(pins))
	}
	hx := pins[0].PinMesh.PitchX()
	hy := pins[0].PinMesh.PitchY()
	for _, p := range pins {
		if p.PinMesh.PitchX() != hx || p.PinMesh.PitchY() != hy {
			return nil, chk.Err("mesh: lattice %d has pins with mismatched pitches", id)
		}
	}
	return &Lattice{
		ID: id, Nx: nx, Ny: ny,
		Hx: hx * float64(nx), Hy: hy * float64(ny),
		Pins: append([]*Pin(nil), pins...),
	}, nil
}

// At returns the pin at grid position (ix, iy), lower-left origin.
func (l *Lattice) At(ix, iy int) *Pin { return l.Pins[iy*l.Nx+ix] }

// NumRegions returns the total fine-region count across all pins.
func (l *Lattice) NumRegions() int {
	n := 0
	for _, p := range l.Pins {
		n += p.NumFSRs()
	}
	return n
}

// NumXSRegions returns the total XS-region count across all pins.
func (l *Lattice) NumXSRegions() int {
	n := 0
	for _, p := range l.Pins {
		n += p.NumXSRegions()
	}
	return n
}
