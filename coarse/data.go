// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coarse is the shared mutable surface-current bus between the
// MoC and Sn sub-sweepers of a 2D3D composite: per-group, per-surface
// net angular-flux currents, plus flags recording which of {radial,
// axial} data is currently valid. Lifetime equals the owning composite
// sweeper's; it is allocated once and reused across outer iterations
// (spec.md §5's "no dynamic allocation in the inner loop").
package coarse

import "github.com/ntouran/mocc/quad"

// Data is the CoarseData bus. Surface currents are stored one flat slice
// per normal (X, Y, Z), each sized (count-of-that-normal's-faces) x
// NumGroups, group-minor. A face at coarse position (ix, iy, iz) on the
// low side of a cell along a given normal has a well-defined linear index
// via the indexer built at construction; see XIndex/YIndex/ZIndex.
//
// Single-writer-per-group discipline (spec.md §5): the Sn sweeper zeroes
// and fills this bus on a group's last inner iteration; the MoC sweeper
// fills radial (X, Y) currents during its plane sweeps, before Sn reads
// them. Nothing in this type enforces that ordering — the composite
// sweeper's control flow is the synchronization, not a mutex, exactly as
// spec.md's Design Notes call for ("model via an explicit handoff...
// guarded by single-threaded invariant").
type Data struct {
	Nx, Ny, Nz int
	Ng         int

	// J holds net surface currents, one slice per normal, indexed
	// face*Ng+group.
	Jx []float64 // (Nx+1)*Ny*Nz faces
	Jy []float64 // Nx*(Ny+1)*Nz faces
	Jz []float64 // Nx*Ny*(Nz+1) faces

	HasRadialData bool
	HasAxialData  bool
}

// NewData allocates a CoarseData bus sized to a coarse mesh of the given
// pin-grid dimensions and group count.
func NewData(nx, ny, nz, ng int) *Data {
	return &Data{
		Nx: nx, Ny: ny, Nz: nz, Ng: ng,
		Jx: make([]float64, (nx+1)*ny*nz*ng),
		Jy: make([]float64, nx*(ny+1)*nz*ng),
		Jz: make([]float64, nx*ny*(nz+1)*ng),
	}
}

// XIndex returns the flat Jx index of the face at the low-x side of cell
// (ix, iy, iz) for group g; ix in [0, Nx] addresses the Nx+1 faces along
// x, including both domain boundaries.
func (d *Data) XIndex(ix, iy, iz, g int) int {
	return (((iz*d.Ny+iy)*(d.Nx+1) + ix) * d.Ng) + g
}

// YIndex is XIndex's analogue along y.
func (d *Data) YIndex(ix, iy, iz, g int) int {
	return (((iz*(d.Ny+1)+iy)*d.Nx + ix) * d.Ng) + g
}

// ZIndex is XIndex's analogue along z.
func (d *Data) ZIndex(ix, iy, iz, g int) int {
	return (((iz*d.Ny+iy)*d.Nx + ix) * d.Ng) + g
}

// ZeroGroup clears every surface current for the given group, leaving
// other groups' data untouched. Called by the Sn sweeper's current
// worker on the last inner iteration of a group, per spec.md §4.4's
// "zero its group-g buckets" step, before it refills them.
func (d *Data) ZeroGroup(g int) {
	zero := func(j []float64, stride int) {
		for i := g; i < len(j); i += stride {
			j[i] = 0
		}
	}
	zero(d.Jx, d.Ng)
	zero(d.Jy, d.Ng)
	zero(d.Jz, d.Ng)
}

// AddCurrent accumulates a signed contribution to the surface current at
// the given normal/position/group. sign follows the convention that
// positive is outward along the increasing-coordinate direction of norm.
func (d *Data) AddCurrent(norm quad.Normal, ix, iy, iz, g int, value float64) {
	switch norm {
	case quad.XNorm:
		d.Jx[d.XIndex(ix, iy, iz, g)] += value
	case quad.YNorm:
		d.Jy[d.YIndex(ix, iy, iz, g)] += value
	case quad.ZNorm:
		d.Jz[d.ZIndex(ix, iy, iz, g)] += value
	}
}

// Current returns the stored surface current at the given normal/position/group.
func (d *Data) Current(norm quad.Normal, ix, iy, iz, g int) float64 {
	switch norm {
	case quad.XNorm:
		return d.Jx[d.XIndex(ix, iy, iz, g)]
	case quad.YNorm:
		return d.Jy[d.YIndex(ix, iy, iz, g)]
	default:
		return d.Jz[d.ZIndex(ix, iy, iz, g)]
	}
}
