// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package moc

import "github.com/ntouran/mocc/quad"

// boundary is the MoC sweeper's own per-group, per-angle, per-plane
// incoming/outgoing face state, restricted to the two radial normals (X,
// Y) since each plane is swept independently with no axial streaming
// (spec.md's "performs a 2-D MoC sweep for each axial plane").
//
// A separate type from sn.Boundary rather than a reused one: moc must not
// import sn (sn is the higher-level consumer of moc's corrections inside
// cmdo), and the two differ in shape (moc has no Z face, and is indexed
// per-plane since each plane's boundary is independent).
type boundary struct {
	ng, nAngle, nz, nx, ny int
	bcKind                 BCKind
	inX, outX              [][][][]float64 // [group][angle][plane] -> ny
	inY, outY              [][][][]float64 // [group][angle][plane] -> nx
}

// BCKind mirrors sn.BCKind for the radial faces MoC sweeps.
type BCKind int

const (
	Vacuum BCKind = iota
	Reflective
)

func newBoundary(ng, nAngle, nx, ny, nz int, bcKind BCKind) *boundary {
	b := &boundary{ng: ng, nAngle: nAngle, nz: nz, nx: nx, ny: ny, bcKind: bcKind}
	allocX := func() [][][][]float64 {
		a := make([][][][]float64, ng)
		for g := range a {
			a[g] = make([][][]float64, nAngle)
			for ia := range a[g] {
				a[g][ia] = make([][]float64, nz)
				for iz := range a[g][ia] {
					a[g][ia][iz] = make([]float64, ny)
				}
			}
		}
		return a
	}
	allocY := func() [][][][]float64 {
		a := make([][][][]float64, ng)
		for g := range a {
			a[g] = make([][][]float64, nAngle)
			for ia := range a[g] {
				a[g][ia] = make([][]float64, nz)
				for iz := range a[g][ia] {
					a[g][ia][iz] = make([]float64, nx)
				}
			}
		}
		return a
	}
	b.inX, b.outX = allocX(), allocX()
	b.inY, b.outY = allocY(), allocY()
	return b
}

// propagate copies this (group, angle, plane)'s outgoing faces into bc_in,
// either as a no-op (Vacuum) or into the specularly reflected angle's
// incoming faces (Reflective), mirroring sn.Boundary.PropagateAngle for
// the two radial normals only.
func (b *boundary) propagate(q *quad.Quadrature, group, angle, iz int) {
	if b.bcKind == Vacuum {
		return
	}
	if refl := q.Reflect(angle, quad.XNorm); refl >= 0 {
		copy(b.inX[group][refl][iz], b.outX[group][angle][iz])
	}
	if refl := q.Reflect(angle, quad.YNorm); refl >= 0 {
		copy(b.inY[group][refl][iz], b.outY[group][angle][iz])
	}
}
