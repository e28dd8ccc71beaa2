// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sn

import "github.com/ntouran/mocc/quad"

// BCKind selects the boundary condition applied to every outer face of
// the coarse mesh: Vacuum (no incoming flux, ever) or Reflective
// (outgoing flux at a face returns as incoming flux for the specularly
// reflected angle on the next pass).
type BCKind int

const (
	Vacuum BCKind = iota
	Reflective
)

// Boundary is the per-group, per-angle, per-normal incoming/outgoing
// angular flux face state (spec.md §3's "Boundary flux state"). Allocated
// once at sweeper construction and reused across every group and outer
// iteration (spec.md §5's "no dynamic allocation in the inner loop").
type Boundary struct {
	ng, nAngle     int
	nx, ny, nz     int
	bcKind         BCKind
	// in/out[group][angle] holds three face buffers indexed by Normal:
	// X (ny*nz), Y (nx*nz), Z (nx*ny).
	in  [][][3][]float64
	out [][][3][]float64
}

// NewBoundary allocates a Boundary for ng groups, an nAngle-angle
// quadrature, a coarse mesh of (nx, ny, nz), and the given BC kind applied
// uniformly to all six outer faces.
func NewBoundary(ng, nAngle, nx, ny, nz int, bcKind BCKind) *Boundary {
	b := &Boundary{ng: ng, nAngle: nAngle, nx: nx, ny: ny, nz: nz, bcKind: bcKind}
	alloc := func() [][][3][]float64 {
		a := make([][][3][]float64, ng)
		for g := range a {
			a[g] = make([][3][]float64, nAngle)
			for ia := range a[g] {
				a[g][ia] = [3][]float64{
					make([]float64, ny*nz),
					make([]float64, nx*nz),
					make([]float64, nx*ny),
				}
			}
		}
		return a
	}
	b.in = alloc()
	b.out = alloc()
	return b
}

// In returns the incoming face buffer for (group, angle, normal). The
// caller indexes it with the two axes complementary to normal.
func (b *Boundary) In(group, angle int, norm quad.Normal) []float64 {
	return b.in[group][angle][norm]
}

// Out returns the outgoing face buffer for (group, angle, normal).
func (b *Boundary) Out(group, angle int, norm quad.Normal) []float64 {
	return b.out[group][angle][norm]
}

// FaceIndex2D returns the linear index into an X/Y/Z face buffer for the
// two complementary coarse-mesh coordinates.
func FaceIndex2D(a, b, na int) int { return b*na + a }

// PropagateAngle copies this angle's outgoing faces into bc_in — either
// straight into the same angle's incoming buffer (Vacuum: a no-op, since
// a vacuum boundary never receives incoming flux from its own outgoing
// flux) or into the specularly-reflected angle's incoming buffer
// (Reflective), per spec.md §4.4's Gauss-Seidel boundary-update step. Used
// both for the immediate per-angle GS update and for the end-of-sweep
// Jacobi update.
func (b *Boundary) PropagateAngle(q *quad.Quadrature, group, angle int) {
	if b.bcKind == Vacuum {
		return
	}
	for _, norm := range []quad.Normal{quad.XNorm, quad.YNorm, quad.ZNorm} {
		refl := q.Reflect(angle, norm)
		if refl < 0 {
			continue
		}
		src := b.out[group][angle][norm]
		dst := b.in[group][refl][norm]
		copy(dst, src)
	}
}

// Kind reports the BC kind the boundary was constructed with. A Vacuum
// boundary's incoming faces never change after NewBoundary's zero-init,
// since PropagateAngle is a no-op for Vacuum.
func (b *Boundary) Kind() BCKind { return b.bcKind }
