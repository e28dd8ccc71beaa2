// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sn implements the one-group, orthogonal-mesh discrete-ordinates
// (Sn) sweep kernel, parameterized on a differencing scheme (CellWorker)
// and a current-capture policy (CurrentWorker), per spec.md §4.4 and the
// capability-set generalization of spec.md §9.
package sn

import (
	"github.com/ntouran/mocc/coarse"
	"github.com/ntouran/mocc/mesh"
	"github.com/ntouran/mocc/merr"
	"github.com/ntouran/mocc/quad"
	"github.com/ntouran/mocc/xsmesh"
	"github.com/ntouran/mocc/xsource"
)

// Sweeper is the variant-parameterized Sn sweep kernel. The differencing
// scheme C is bound once at construction as a Go generic type parameter,
// so Evaluate's per-cell call is monomorphized rather than dispatched
// through an interface vtable on every cell (spec.md §9's devirtualization
// requirement); the current-capture policy is chosen per Sweep call
// instead, since whether it is active depends on which inner iteration is
// running, not on the sweeper's identity.
type Sweeper[C CellWorker] struct {
	cm      *mesh.CoreMesh
	quad    *quad.Quadrature
	regions []xsmesh.Region // one per coarse cell, indexed like CoreMesh.Pin

	ng         int
	nInner     int
	gsBoundary bool

	Worker C
	bc     *Boundary

	coarseData *coarse.Data

	// Flux and FluxOld are dense [pin][group] arrays; Flux is the
	// sweeper's owned multigroup flux, handed out to xsource.Source and
	// xsmesh.Homogenized.Update as a shared read-only reference.
	Flux    [][]float64
	FluxOld [][]float64

	source *xsource.Source
	q1g    []float64 // scratch self-scatter+external source, length nPin

	nx, ny, nz int
}

// NewSweeper builds an Sn Sweeper over the given CoreMesh, quadrature, and
// one-Region-per-pin XS mesh, with nInner inner iterations per group and
// the given boundary condition applied uniformly to all six faces.
// Returns merr.ConfigError if regions is empty or nInner < 0, per spec.md
// §4.4's failure modes.
func NewSweeper[C CellWorker](cm *mesh.CoreMesh, quadr *quad.Quadrature, regions []xsmesh.Region, ng, nInner int, bcKind BCKind, worker C) (*Sweeper[C], error) {
	if len(regions) == 0 {
		return nil, merr.Config("sn.Sweeper", "no XS regions supplied (empty input node)")
	}
	if nInner < 0 {
		return nil, merr.Config("sn.Sweeper", "n_inner must be >= 0, got %d", nInner)
	}
	nx, ny, nz := cm.Dimensions()
	nPin := cm.NumPins()

	flux := make([][]float64, nPin)
	fluxOld := make([][]float64, nPin)
	for i := range flux {
		flux[i] = make([]float64, ng)
		fluxOld[i] = make([]float64, ng)
	}

	return &Sweeper[C]{
		cm: cm, quad: quadr, regions: regions,
		ng: ng, nInner: nInner, gsBoundary: true,
		Worker:  worker,
		bc:      NewBoundary(ng, quadr.Len(), nx, ny, nz, bcKind),
		Flux:    flux,
		FluxOld: fluxOld,
		q1g:     make([]float64, nPin),
		nx:      nx, ny: ny, nz: nz,
	}, nil
}

// SetGSBoundary selects Gauss-Seidel (true) or Jacobi (false) in-angle
// boundary updates, per spec.md §4.4's state machine. Gauss-Seidel is the
// default.
func (s *Sweeper[C]) SetGSBoundary(gs bool) { s.gsBoundary = gs }

// CreateSource builds an Sn source sized to the pin count, reading this
// sweeper's own Flux as its scatter-source reference.
func (s *Sweeper[C]) CreateSource() *xsource.Source {
	return xsource.NewSource(len(s.regions), s.ng, s.regions, s.Flux)
}

// AssignSource stores the source this sweeper's Sweep calls read from.
func (s *Sweeper[C]) AssignSource(src *xsource.Source) { s.source = src }

// StoreOldFlux copies the current flux into FluxOld.
func (s *Sweeper[C]) StoreOldFlux() {
	for i := range s.Flux {
		copy(s.FluxOld[i], s.Flux[i])
	}
}

// NumGroups returns the number of energy groups.
func (s *Sweeper[C]) NumGroups() int { return s.ng }

// CalcFissionSource fills out[pin] with the k-normalized fission density
// (1/k) * sum_g(xsnf[g]*flux[pin][g]), the chi-independent term the
// eigenvalue solver compares across outers and xsource.Source.Fission
// chi-weights per group.
func (s *Sweeper[C]) CalcFissionSource(k float64, out []float64) {
	for i, r := range s.regions {
		var f float64
		for g, nf := range r.Xsnf {
			f += nf * s.Flux[i][g]
		}
		out[i] = f / k
	}
}

// TotalFission returns the volume-weighted total kappa-fission rate
// (current flux, or FluxOld if old is true), used by the eigenvalue
// solver and by output normalization.
func (s *Sweeper[C]) TotalFission(old bool) float64 {
	flux := s.Flux
	if old {
		flux = s.FluxOld
	}
	var total float64
	for i, r := range s.regions {
		vol := s.cm.CoarseVolume(i)
		for g, kf := range r.Xskf {
			total += kf * flux[i][g] * vol
		}
	}
	return total
}

// GetPinFlux returns a copy of the current per-pin scalar flux for group.
func (s *Sweeper[C]) GetPinFlux(group int) []float64 {
	out := make([]float64, len(s.Flux))
	for i := range out {
		out[i] = s.Flux[i][group]
	}
	return out
}

// SetPinFlux overwrites the per-pin scalar flux for group, used by the
// 2D3D composite's do_snproject warm start (MoC pin flux projected into
// Sn between sub-sweeps).
func (s *Sweeper[C]) SetPinFlux(group int, vals []float64) {
	for i, v := range vals {
		s.Flux[i][group] = v
	}
}

// SetCoarseData wires the current-capture bus; when non-nil, the last
// inner iteration of every Sweep call zeroes this group's bucket in it
// and sweeps with the capturing CurrentWorker.
func (s *Sweeper[C]) SetCoarseData(bus *coarse.Data) { s.coarseData = bus }

// NumPins returns the pin count the sweeper's flux arrays are sized over.
func (s *Sweeper[C]) NumPins() int { return len(s.regions) }

// Sweep runs nInner inner iterations of a one-group sweep for the given
// group, per spec.md §4.4. Between inners the self-scatter source is
// rebuilt from the evolving one-group flux; on the last inner, if a
// coarse.Data bus is attached, surface currents are captured into it.
func (s *Sweeper[C]) Sweep(group int) error {
	nPin := len(s.regions)
	flux1g := make([]float64, nPin)
	for i := range flux1g {
		flux1g[i] = s.Flux[i][group]
	}

	xstr := make([]float64, nPin)
	for i, r := range s.regions {
		xstr[i] = r.Xstr[group]
	}

	for inner := 0; inner < s.nInner; inner++ {
		s.source.SelfScatter(group, flux1g, s.q1g)

		var cw CurrentWorker = NoCurrent{}
		if inner == s.nInner-1 && s.coarseData != nil {
			s.coarseData.ZeroGroup(group)
			cw = NewCurrent(s.coarseData, s.nx, s.ny, s.nz)
		}

		flux1g = s.sweepOneGroup(group, xstr, cw)
	}

	if s.coarseData != nil {
		// Sn's CurrentWork captures all three normals on the last inner,
		// overwriting whatever radial currents MoC wrote earlier in this
		// group's composite sweep (spec.md §4.6 step 5).
		s.coarseData.HasRadialData = true
		s.coarseData.HasAxialData = true
	}

	for i := range flux1g {
		s.Flux[i][group] = flux1g[i]
	}
	return nil
}

// sweepOneGroup performs one complete angular sweep for the given group:
// every angle, every cell, in the order spec.md §4.4 prescribes. Angle
// iteration runs sequentially regardless of GSBoundary: parallelizing the
// Jacobi case would require cloning CellWorker's mutable per-angle state
// (SetAngle/SetZ/SetY) into a goroutine-local copy, and the CellWorker
// interface carries no Clone method (see DESIGN.md's note on this
// deviation from spec.md §5's optional goroutine fan-out).
func (s *Sweeper[C]) sweepOneGroup(group int, xstr []float64, cw CurrentWorker) []float64 {
	nPin := len(s.regions)
	flux1g := make([]float64, nPin)

	angles := s.quad.Angles()
	s.Worker.SetGroup(group)

	for ia, a := range angles {
		octant := s.quad.Octant(ia)
		cw.SetOctant(octant)
		s.Worker.SetAngle(ia, a)

		xFlux := append([]float64(nil), s.bc.In(group, ia, quad.XNorm)...)
		yFlux := append([]float64(nil), s.bc.In(group, ia, quad.YNorm)...)
		zFlux := append([]float64(nil), s.bc.In(group, ia, quad.ZNorm)...)

		cw.UpwindWork(xFlux, yFlux, zFlux, a, ia, group)

		izOrder := sweepOrder(s.nz, a.Oz > 0)
		iyOrder := sweepOrder(s.ny, a.Oy > 0)
		ixOrder := sweepOrder(s.nx, a.Ox > 0)

		for _, iz := range izOrder {
			s.Worker.SetZ(iz)
			for _, iy := range iyOrder {
				s.Worker.SetY(iy)
				for _, ix := range ixOrder {
					xi := FaceIndex2D(iy, iz, s.ny)
					yi := FaceIndex2D(ix, iz, s.nx)
					zi := FaceIndex2D(ix, iy, s.nx)

					idx := s.cm.CoarseCell(mesh.Position{IX: ix, IY: iy, IZ: iz})
					psi, outX, outY, outZ := s.Worker.Evaluate(xFlux[xi], yFlux[yi], zFlux[zi], s.q1g[idx], xstr[idx], idx)

					xFlux[xi] = outX
					yFlux[yi] = outY
					zFlux[zi] = outZ

					flux1g[idx] += psi * a.Weight

					cw.CurrentWork(outX, outY, outZ, ix, iy, iz, a, group)
				}
			}
		}

		copy(s.bc.Out(group, ia, quad.XNorm), xFlux)
		copy(s.bc.Out(group, ia, quad.YNorm), yFlux)
		copy(s.bc.Out(group, ia, quad.ZNorm), zFlux)

		if s.gsBoundary {
			s.bc.PropagateAngle(s.quad, group, ia)
		}
	}

	if !s.gsBoundary {
		for ia := range angles {
			s.bc.PropagateAngle(s.quad, group, ia)
		}
	}

	return flux1g
}

// sweepOrder returns the cell indices [0, n) in forward order (0..n-1) if
// forward is true, or reverse order (n-1..0) otherwise, per spec.md
// §4.4's "positive cosine => forward, negative => reverse (start at n-1,
// stop at -1, step -1)".
func sweepOrder(n int, forward bool) []int {
	order := make([]int, n)
	if forward {
		for i := range order {
			order[i] = i
		}
	} else {
		for i := range order {
			order[i] = n - 1 - i
		}
	}
	return order
}
