// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sn

import (
	"github.com/ntouran/mocc/coarse"
	"github.com/ntouran/mocc/quad"
)

// CurrentWorker is the current-capture capability set spec.md §9
// prescribes: bound per Sweep call (not per sweeper instance, since
// whether current capture runs depends on which inner iteration is
// executing), so it is a plain interface value rather than a generic
// parameter.
type CurrentWorker interface {
	// SetOctant caches the sign of each direction cosine for this
	// angle's octant, used to decide which face of a cell a current
	// contribution belongs to (the low-coordinate face or the
	// high-coordinate face along each axis).
	SetOctant(octant int)
	// UpwindWork records the domain-boundary incoming face values for
	// an angle at the start of its sweep, the one current contribution
	// Evaluate's per-cell outgoing values never produce.
	UpwindWork(x, y, z []float64, angle quad.Angle, angleIndex, group int)
	// CurrentWork records a cell's outgoing face values after Evaluate.
	CurrentWork(outX, outY, outZ float64, ix, iy, iz int, angle quad.Angle, group int)
}

// NoCurrent is the no-op CurrentWorker used on every inner iteration
// except the last, per spec.md §4.4 ("on the last inner iteration...
// sweep with the capturing CurrentWorker, otherwise use the no-op
// worker").
type NoCurrent struct{}

func (NoCurrent) SetOctant(int)                                                       {}
func (NoCurrent) UpwindWork([]float64, []float64, []float64, quad.Angle, int, int)     {}
func (NoCurrent) CurrentWork(float64, float64, float64, int, int, int, quad.Angle, int) {}

// Current is the capturing CurrentWorker: it accumulates surface currents
// (weighted by angle weight and the corresponding direction cosine) into
// a shared coarse.Data bus, on the low-coordinate face when the cosine is
// negative (flux travels toward decreasing index) and the high-coordinate
// face otherwise — equivalently, it always attributes the outgoing value
// of a sweep step to the face the flux is leaving through.
type Current struct {
	bus            *coarse.Data
	nx, ny, nz     int
	sx, sy, sz     float64 // +1 if cosine along that axis is positive this octant, else -1
}

// NewCurrent builds a Current CurrentWorker writing into bus, for a
// coarse mesh of the given dimensions.
func NewCurrent(bus *coarse.Data, nx, ny, nz int) *Current {
	return &Current{bus: bus, nx: nx, ny: ny, nz: nz}
}

func (c *Current) SetOctant(octant int) {
	o := octant
	sz := 1.0
	if o > 4 {
		sz = -1.0
		o -= 4
	}
	switch o {
	case 1:
		c.sx, c.sy = 1, 1
	case 2:
		c.sx, c.sy = -1, 1
	case 3:
		c.sx, c.sy = -1, -1
	case 4:
		c.sx, c.sy = 1, -1
	}
	c.sz = sz
}

// UpwindWork captures the domain-boundary faces this angle enters
// through: x[ny*nz] at either ix=0 (sx>0) or ix=nx (sx<0), and so on for
// y, z. These are the faces Evaluate's cell loop never visits as an
// "outgoing" face for this angle, since the sweep starts at them.
func (c *Current) UpwindWork(x, y, z []float64, angle quad.Angle, angleIndex, group int) {
	ix := 0
	if c.sx < 0 {
		ix = c.nx
	}
	for iz := 0; iz < c.nz; iz++ {
		for iy := 0; iy < c.ny; iy++ {
			v := x[FaceIndex2D(iy, iz, c.ny)]
			c.bus.AddCurrent(quad.XNorm, ix, iy, iz, group, c.sx*angle.Weight*absf(angle.Ox)*v)
		}
	}
	iy0 := 0
	if c.sy < 0 {
		iy0 = c.ny
	}
	for iz := 0; iz < c.nz; iz++ {
		for ixc := 0; ixc < c.nx; ixc++ {
			v := y[FaceIndex2D(ixc, iz, c.nx)]
			c.bus.AddCurrent(quad.YNorm, ixc, iy0, iz, group, c.sy*angle.Weight*absf(angle.Oy)*v)
		}
	}
	iz0 := 0
	if c.sz < 0 {
		iz0 = c.nz
	}
	for iyc := 0; iyc < c.ny; iyc++ {
		for ixc := 0; ixc < c.nx; ixc++ {
			v := z[FaceIndex2D(ixc, iyc, c.nx)]
			c.bus.AddCurrent(quad.ZNorm, ixc, iyc, iz0, group, c.sz*angle.Weight*absf(angle.Oz)*v)
		}
	}
}

// CurrentWork accumulates the outgoing face contribution for one cell
// into the bus, on the face the sweep direction carries the flux toward:
// ix+1 along x if sx>0 (else ix), and symmetrically for y, z.
func (c *Current) CurrentWork(outX, outY, outZ float64, ix, iy, iz int, angle quad.Angle, group int) {
	fx := ix
	if c.sx > 0 {
		fx = ix + 1
	}
	c.bus.AddCurrent(quad.XNorm, fx, iy, iz, group, c.sx*angle.Weight*absf(angle.Ox)*outX)

	fy := iy
	if c.sy > 0 {
		fy = iy + 1
	}
	c.bus.AddCurrent(quad.YNorm, ix, fy, iz, group, c.sy*angle.Weight*absf(angle.Oy)*outY)

	fz := iz
	if c.sz > 0 {
		fz = iz + 1
	}
	c.bus.AddCurrent(quad.ZNorm, ix, iy, fz, group, c.sz*angle.Weight*absf(angle.Oz)*outZ)
}
