// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sn

import (
	"github.com/ntouran/mocc/correction"
	"github.com/ntouran/mocc/mesh"
	"github.com/ntouran/mocc/quad"
)

// CellWorker is the differencing-scheme capability set spec.md §9
// prescribes in place of the original's template parameter: bind one
// concrete CellWorker at Sweeper construction (via the generic type
// parameter on Sweeper), and the inner-loop Evaluate call is devirtualized
// by Go's monomorphization of generics, preserving the original's
// template-inlining performance without a template language.
//
// Evaluate both returns the cell-centered flux psi and the three outgoing
// face values (the original mutates psiX/psiY/psiZ in place; Go returns
// them instead, since CellWorker is a plain interface value, not a
// pointer-aliased C++ reference parameter).
type CellWorker interface {
	// SetGroup caches any group-dependent data (e.g. xstr is passed per
	// call, so most DD workers need nothing here; CDD's correction
	// lookup is index by group at Evaluate time).
	SetGroup(group int)
	// SetAngle caches the angle's absolute direction cosines and weight
	// for the rest of this angle's sweep.
	SetAngle(angleIndex int, a quad.Angle)
	// SetZ caches the axial cell thickness for the current plane.
	SetZ(iz int)
	// SetY caches anything that depends only on the row index (present
	// for symmetry with SetZ; the standard and CDD workers look up pin
	// pitch by idx directly, since pitch does not vary with row).
	SetY(iy int)
	// Evaluate solves the one-cell diamond-difference relation given the
	// upwind face values, self-scatter-plus-external source q, and
	// total cross section xstr, for coarse cell idx. It returns the
	// cell-average flux and the three outgoing face values.
	Evaluate(psiX, psiY, psiZ, q, xstr float64, idx int) (psi, outX, outY, outZ float64)
}

// DiamondDifference is the standard (uncorrected) diamond-difference
// CellWorker: the textbook closure relating cell-average flux to the
// upwind and downwind face values via faceOut = 2*psi - faceIn. No
// correction is applied; this is equivalent to CDD with every alpha/beta
// factor fixed at 1 (the 2D3D composite's degenerate case before the
// first MoC sweep has populated real corrections).
type DiamondDifference struct {
	cm *mesh.CoreMesh

	absOx, absOy, absOz float64
	hz                  float64
}

// NewDiamondDifference builds a DiamondDifference CellWorker bound to the
// given CoreMesh, from which it reads per-pin pitch and per-plane height.
func NewDiamondDifference(cm *mesh.CoreMesh) *DiamondDifference {
	return &DiamondDifference{cm: cm}
}

func (d *DiamondDifference) SetGroup(int) {}

func (d *DiamondDifference) SetAngle(_ int, a quad.Angle) {
	d.absOx = absf(a.Ox)
	d.absOy = absf(a.Oy)
	d.absOz = absf(a.Oz)
}

func (d *DiamondDifference) SetZ(iz int) {
	d.hz = d.cm.Core.Hz()[iz]
}

func (d *DiamondDifference) SetY(int) {}

func (d *DiamondDifference) Evaluate(psiX, psiY, psiZ, q, xstr float64, idx int) (psi, outX, outY, outZ float64) {
	pin := d.cm.Pin(idx)
	hx := pin.PinMesh.PitchX()
	hy := pin.PinMesh.PitchY()
	cx := 2 * d.absOx / hx
	cy := 2 * d.absOy / hy
	cz := 2 * d.absOz / d.hz
	psi = (q + cx*psiX + cy*psiY + cz*psiZ) / (xstr + cx + cy + cz)
	outX = clampNonNeg(2*psi - psiX)
	outY = clampNonNeg(2*psi - psiY)
	outZ = clampNonNeg(2*psi - psiZ)
	return
}

// CDD is the corrected-diamond-difference CellWorker: the same relation as
// DiamondDifference but with the radial coefficients (and the single
// axial coefficient) scaled by the alpha/beta factors a MoC plane sweep
// produced for this (pin, group, angle), per spec.md §4.4/§4.9's CDD cell
// worker. Reads correction.Data supplied by the 2D3D composite sweeper.
type CDD struct {
	cm   *mesh.CoreMesh
	corr *correction.Data

	absOx, absOy, absOz float64
	hz                  float64
	group, angleIndex   int
}

// NewCDD builds a CDD CellWorker bound to the given CoreMesh and
// CorrectionData; corr must outlive the CDD worker (owned by the 2D3D
// composite sweeper, per spec.md §3's ownership rules).
func NewCDD(cm *mesh.CoreMesh, corr *correction.Data) *CDD {
	return &CDD{cm: cm, corr: corr}
}

func (c *CDD) SetGroup(group int) { c.group = group }

func (c *CDD) SetAngle(angleIndex int, a quad.Angle) {
	c.angleIndex = angleIndex
	c.absOx = absf(a.Ox)
	c.absOy = absf(a.Oy)
	c.absOz = absf(a.Oz)
}

func (c *CDD) SetZ(iz int) {
	c.hz = c.cm.Core.Hz()[iz]
}

func (c *CDD) SetY(int) {}

func (c *CDD) Evaluate(psiX, psiY, psiZ, q, xstr float64, idx int) (psi, outX, outY, outZ float64) {
	pin := c.cm.Pin(idx)
	hx := pin.PinMesh.PitchX()
	hy := pin.PinMesh.PitchY()

	alphaX, alphaY, beta := c.corr.Get(idx, c.group, c.angleIndex)

	cx := 2 * alphaX * c.absOx / hx
	cy := 2 * alphaY * c.absOy / hy
	cz := 2 * beta * c.absOz / c.hz
	psi = (q + cx*psiX + cy*psiY + cz*psiZ) / (xstr + cx + cy + cz)
	outX = clampNonNeg(2*psi - psiX)
	outY = clampNonNeg(2*psi - psiY)
	outZ = clampNonNeg(2*psi - psiZ)
	return
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// clampNonNeg guards against the small negative overshoots plain diamond
// difference can produce near a sharply peaked source; the original codes
// this corpus is grounded on apply the same nonnegative fixup rather than
// a full negative-flux algorithm (out of scope here).
func clampNonNeg(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}
