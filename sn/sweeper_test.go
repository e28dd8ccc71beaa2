// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sn

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/ntouran/mocc/mat"
	"github.com/ntouran/mocc/mesh"
	"github.com/ntouran/mocc/quad"
	"github.com/ntouran/mocc/xsmesh"
)

// buildUnitCell builds a single-pin, single-plane CoreMesh with the given
// per-group absorption and scattering, no fission.
func buildUnitCell(tst *testing.T, xsab []float64, scat [][]float64) *mesh.CoreMesh {
	ng := len(xsab)
	zero := make([]float64, ng)
	m, err := mat.NewMaterial("u", xsab, zero, zero, zero, zero, scat)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	lib := mat.NewLibraryForTest(ng, map[string]*mat.Material{"u": m})
	if err := lib.AssignID(1, "u"); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	pm, err := mesh.NewUniformPinMesh(1, 1, 1.0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	p, err := mesh.NewPin(1, pm, []int{1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	lat, err := mesh.NewLattice(1, 1, 1, []*mesh.Pin{p})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	asy, err := mesh.NewAssembly(1, []*mesh.Lattice{lat}, []float64{1.0})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	core, err := mesh.NewCore(1, 1, []*mesh.Assembly{asy})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return mesh.NewCoreMesh(core, lib)
}

func TestSweepInfiniteMediumFixedSource(tst *testing.T) {
	chk.PrintTitle("Sn sweep converges to S/xsab in an all-reflective infinite medium (S1)")

	cm := buildUnitCell(tst, []float64{1.0}, [][]float64{{0.0}})
	q, err := quad.NewProductQuadrature(2, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	h := xsmesh.NewHomogenized(cm)

	sw, err := NewSweeper(cm, q, h.Regions, 1, 4, Reflective, NewDiamondDifference(cm))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	src := sw.CreateSource()
	src.SetExternal([][]float64{{1.0}})
	sw.AssignSource(src)

	for outer := 0; outer < 60; outer++ {
		src.InScatter(0)
		if err := sw.Sweep(0); err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
	}

	chk.Scalar(tst, "phi", 1e-6, sw.Flux[0][0], 1.0)
}

func TestSweepTwoGroupUpscatter(tst *testing.T) {
	chk.PrintTitle("two-group direct-inversion cross-check (S2)")

	xsab := []float64{1.0, 2.0}
	scat := [][]float64{{0.3, 0.0}, {0.1, 0.5}}
	cm := buildUnitCell(tst, xsab, scat)
	q, err := quad.NewProductQuadrature(2, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	h := xsmesh.NewHomogenized(cm)

	sw, err := NewSweeper(cm, q, h.Regions, 2, 6, Reflective, NewDiamondDifference(cm))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	src := sw.CreateSource()
	src.SetExternal([][]float64{{1.0, 0.0}})
	sw.AssignSource(src)

	for outer := 0; outer < 200; outer++ {
		for g := 0; g < 2; g++ {
			src.InScatter(g)
			if err := sw.Sweep(g); err != nil {
				tst.Fatalf("unexpected error: %v", err)
			}
		}
	}

	// Direct inversion of (Sigma_t - S)phi = q with q = [1, 0]:
	// group 0: xstr0 = xsab0 + out(0) = 1.0 + 0.3 = 1.3
	// group 1: xstr1 = xsab1 + out(1) = 2.0 + 0.1 = 2.1
	// (1.3)phi0 - 0.1*phi1 = 1
	// -0.3*phi0 + 2.1*phi1 = 0  -> phi1 = 0.3/2.1 * phi0
	// 1.3*phi0 - 0.1*(0.3/2.1)*phi0 = 1 -> phi0 (1.3 - 0.0142857) = 1
	chk.Scalar(tst, "phi0", 1e-4, sw.Flux[0][0], 1.0)
	chk.Scalar(tst, "phi1", 1e-4, sw.Flux[0][1], 0.1)
}

func TestSweepReflectiveZeroSourceStaysZero(tst *testing.T) {
	chk.PrintTitle("reflective BCs with zero source keep scalar flux at zero (S8)")

	cm := buildUnitCell(tst, []float64{1.0}, [][]float64{{0.0}})
	q, err := quad.NewProductQuadrature(2, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	h := xsmesh.NewHomogenized(cm)

	sw, err := NewSweeper(cm, q, h.Regions, 1, 3, Reflective, NewDiamondDifference(cm))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	src := sw.CreateSource()
	sw.AssignSource(src)

	for outer := 0; outer < 10; outer++ {
		src.InScatter(0)
		if err := sw.Sweep(0); err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
	}

	chk.Scalar(tst, "phi", 1e-12, sw.Flux[0][0], 0.0)
}

func TestNewSweeperConfigErrors(tst *testing.T) {
	chk.PrintTitle("empty regions and negative n_inner are ConfigErrors")

	cm := buildUnitCell(tst, []float64{1.0}, [][]float64{{0.0}})
	q, err := quad.NewProductQuadrature(1, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	if _, err := NewSweeper(cm, q, nil, 1, 2, Vacuum, NewDiamondDifference(cm)); err == nil {
		tst.Fatalf("expected ConfigError for empty regions")
	}

	h := xsmesh.NewHomogenized(cm)
	if _, err := NewSweeper(cm, q, h.Regions, 1, -1, Vacuum, NewDiamondDifference(cm)); err == nil {
		tst.Fatalf("expected ConfigError for negative n_inner")
	}
}
