// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmdo

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/ntouran/mocc/correction"
	"github.com/ntouran/mocc/mat"
	"github.com/ntouran/mocc/mesh"
	"github.com/ntouran/mocc/quad"
	"github.com/ntouran/mocc/sn"
	"github.com/ntouran/mocc/xsmesh"
	"github.com/ntouran/mocc/xsource"
)

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

func TestCompositeSweepInfiniteMediumFixedSource(tst *testing.T) {
	chk.PrintTitle("2D3D composite converges to S/xsab in an all-reflective infinite medium")

	cm := buildUnitCell(tst, []float64{1.0}, [][]float64{{0.0}})
	q, err := quad.NewProductQuadrature(2, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	h := xsmesh.NewHomogenized(cm)

	corr := correction.NewData(cm.NumPins(), 1, q.Len())
	worker := sn.NewCDD(cm, corr)

	comp, err := NewComposite(cm, q, h.Regions, 1, 4, sn.Reflective, worker, corr)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	src := comp.CreateSource()
	src.SetExternal([][]float64{{1.0}})
	comp.AssignSource(xsource.From2D3D(src))

	for outer := 0; outer < 60; outer++ {
		comp.StoreOldFlux()
		src.InScatter(0)
		if err := comp.Sweep(0); err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
	}

	chk.Scalar(tst, "phi_sn", 1e-6, comp.Sn.Flux[0][0], 1.0)
	chk.Scalar(tst, "phi_moc", 1e-6, comp.Moc.Flux[0][0], 1.0)
}

func TestCompositeNewConfigError(tst *testing.T) {
	chk.PrintTitle("empty regions is a ConfigError from the composite constructor")

	cm := buildUnitCell(tst, []float64{1.0}, [][]float64{{0.0}})
	q, err := quad.NewProductQuadrature(1, 1)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	corr := correction.NewData(cm.NumPins(), 1, q.Len())
	worker := sn.NewCDD(cm, corr)

	if _, err := NewComposite(cm, q, nil, 1, 2, sn.Vacuum, worker, corr); err == nil {
		tst.Fatalf("expected ConfigError for empty regions")
	}
}
