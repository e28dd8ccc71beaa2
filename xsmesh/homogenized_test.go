// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsmesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/ntouran/mocc/mat"
	"github.com/ntouran/mocc/mesh"
)

func buildOnePinCoreMesh(tst *testing.T, nXSRegions int) (*mesh.CoreMesh, *mat.Library) {
	// use the reader-free path: construct materials directly and assign ids
	// via a minimal in-memory library.
	m1, err := mat.NewMaterial("fuel", []float64{1.0}, []float64{0.8}, []float64{0.8}, []float64{0.8}, []float64{1.0},
		[][]float64{{0.0}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	lib2 := newTestLibrary(tst, 1, map[string]*mat.Material{"fuel": m1}, map[int]string{1: "fuel"})

	pm, err := mesh.NewUniformPinMesh(1, nXSRegions, 1.0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	matIDs := make([]int, nXSRegions)
	for i := range matIDs {
		matIDs[i] = 1
	}
	p, err := mesh.NewPin(1, pm, matIDs)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	lat, err := mesh.NewLattice(1, 1, 1, []*mesh.Pin{p})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	asy, err := mesh.NewAssembly(1, []*mesh.Lattice{lat}, []float64{10.0})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	core, err := mesh.NewCore(1, 1, []*mesh.Assembly{asy})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	cm := mesh.NewCoreMesh(core, lib2)
	return cm, lib2
}

func TestHomogenizedVolumeWeightedSingleMaterial(tst *testing.T) {
	chk.PrintTitle("homogenized XS equals material XS when single material")

	cm, lib := buildOnePinCoreMesh(tst, 1)
	h := NewHomogenized(cm)

	m, _ := lib.ByID(1)
	chk.Vector(tst, "xstr", 1e-12, h.Regions[0].Xstr, []float64{m.Xstr(0)})
	chk.Vector(tst, "xsnf", 1e-12, h.Regions[0].Xsnf, m.Xsnf)
}

func TestHomogenizedZeroFluxDegenerateCase(tst *testing.T) {
	chk.PrintTitle("update with zero flux leaves chi at zero, no NaN")

	cm, _ := buildOnePinCoreMesh(tst, 1)
	h := NewHomogenized(cm)

	nReg := cm.NumRegions()
	flux := make([][]float64, nReg)
	for i := range flux {
		flux[i] = []float64{0.0}
	}
	h.Update(flux)

	for _, v := range h.Regions[0].Xsch {
		if v != 0.0 {
			tst.Fatalf("expected chi == 0 for zero flux, got %g", v)
		}
		if v != v { // NaN check
			tst.Fatalf("chi is NaN")
		}
	}
}

func TestHomogenizedIdempotence(tst *testing.T) {
	chk.PrintTitle("update is idempotent for repeated uniform flux")

	cm, _ := buildOnePinCoreMesh(tst, 1)
	h := NewHomogenized(cm)

	nReg := cm.NumRegions()
	flux := make([][]float64, nReg)
	for i := range flux {
		flux[i] = []float64{1.0}
	}
	h.Update(flux)
	first := append([]float64(nil), h.Regions[0].Xstr...)

	h.Update(flux)
	second := h.Regions[0].Xstr

	chk.Vector(tst, "xstr", 1e-12, second, first)
}

// buildTwoPinCoreMesh builds a 2x1 lattice where the first pin has 3 FSRs
// and the second has 1, so the first pin's cumulative fine-region offset
// (0) coincides with its pin index (0) but the second pin's offset (3)
// diverges sharply from its pin index (1) — the case that exposes a
// FSRs-as-fine-region-offset bug that a single, uniform-FSR pin can't.
func buildTwoPinCoreMesh(tst *testing.T) (*mesh.CoreMesh, *mat.Library) {
	m1, err := mat.NewMaterial("fuel", []float64{1.0}, []float64{0.8}, []float64{0.8}, []float64{0.8}, []float64{1.0},
		[][]float64{{0.0}})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	lib := newTestLibrary(tst, 1, map[string]*mat.Material{"fuel": m1}, map[int]string{1: "fuel"})

	pm0, err := mesh.NewUniformPinMesh(1, 3, 1.0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	pm1, err := mesh.NewUniformPinMesh(2, 1, 1.0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	p0, err := mesh.NewPin(1, pm0, []int{1, 1, 1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	p1, err := mesh.NewPin(2, pm1, []int{1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	lat, err := mesh.NewLattice(1, 2, 1, []*mesh.Pin{p0, p1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	asy, err := mesh.NewAssembly(1, []*mesh.Lattice{lat}, []float64{10.0})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	core, err := mesh.NewCore(1, 1, []*mesh.Assembly{asy})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return mesh.NewCoreMesh(core, lib), lib
}

func TestHomogenizedUpdateFSRsIsPinIndexForMultiFSRPin(tst *testing.T) {
	chk.PrintTitle("update's FSRs entry stays a pin index even when an earlier pin has multiple FSRs")

	cm, _ := buildTwoPinCoreMesh(tst)
	h := NewHomogenized(cm)

	nReg := cm.NumRegions()
	flux := make([][]float64, nReg)
	for i := range flux {
		flux[i] = []float64{1.0}
	}
	h.Update(flux)

	nPin := cm.NumPins()
	if nPin != 2 {
		tst.Fatalf("expected 2 pins, got %d", nPin)
	}
	for i, r := range h.Regions {
		for _, ireg := range r.FSRs {
			if ireg < 0 || ireg >= nPin {
				tst.Fatalf("region %d: FSRs entry %d is out of pin range [0,%d)", i, ireg, nPin)
			}
		}
	}
}

// newTestLibrary builds a mat.Library directly from materials/ids without
// going through the text-file reader, for tests that only need the
// in-memory structure.
func newTestLibrary(tst *testing.T, ng int, byName map[string]*mat.Material, idToName map[int]string) *mat.Library {
	lib := mat.NewLibraryForTest(ng, byName)
	for id, name := range idToName {
		if err := lib.AssignID(id, name); err != nil {
			tst.Fatalf("unexpected error: %v", err)
		}
	}
	return lib
}
