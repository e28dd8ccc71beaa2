// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func onePinLattice(tst *testing.T, id int) *Lattice {
	pm, err := NewUniformPinMesh(id, 1, 1.0, 1.0)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	p, err := NewPin(id, pm, []int{1})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	lat, err := NewLattice(id, 1, 1, []*Pin{p})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return lat
}

func oneAssembly(tst *testing.T, id int) *Assembly {
	lat := onePinLattice(tst, id)
	asy, err := NewAssembly(id, []*Lattice{lat}, []float64{10.0})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return asy
}

// TestCoreLowerLeftOrigin verifies the y-flip against a hand-worked 2x2
// example: input order is row-major top-to-bottom (asy0 asy1 / asy2 asy3),
// and after flipping, At(0,0) must be the bottom-left input entry (asy2).
func TestCoreLowerLeftOrigin(tst *testing.T) {
	chk.PrintTitle("core lower-left origin y-flip")

	asy0 := oneAssembly(tst, 1) // top-left in input order
	asy1 := oneAssembly(tst, 2) // top-right
	asy2 := oneAssembly(tst, 3) // bottom-left
	asy3 := oneAssembly(tst, 4) // bottom-right

	input := []*Assembly{asy0, asy1, asy2, asy3}
	core, err := NewCore(2, 2, input)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	if core.At(0, 0) != asy2 {
		tst.Fatalf("expected bottom-left input assembly at (0,0)")
	}
	if core.At(1, 0) != asy3 {
		tst.Fatalf("expected bottom-right input assembly at (1,0)")
	}
	if core.At(0, 1) != asy0 {
		tst.Fatalf("expected top-left input assembly at (0,1)")
	}
	if core.At(1, 1) != asy1 {
		tst.Fatalf("expected top-right input assembly at (1,1)")
	}
}

func TestCoreIncompatiblePlaneHeights(tst *testing.T) {
	chk.PrintTitle("core rejects incompatible plane heights")

	asy1 := oneAssembly(tst, 1)
	lat2 := onePinLattice(tst, 2)
	asy2, err := NewAssembly(2, []*Lattice{lat2}, []float64{20.0}) // different hz
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	_, err = NewCore(2, 1, []*Assembly{asy1, asy2})
	if err == nil {
		tst.Fatalf("expected geometry error for mismatched plane heights")
	}
}
