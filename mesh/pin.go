// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// Pin is a PinMesh plus a per-XS-region material ID list. NumXSRegions is
// the length of the material ID list, which must match the pin mesh's own
// XS region count.
type Pin struct {
	ID      int
	PinMesh *PinMesh
	MatIDs  []int
}

// NewPin builds a Pin, validating that the material ID list matches the
// pin mesh's XS region count.
func NewPin(id int, pm *PinMesh, matIDs []int) (*Pin, error) {
	if len(matIDs) != pm.NumXSRegions() {
		return nil, chk.Err("mesh: pin %d specifies %d materials but mesh %d has %d XS regions",
			id, len(matIDs), pm.ID(), pm.NumXSRegions())
	}
	return &Pin{ID: id, PinMesh: pm, MatIDs: append([]int(nil), matIDs...)}, nil
}

// NumXSRegions returns the number of distinct XS regions in the pin.
func (p *Pin) NumXSRegions() int { return len(p.MatIDs) }

// NumFSRs returns the total fine-region count of the pin's mesh.
func (p *Pin) NumFSRs() int { return p.PinMesh.NumFSRs() }

// Volume returns the pin's total volume.
func (p *Pin) Volume() float64 { return p.PinMesh.Volume() }
