// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// PinMesh is the geometric description of a single pin cell's fine-region
// (FSR) layout: how many FSRs make up each XS region, and their volumes.
// It is immutable after construction. The actual sub-pin geometry (rings,
// sectors, ray-traceable boundaries) is out of scope per spec.md; PinMesh
// only carries the counts and volumes that XS homogenization and MoC
// ray-segment accumulation need.
type PinMesh struct {
	id          int
	nFSRsByReg  []int     // fine regions per XS region
	volumes     []float64 // per-fine-region volume, length = NumFSRs()
	pitchX      float64
	pitchY      float64
}

// NewPinMesh builds a PinMesh from an explicit per-XS-region FSR count and
// a flat volume slice (length equal to the sum of nFSRsByReg).
func NewPinMesh(id int, nFSRsByReg []int, volumes []float64, pitchX, pitchY float64) (*PinMesh, error) {
	if len(nFSRsByReg) == 0 {
		return nil, chk.Err("mesh: pin mesh %d has no XS regions", id)
	}
	total := 0
	for _, n := range nFSRsByReg {
		if n <= 0 {
			return nil, chk.Err("mesh: pin mesh %d has a non-positive FSR count in an XS region", id)
		}
		total += n
	}
	if len(volumes) != total {
		return nil, chk.Err("mesh: pin mesh %d: volumes length %d does not match FSR total %d", id, len(volumes), total)
	}
	if pitchX <= 0 || pitchY <= 0 {
		return nil, chk.Err("mesh: pin mesh %d has non-positive pitch", id)
	}
	return &PinMesh{
		id:         id,
		nFSRsByReg: append([]int(nil), nFSRsByReg...),
		volumes:    append([]float64(nil), volumes...),
		pitchX:     pitchX,
		pitchY:     pitchY,
	}, nil
}

// NewUniformPinMesh builds a simple PinMesh where every XS region has a
// single FSR of equal volume, a common case for coarse homogenized
// geometry. Total pin area is pitchX*pitchY, split evenly across regions.
func NewUniformPinMesh(id, nXSRegions int, pitchX, pitchY float64) (*PinMesh, error) {
	if nXSRegions <= 0 {
		return nil, chk.Err("mesh: pin mesh %d needs at least one XS region", id)
	}
	nFSRsByReg := make([]int, nXSRegions)
	volumes := make([]float64, nXSRegions)
	vol := pitchX * pitchY / float64(nXSRegions)
	for i := range nFSRsByReg {
		nFSRsByReg[i] = 1
		volumes[i] = vol
	}
	return NewPinMesh(id, nFSRsByReg, volumes, pitchX, pitchY)
}

// ID returns the pin mesh's identifier.
func (pm *PinMesh) ID() int { return pm.id }

// NumFSRs returns the total fine-region count.
func (pm *PinMesh) NumFSRs() int {
	n := 0
	for _, c := range pm.nFSRsByReg {
		n += c
	}
	return n
}

// NumXSRegions returns the number of distinct XS regions in the mesh.
func (pm *PinMesh) NumXSRegions() int { return len(pm.nFSRsByReg) }

// NFSRsInRegion returns the FSR count of the ixsreg'th XS region.
func (pm *PinMesh) NFSRsInRegion(ixsreg int) int { return pm.nFSRsByReg[ixsreg] }

// Volumes returns the per-fine-region volume slice, in FSR order.
func (pm *PinMesh) Volumes() []float64 { return pm.volumes }

// Volume returns the total pin volume (sum of FSR volumes).
func (pm *PinMesh) Volume() float64 {
	var v float64
	for _, x := range pm.volumes {
		v += x
	}
	return v
}

// PitchX and PitchY return the pin's footprint dimensions.
func (pm *PinMesh) PitchX() float64 { return pm.pitchX }
func (pm *PinMesh) PitchY() float64 { return pm.pitchY }
