// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"github.com/ntouran/mocc/mat"
)

// CoreMesh owns the complete pin-mesh / pin / lattice / assembly / core
// geometry hierarchy plus the material library, and exposes lexicographic
// iteration and indexing over every pin.
type CoreMesh struct {
	MatLib *mat.Library
	Core   *Core

	pins   []*Pin // lexicographic (ix, iy, iz) order
	idx    Indexer
	nReg   int
	volume []float64 // per fine-region volume, concatenated in pin order
	coarse []float64 // per-pin (coarse cell) volume
}

// NewCoreMesh assembles a CoreMesh from an already-built Core and material
// library, deriving the lexicographic pin ordering, region counts, and
// volume arrays.
func NewCoreMesh(core *Core, matLib *mat.Library) *CoreMesh {
	nx := core.NumPinsX()
	ny := core.NumPinsY()
	nz := core.Nz()

	cm := &CoreMesh{
		MatLib: matLib,
		Core:   core,
		idx:    NewIndexer(nx, ny, nz),
	}

	cm.pins = make([]*Pin, nx*ny*nz)
	cm.coarse = make([]float64, nx*ny*nz)

	for iz := 0; iz < nz; iz++ {
		hz := core.Hz()[iz]
		_ = hz
		pinRowOffset := 0
		for iay := 0; iay < core.Ny; iay++ {
			asy := core.At(0, iay)
			lat := asy.Lattices[iz]
			for pinIY := 0; pinIY < lat.Ny; pinIY++ {
				globalIY := pinRowOffset + pinIY
				colOffset := 0
				for iax := 0; iax < core.Nx; iax++ {
					asyX := core.At(iax, iay)
					latX := asyX.Lattices[iz]
					for pinIX := 0; pinIX < latX.Nx; pinIX++ {
						globalIX := colOffset + pinIX
						p := latX.At(pinIX, pinIY)
						i := cm.idx.Linear(Position{IX: globalIX, IY: globalIY, IZ: iz})
						cm.pins[i] = p
						cm.coarse[i] = p.Volume()
					}
					colOffset += latX.Nx
				}
			}
			pinRowOffset += lat.Ny
		}
	}

	cm.nReg = 0
	for _, p := range cm.pins {
		cm.nReg += p.NumFSRs()
	}
	cm.volume = make([]float64, 0, cm.nReg)
	for _, p := range cm.pins {
		cm.volume = append(cm.volume, p.PinMesh.Volumes()...)
	}

	return cm
}

// Pins returns every pin in lexicographic (ix, iy, iz) order.
func (cm *CoreMesh) Pins() []*Pin { return cm.pins }

// NumPins returns the total pin count.
func (cm *CoreMesh) NumPins() int { return len(cm.pins) }

// NumRegions returns the total fine-region count.
func (cm *CoreMesh) NumRegions() int { return cm.nReg }

// Dimensions returns (nx, ny, nz) of the pin grid.
func (cm *CoreMesh) Dimensions() (nx, ny, nz int) { return cm.idx.Nx, cm.idx.Ny, cm.idx.Nz }

// IndexLex returns the linear pin index for a lexicographic Position.
func (cm *CoreMesh) IndexLex(p Position) int { return cm.idx.Linear(p) }

// PinPosition returns the lexicographic Position of pin index i.
func (cm *CoreMesh) PinPosition(i int) Position { return cm.idx.Position(i) }

// Pin returns the pin at lexicographic index i.
func (cm *CoreMesh) Pin(i int) *Pin { return cm.pins[i] }

// CoarseVolume returns the total volume of pin i.
func (cm *CoreMesh) CoarseVolume(i int) float64 { return cm.coarse[i] }

// Volumes returns the per-fine-region volume array, concatenated in pin
// order.
func (cm *CoreMesh) Volumes() []float64 { return cm.volume }

// CoarseCell returns the linear coarse-cell index for a Position; an alias
// for IndexLex used by the Sn sweeper to read xstr_/q_ arrays, matching
// the original's mesh_.coarse_cell(Position(...)) call.
func (cm *CoreMesh) CoarseCell(p Position) int { return cm.idx.Linear(p) }
