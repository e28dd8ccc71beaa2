// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/ntouran/mocc/merr"

// Core is a 2-D grid of Assembly references, stored with lower-left
// origin. All assemblies in a Core must share identical Nz and identical
// Hz vectors.
type Core struct {
	Nx, Ny     int
	Assemblies []*Assembly // length Nx*Ny, lower-left origin, ix fastest-varying
}

// NewCore builds a Core from a row-major, input-order (top row first)
// slice of assembly references and flips it into lower-left origin
// storage.
//
// The flip is applied once: the outer loop variable iy walks the *input*
// rows top-to-bottom (source index iy*nx+ix), and ny-iy-1 converts that
// into the bottom-to-top storage row, which is what "lower-left origin"
// storage of a top-down input list requires. Applying ny-iy-1 on both
// sides of the assignment would cancel the flip. See SPEC_FULL.md Open
// Question (i).
func NewCore(nx, ny int, inputOrderAssemblies []*Assembly) (*Core, error) {
	if nx < 1 || ny < 1 {
		return nil, merr.Config("mesh.Core", "invalid core dimensions %dx%d", nx, ny)
	}
	if len(inputOrderAssemblies) != nx*ny {
		return nil, merr.Config("mesh.Core", "expected %d assemblies, got %d", nx*ny, len(inputOrderAssemblies))
	}

	assemblies := make([]*Assembly, nx*ny)
	for iy := 0; iy < ny; iy++ {
		row := ny - iy - 1
		for ix := 0; ix < nx; ix++ {
			col := ix
			src := inputOrderAssemblies[iy*nx+ix]
			assemblies[row*nx+col] = src
		}
	}

	nz := assemblies[0].NumPlanes()
	for _, asy := range assemblies {
		if asy.NumPlanes() != nz {
			return nil, merr.Geometry("mesh.Core", "assemblies in the core have incompatible numbers of planes")
		}
	}
	for i := 0; i < nz; i++ {
		hz := assemblies[0].Hz[i]
		for _, asy := range assemblies {
			if asy.Hz[i] != hz {
				return nil, merr.Geometry("mesh.Core", "assemblies have incompatible plane heights in core")
			}
		}
	}

	return &Core{Nx: nx, Ny: ny, Assemblies: assemblies}, nil
}

// At returns the assembly at grid position (ix, iy), lower-left origin.
func (c *Core) At(ix, iy int) *Assembly { return c.Assemblies[iy*c.Nx+ix] }

// Nz returns the shared number of axial planes.
func (c *Core) Nz() int { return c.Assemblies[0].NumPlanes() }

// Hz returns the shared per-plane height vector.
func (c *Core) Hz() []float64 { return c.Assemblies[0].Hz }

// NumPinsX and NumPinsY return the total pin count along x and y, summed
// over the assemblies in the first row/column respectively.
func (c *Core) NumPinsX() int {
	n := 0
	for ix := 0; ix < c.Nx; ix++ {
		n += c.At(ix, 0).Lattices[0].Nx
	}
	return n
}

func (c *Core) NumPinsY() int {
	n := 0
	for iy := 0; iy < c.Ny; iy++ {
		n += c.At(0, iy).Lattices[0].Ny
	}
	return n
}
