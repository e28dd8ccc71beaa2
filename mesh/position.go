// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh assembles the geometry hierarchy — pins, lattices,
// assemblies, and the core — and exposes lexicographic indexing over it.
// Fine-region (FSR) geometry itself (ray tracing, pin sub-meshing) is
// treated as a pre-computed collaborator rather than reimplemented here:
// spec.md places "geometry primitives (points, lines, pin meshes)"
// explicitly out of the core's scope.
package mesh

// Position is a 3-D lexicographic coordinate (ix, iy, iz) into the coarse
// pin grid. Centralizing this type (rather than scattering ix/iy/iz
// triples through every component) is the fix spec.md's Design Notes call
// for: "Prevents the scattered off-by-one seen in homogenization."
type Position struct {
	IX, IY, IZ int
}

// Indexer converts between a Position and a linear lexicographic index
// over a dense (nx, ny, nz) grid, ix varying fastest.
type Indexer struct {
	Nx, Ny, Nz int
}

// NewIndexer builds an Indexer for a grid of the given dimensions.
func NewIndexer(nx, ny, nz int) Indexer {
	return Indexer{Nx: nx, Ny: ny, Nz: nz}
}

// Linear returns the lexicographic index of the given Position, with ix
// the fastest-varying index, then iy, then iz.
func (idx Indexer) Linear(p Position) int {
	return p.IX + idx.Nx*(p.IY+idx.Ny*p.IZ)
}

// Position returns the Position corresponding to a linear index.
func (idx Indexer) Position(i int) Position {
	ix := i % idx.Nx
	i /= idx.Nx
	iy := i % idx.Ny
	iz := i / idx.Ny
	return Position{IX: ix, IY: iy, IZ: iz}
}

// Size returns the total number of cells in the grid.
func (idx Indexer) Size() int {
	return idx.Nx * idx.Ny * idx.Nz
}
