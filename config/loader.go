// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"strconv"
	"strings"

	"github.com/ntouran/mocc/mat"
	"github.com/ntouran/mocc/merr"
	"github.com/ntouran/mocc/mesh"
)

// SweeperOptions mirrors spec.md §6's recognized sweeper configuration
// options table, read from a <sweeper> node.
type SweeperOptions struct {
	Type         string // "sn", "moc", "2d3d" (composite), or "montecarlo"
	NInner       int
	ExposeSN     bool
	DoSNProject  bool
	DoTL         bool
	NInactiveMoc int
	MocModulo    int
	GSBoundary   bool
	BC           string // "vacuum" or "reflective"
	NPolar       int    // product quadrature polar angle count
	NAzim        int    // product quadrature azimuthal angle count
}

// ParseSweeperOptions reads a <sweeper> node's attributes into
// SweeperOptions, applying the same defaults sn.Sweeper and cmdo.Composite
// use when a setter is never called.
func ParseSweeperOptions(n *Node) SweeperOptions {
	return SweeperOptions{
		Type:         n.Attr("type"),
		NInner:       n.AttrInt("n_inner", 1),
		ExposeSN:     n.AttrBool("expose_sn", true),
		DoSNProject:  n.AttrBool("do_snproject", false),
		DoTL:         n.AttrBool("do_tl", false),
		NInactiveMoc: n.AttrInt("n_inactive_moc", 0),
		MocModulo:    n.AttrInt("moc_modulo", 1),
		BC:           n.Attr("bc"),
		NPolar:       n.AttrInt("n_polar", 2),
		NAzim:        n.AttrInt("n_azim", 2),
		GSBoundary:   n.AttrBool("gs_boundary", true),
	}
}

// SolverOptions holds the <solver> node's power-iteration tolerances.
type SolverOptions struct {
	EpsK    float64
	EpsF    float64
	MaxIter int
}

// ParseSolverOptions reads a <solver> node's attributes into
// SolverOptions.
func ParseSolverOptions(n *Node) SolverOptions {
	return SolverOptions{
		EpsK:    n.AttrFloat("eps_k", 1e-6),
		EpsF:    n.AttrFloat("eps_f", 1e-5),
		MaxIter: n.AttrInt("max_iter", 100),
	}
}

// LoadMaterialLibrary reads the <material_lib> node: a path attribute
// naming the library text file mat.ReadLibrary parses, plus per-ID
// <material id name> children binding input-document IDs to library
// material names, per spec.md §6's "material_lib (path plus per-ID
// material children with id/name)".
func LoadMaterialLibrary(n *Node) (*mat.Library, error) {
	path := n.Attr("path")
	if path == "" {
		return nil, merr.Config("config.LoadMaterialLibrary", "material_lib node has no path attribute")
	}
	lib, err := mat.ReadLibrary(path)
	if err != nil {
		return nil, err
	}
	for _, m := range n.Children("material") {
		id := m.AttrInt("id", -1)
		name := m.Attr("name")
		if id < 0 || name == "" {
			return nil, merr.Config("config.LoadMaterialLibrary", "material node requires id and name attributes")
		}
		if err := lib.AssignID(id, name); err != nil {
			return nil, merr.Config("config.LoadMaterialLibrary", "%v", err)
		}
	}
	return lib, nil
}

// LoadCoreMesh builds the full pin-mesh / pin / lattice / assembly / core
// hierarchy from root's {mesh, pin, lattice, assembly, core} children, in
// the same leaves-first dependency order the original's core_mesh.cpp
// build sequence follows, and wraps it with lib into a CoreMesh.
func LoadCoreMesh(root *Node, lib *mat.Library) (*mesh.CoreMesh, error) {
	pinMeshes := make(map[int]*mesh.PinMesh)
	for _, n := range root.Children("mesh") {
		id := n.AttrInt("id", -1)
		nxs := n.AttrInt("nxsregions", 1)
		px := n.AttrFloat("pitch_x", 1.0)
		py := n.AttrFloat("pitch_y", 1.0)
		pm, err := mesh.NewUniformPinMesh(id, nxs, px, py)
		if err != nil {
			return nil, err
		}
		pinMeshes[id] = pm
	}

	pins := make(map[int]*mesh.Pin)
	for _, n := range root.Children("pin") {
		id := n.AttrInt("id", -1)
		meshID := n.AttrInt("mesh", -1)
		pm, ok := pinMeshes[meshID]
		if !ok {
			return nil, merr.Config("config.LoadCoreMesh", "pin %d references unknown mesh %d", id, meshID)
		}
		matIDs, err := n.Ints()
		if err != nil {
			return nil, err
		}
		p, err := mesh.NewPin(id, pm, matIDs)
		if err != nil {
			return nil, err
		}
		pins[id] = p
	}

	lattices := make(map[int]*mesh.Lattice)
	for _, n := range root.Children("lattice") {
		id := n.AttrInt("id", -1)
		nx := n.AttrInt("nx", 1)
		ny := n.AttrInt("ny", 1)
		pinIDs, err := n.Ints()
		if err != nil {
			return nil, err
		}
		latPins := make([]*mesh.Pin, len(pinIDs))
		for i, pid := range pinIDs {
			p, ok := pins[pid]
			if !ok {
				return nil, merr.Config("config.LoadCoreMesh", "lattice %d references unknown pin %d", id, pid)
			}
			latPins[i] = p
		}
		lat, err := mesh.NewLattice(id, nx, ny, latPins)
		if err != nil {
			return nil, err
		}
		lattices[id] = lat
	}

	assemblies := make(map[int]*mesh.Assembly)
	for _, n := range root.Children("assembly") {
		id := n.AttrInt("id", -1)
		hz, err := assemblyHeights(n)
		if err != nil {
			return nil, err
		}
		latIDs, err := n.Ints()
		if err != nil {
			return nil, err
		}
		lats := make([]*mesh.Lattice, len(latIDs))
		for i, lid := range latIDs {
			lat, ok := lattices[lid]
			if !ok {
				return nil, merr.Config("config.LoadCoreMesh", "assembly %d references unknown lattice %d", id, lid)
			}
			lats[i] = lat
		}
		asy, err := mesh.NewAssembly(id, lats, hz)
		if err != nil {
			return nil, err
		}
		assemblies[id] = asy
	}

	coreNode := root.Child("core")
	if coreNode == nil {
		return nil, merr.Config("config.LoadCoreMesh", "configuration document has no core node")
	}
	nx := coreNode.AttrInt("nx", 1)
	ny := coreNode.AttrInt("ny", 1)
	asyIDs, err := coreNode.Ints()
	if err != nil {
		return nil, err
	}
	asies := make([]*mesh.Assembly, len(asyIDs))
	for i, aid := range asyIDs {
		asy, ok := assemblies[aid]
		if !ok {
			return nil, merr.Config("config.LoadCoreMesh", "core references unknown assembly %d", aid)
		}
		asies[i] = asy
	}
	core, err := mesh.NewCore(nx, ny, asies)
	if err != nil {
		return nil, err
	}

	return mesh.NewCoreMesh(core, lib), nil
}

// assemblyHeights reads an assembly's plane heights from either the `hz`
// attribute or a child <hz> node's whitespace-separated content, never
// both — per spec.md's S6 test, "an assembly with both hz attribute and
// <hz> child node must fail with ConfigError 'Plane heights are
// over-specified'."
func assemblyHeights(n *Node) ([]float64, error) {
	attr := n.Attr("hz")
	child := n.Child("hz")
	if attr != "" && child != nil {
		return nil, merr.Config("config.LoadCoreMesh", "Plane heights are over-specified")
	}
	if child != nil {
		return child.Floats()
	}
	if attr == "" {
		return nil, merr.Config("config.LoadCoreMesh", "assembly %d has no plane heights", n.AttrInt("id", -1))
	}
	var out []float64
	for _, f := range strings.Fields(attr) {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, merr.Config("config.LoadCoreMesh", "assembly %d has malformed hz attribute %q", n.AttrInt("id", -1), attr)
		}
		out = append(out, v)
	}
	return out, nil
}
