// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Library is a collection of Materials keyed by a dense material ID space
// assigned from the input document (config's material_lib/material
// children give the id<->name mapping; the library file itself just lists
// materials by name).
type Library struct {
	ng        int
	byName    map[string]*Material
	idToName  map[int]string
	nameToID  map[string]int
}

// NumGroups returns the number of energy groups shared by every material
// in the library.
func (l *Library) NumGroups() int { return l.ng }

// AssignID binds an input-document material ID to a material name already
// present in the library (from the material_lib/material id/name
// children), mirroring CoreMesh::mat_lib_.assignID in the original.
func (l *Library) AssignID(id int, name string) error {
	if _, ok := l.byName[name]; !ok {
		return chk.Err("mat: library has no material named %q to assign id %d", name, id)
	}
	if l.idToName == nil {
		l.idToName = make(map[int]string)
		l.nameToID = make(map[string]int)
	}
	l.idToName[id] = name
	l.nameToID[name] = id
	return nil
}

// ByID returns the Material assigned the given input-document ID.
func (l *Library) ByID(id int) (*Material, error) {
	name, ok := l.idToName[id]
	if !ok {
		return nil, chk.Err("mat: no material assigned id %d", id)
	}
	return l.byName[name], nil
}

// Materials returns every (id, *Material) pair in the library, in no
// particular order.
func (l *Library) Materials() map[int]*Material {
	out := make(map[int]*Material, len(l.idToName))
	for id, name := range l.idToName {
		out[id] = l.byName[name]
	}
	return out
}

// NumMaterials returns the number of distinct materials in the library.
func (l *Library) NumMaterials() int { return len(l.byName) }

// stripComment removes everything from the first occurrence of marker
// onward, mirroring the original's FileScrubber("!") behavior.
func stripComment(line, marker string) string {
	if i := strings.Index(line, marker); i >= 0 {
		return line[:i]
	}
	return line
}

// ReadLibrary reads a whitespace-delimited material library text file.
// Format (comments introduced by '!' are stripped line-wise first):
//
//	ngroups <ng>
//	material <name>
//	  <ng floats: xsab>
//	  <ng floats: xsnf>
//	  <ng floats: xskf>
//	  <ng floats: xsch>
//	  <ng*ng floats: scattering matrix, row-major source-group-major>
//	material <name2>
//	  ...
//
// This is a simplified stand-in for the original MCNP-style material
// library format (the original source tree does not retain the reader,
// only its call site in core_mesh.cpp); it carries the same essential
// shape — named per-material blocks of per-group vectors plus a
// scattering matrix — and is explicitly an ambient, out-of-core-scope
// collaborator per spec.md §1.
func ReadLibrary(path string) (*Library, error) {
	raw, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("mat: cannot read material library %q: %v", path, err)
	}

	var tokens []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = stripComment(line, "!")
		tokens = append(tokens, strings.Fields(line)...)
	}

	pos := 0
	next := func() (string, error) {
		if pos >= len(tokens) {
			return "", chk.Err("mat: unexpected end of material library %q", path)
		}
		t := tokens[pos]
		pos++
		return t, nil
	}
	nextFloat := func() (float64, error) {
		t, err := next()
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, chk.Err("mat: bad float %q in library %q", t, path)
		}
		return v, nil
	}
	nextFloats := func(n int) ([]float64, error) {
		out := make([]float64, n)
		for i := range out {
			v, err := nextFloat()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}

	kw, err := next()
	if err != nil || kw != "ngroups" {
		return nil, chk.Err("mat: material library %q must begin with 'ngroups'", path)
	}
	ngTok, err := next()
	if err != nil {
		return nil, err
	}
	ng, err := strconv.Atoi(ngTok)
	if err != nil || ng <= 0 {
		return nil, chk.Err("mat: material library %q has invalid group count %q", path, ngTok)
	}

	lib := &Library{ng: ng, byName: make(map[string]*Material)}

	for pos < len(tokens) {
		kw, err := next()
		if err != nil {
			return nil, err
		}
		if kw != "material" {
			return nil, chk.Err("mat: expected 'material', got %q in library %q", kw, path)
		}
		name, err := next()
		if err != nil {
			return nil, err
		}
		xsab, err := nextFloats(ng)
		if err != nil {
			return nil, err
		}
		xsnf, err := nextFloats(ng)
		if err != nil {
			return nil, err
		}
		xskf, err := nextFloats(ng)
		if err != nil {
			return nil, err
		}
		xsch, err := nextFloats(ng)
		if err != nil {
			return nil, err
		}
		scatFlat, err := nextFloats(ng * ng)
		if err != nil {
			return nil, err
		}
		scat := make([][]float64, ng)
		for g := 0; g < ng; g++ {
			scat[g] = scatFlat[g*ng : (g+1)*ng]
		}
		// xsf defaults to xsnf/nu when not specified separately; the
		// simplified format does not carry nu, so xsf == xsnf is the
		// conservative (nu=1) assumption for this collaborator stub.
		m, err := NewMaterial(name, xsab, xsnf, xskf, append([]float64(nil), xsnf...), xsch, scat)
		if err != nil {
			return nil, err
		}
		lib.byName[name] = m
	}

	return lib, nil
}

// NewLibraryForTest builds a Library directly from an in-memory
// name->Material map, bypassing ReadLibrary. Exported for use by other
// packages' tests that need a Library without a text file on disk.
func NewLibraryForTest(ng int, byName map[string]*Material) *Library {
	return &Library{ng: ng, byName: byName}
}
