// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleMatLib = `
ngroups 1
material u
1.0
0.0
0.0
0.0
0.0
`

func writeMatLib(tst *testing.T, dir string) string {
	path := filepath.Join(dir, "mat.lib")
	if err := os.WriteFile(path, []byte(sampleMatLib), 0o644); err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadMaterialLibraryAndCoreMesh(tst *testing.T) {
	chk.PrintTitle("LoadMaterialLibrary and LoadCoreMesh build a CoreMesh from a config document")

	dir := tst.TempDir()
	matPath := writeMatLib(tst, dir)

	doc := `<config>
  <material_lib path="` + matPath + `">
    <material id="1" name="u"/>
  </material_lib>
  <mesh id="1" nxsregions="1" pitch_x="1.0" pitch_y="1.0"/>
  <pin id="1" mesh="1">1</pin>
  <lattice id="1" nx="1" ny="1">1</lattice>
  <assembly id="1" hz="1.0">1</assembly>
  <core nx="1" ny="1">1</core>
</config>`

	root, err := ParseConfig([]byte(doc))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	lib, err := LoadMaterialLibrary(root.Child("material_lib"))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	cm, err := LoadCoreMesh(root, lib)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if cm.NumPins() != 1 {
		tst.Fatalf("expected 1 pin, got %d", cm.NumPins())
	}
}

func TestAssemblyOverSpecifiedHeightsIsConfigError(tst *testing.T) {
	chk.PrintTitle("an assembly with both hz attribute and <hz> child is a ConfigError")

	dir := tst.TempDir()
	matPath := writeMatLib(tst, dir)

	doc := `<config>
  <material_lib path="` + matPath + `">
    <material id="1" name="u"/>
  </material_lib>
  <mesh id="1" nxsregions="1" pitch_x="1.0" pitch_y="1.0"/>
  <pin id="1" mesh="1">1</pin>
  <lattice id="1" nx="1" ny="1">1</lattice>
  <assembly id="1" hz="1.0"><hz>1.0</hz>1</assembly>
  <core nx="1" ny="1">1</core>
</config>`

	root, err := ParseConfig([]byte(doc))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	lib, err := LoadMaterialLibrary(root.Child("material_lib"))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if _, err := LoadCoreMesh(root, lib); err == nil {
		tst.Fatalf("expected a ConfigError for over-specified plane heights")
	}
}
