// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

const sampleDoc = `
<config>
  <mesh id="1" nxsregions="1" pitch_x="1.26" pitch_y="1.26"/>
  <pin id="1" mesh="1">1</pin>
  <sweeper type="2d3d" n_inner="4" do_tl="true" expose_sn="false" moc_modulo="2"/>
  <solver eps_k="1e-7" eps_f="1e-6" max_iter="50"/>
</config>
`

func TestNodeAttrAndChildren(tst *testing.T) {
	chk.PrintTitle("config.Node attribute and child lookups read the expected values")

	root, err := ParseConfig([]byte(sampleDoc))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}

	mesh := root.Child("mesh")
	if mesh == nil {
		tst.Fatalf("expected a mesh child")
	}
	if mesh.AttrInt("id", -1) != 1 {
		tst.Fatalf("expected mesh id 1, got %d", mesh.AttrInt("id", -1))
	}
	if mesh.AttrFloat("pitch_x", 0) != 1.26 {
		tst.Fatalf("expected pitch_x 1.26, got %v", mesh.AttrFloat("pitch_x", 0))
	}

	pin := root.Child("pin")
	ids, err := pin.Ints()
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != 1 {
		tst.Fatalf("expected pin content [1], got %v", ids)
	}
}

func TestParseSweeperOptions(tst *testing.T) {
	chk.PrintTitle("ParseSweeperOptions reads attributes and falls back to sn.Sweeper's own defaults")

	root, err := ParseConfig([]byte(sampleDoc))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	opts := ParseSweeperOptions(root.Child("sweeper"))
	if opts.Type != "2d3d" {
		tst.Fatalf("expected type 2d3d, got %q", opts.Type)
	}
	if opts.NInner != 4 {
		tst.Fatalf("expected n_inner 4, got %d", opts.NInner)
	}
	if !opts.DoTL {
		tst.Fatalf("expected do_tl true")
	}
	if opts.ExposeSN {
		tst.Fatalf("expected expose_sn false")
	}
	if opts.MocModulo != 2 {
		tst.Fatalf("expected moc_modulo 2, got %d", opts.MocModulo)
	}
	// gs_boundary was never set in the document; the parsed default must
	// match sn.Sweeper's own default of true.
	if !opts.GSBoundary {
		tst.Fatalf("expected gs_boundary to default to true")
	}
}

func TestParseSolverOptions(tst *testing.T) {
	chk.PrintTitle("ParseSolverOptions reads the solver node's tolerances")

	root, err := ParseConfig([]byte(sampleDoc))
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	opts := ParseSolverOptions(root.Child("solver"))
	if opts.EpsK != 1e-7 || opts.EpsF != 1e-6 || opts.MaxIter != 50 {
		tst.Fatalf("unexpected solver options: %+v", opts)
	}
}
