// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mat

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestScatteringConservation(tst *testing.T) {
	chk.PrintTitle("scattering conservation")

	scat := [][]float64{
		{0.3, 0.2},
		{0.0, 0.5},
	}
	m, err := NewMaterial("fuel", []float64{1.0, 2.0}, []float64{0, 0}, []float64{0, 0}, []float64{0, 0}, []float64{0, 0}, scat)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if err := checkConservation(m.Xssc); err != nil {
		tst.Fatalf("conservation check failed: %v", err)
	}

	for g := 0; g < 2; g++ {
		var sum float64
		row := m.Xssc.To(g)
		for gp := row.MinG; gp <= row.MaxG; gp++ {
			sum += row.From[gp-row.MinG]
		}
		_ = sum
	}
	chk.Scalar(tst, "out(0)", 1e-14, m.Xssc.Out(0), 0.5)
	chk.Scalar(tst, "out(1)", 1e-14, m.Xssc.Out(1), 0.5)
}

func TestTransportXS(tst *testing.T) {
	chk.PrintTitle("transport xs = absorption + out-scatter")

	scat := [][]float64{
		{0.3, 0.0},
		{0.1, 0.5},
	}
	m, err := NewMaterial("fuel", []float64{1.0, 2.0}, []float64{0, 0}, []float64{0, 0}, []float64{0, 0}, []float64{0, 0}, scat)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "xstr(0)", 1e-14, m.Xstr(0), 1.0+0.3)
	chk.Scalar(tst, "xstr(1)", 1e-14, m.Xstr(1), 2.0+0.6)
}

func TestAsDenseRoundTrip(tst *testing.T) {
	chk.PrintTitle("scattering matrix dense round-trip")

	scat := [][]float64{
		{0.1, 0.2, 0.0},
		{0.0, 0.3, 0.1},
		{0.0, 0.0, 0.4},
	}
	sm := NewScatteringMatrix(scat)
	dense := sm.AsDense()
	for g := range scat {
		chk.Vector(tst, "row", 1e-14, dense[g], scat[g])
	}
}
