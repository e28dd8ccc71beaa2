// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsmesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/ntouran/mocc/mat"
)

// TestDirectSolveTwoGroupDownscatter is spec.md's S2 invariant, worked
// through by hand: two groups, downscatter 0->1 only (xssc(0->1)=0.3,
// xssc(1->1)=0.5, no fission, no feed back into group 0), xsab=[0.7,3.0],
// q=[1,0]. With Xstr = xsab + out-scatter, the balance equation decouples:
// group 0 sees no in-scatter and its removal is xsab_0 + xssc(0->1) = 1.0
// (1.0*phi_0 = q_0 = 1, so phi_0 = 1.0), and group 1's only source is the
// downscatter from group 0 (removal Xstr_1 - xssc(1->1) = xsab_1, so
// xsab_1*phi_1 = xssc(0->1)*phi_0 = 0.3, and phi_1 = 0.1).
func TestDirectSolveTwoGroupDownscatter(tst *testing.T) {
	chk.PrintTitle("DirectSolve reproduces the analytic two-group scattering balance")

	scat := [][]float64{
		{0.0, 0.3},
		{0.0, 0.5},
	}
	r := Region{
		Xstr: []float64{0.7 + 0.3, 3.0 + 0.5}, // xsab + out-scatter
		Xssc: mat.NewScatteringMatrix(scat),
	}
	phi, err := r.DirectSolve([]float64{1.0, 0.0})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.Scalar(tst, "phi_0", 1e-9, phi[0], 1.0)
	chk.Scalar(tst, "phi_1", 1e-9, phi[1], 0.1)
}
