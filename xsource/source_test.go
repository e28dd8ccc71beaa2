// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsource

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/ntouran/mocc/mat"
	"github.com/ntouran/mocc/xsmesh"
)

// twoRegionTwoGroup builds a 2-region, 2-group source with a single XS
// region covering both, chi = [1, 0], and down-scatter-only coupling
// (group 0 -> group 1) with coefficient 0.1.
func twoRegionTwoGroup() (*Source, [][]float64) {
	scat := mat.NewScatteringMatrix([][]float64{
		{0.0, 0.1}, // from group 0: nothing self, 0.1 down to group 1
		{0.0, 0.0}, // from group 1: nothing
	})
	region := xsmesh.Region{
		FSRs: []int{0, 1},
		Xstr: []float64{1.0, 1.0},
		Xsnf: []float64{0.0, 0.0},
		Xsch: []float64{1.0, 0.0},
		Xskf: []float64{0.0, 0.0},
		Xssc: scat,
	}
	flux := [][]float64{
		{2.0, 3.0},
		{4.0, 5.0},
	}
	s := NewSource(2, 2, []xsmesh.Region{region}, flux)
	return s, flux
}

func TestFissionChiWeighting(tst *testing.T) {
	chk.PrintTitle("fission source is chi-weighted per region")

	s, _ := twoRegionTwoGroup()
	fissionDensity := []float64{10.0, 20.0}

	s.Fission(fissionDensity, 0)
	s.Fission(fissionDensity, 1)

	q0 := make([]float64, 2)
	q1 := make([]float64, 2)
	s.SelfScatter(0, []float64{0, 0}, q0)
	s.SelfScatter(1, []float64{0, 0}, q1)

	// chi[0]=1 so group 0 gets the full fission density (divided by 4pi);
	// chi[1]=0 so group 1 gets nothing from fission.
	chk.Scalar(tst, "q0[0]", 1e-12, q0[0]*4.0*3.14159265358979323846, fissionDensity[0])
	chk.Scalar(tst, "q1[0]", 1e-12, q1[0], 0.0)
}

func TestInScatterExcludesSelf(tst *testing.T) {
	chk.PrintTitle("in-scatter adds only cross-group contributions")

	s, flux := twoRegionTwoGroup()
	s.InScatter(1) // group 1 receives from group 0 via coeff 0.1

	out := make([]float64, 2)
	s.SelfScatter(1, []float64{0, 0}, out)

	want0 := 0.1 * flux[0][0] / (4.0 * 3.14159265358979323846)
	want1 := 0.1 * flux[1][0] / (4.0 * 3.14159265358979323846)
	chk.Vector(tst, "in-scatter into group 1", 1e-12, out, []float64{want0, want1})
}

func TestSelfScatterRecomputesEachInner(tst *testing.T) {
	chk.PrintTitle("self-scatter uses the supplied one-group flux, not stored flux")

	s, _ := twoRegionTwoGroup()
	// no fission, no in-scatter queued: group 0's Q is zero, so
	// SelfScatter's output is purely the self-scatter term, which is zero
	// here since group 0 -> group 0 has coefficient 0.
	out := make([]float64, 2)
	s.SelfScatter(0, []float64{100.0, 200.0}, out)
	chk.Vector(tst, "self-scatter with zero self coupling", 1e-12, out, []float64{0.0, 0.0})
}

func TestSource2D3DAccessor(tst *testing.T) {
	chk.PrintTitle("Source2D3D exposes its Sn-facing source via GetSnSource")

	moc, _ := twoRegionTwoGroup()
	sn, _ := twoRegionTwoGroup()
	composite := NewSource2D3D(moc, sn)
	any := From2D3D(composite)

	if any.Kind != Kind2D3D {
		tst.Fatalf("expected Kind2D3D, got %v", any.Kind)
	}
	if any.TwoD3D.GetSnSource() != sn {
		tst.Fatalf("GetSnSource did not return the Sn-facing source")
	}
}
