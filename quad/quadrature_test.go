// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestDirectionNormalization(tst *testing.T) {
	chk.PrintTitle("direction normalization")

	q, err := NewProductQuadrature(3, 4)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for i, a := range q.Angles() {
		norm := a.Ox*a.Ox + a.Oy*a.Oy + a.Oz*a.Oz
		chk.Scalar(tst, "norm", 1e-10, norm, 1.0)
		if a.Weight <= 0 {
			tst.Fatalf("angle %d has non-positive weight %g", i, a.Weight)
		}
	}
	chk.Scalar(tst, "total weight", 1e-10, q.TotalWeight(), FourPi)
}

func TestOctantTransform(tst *testing.T) {
	chk.PrintTitle("octant transform")

	q, err := NewProductQuadrature(2, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	base := q.At(0) // octant 1, all cosines positive

	for octant := 1; octant <= 8; octant++ {
		a := ToOctant(base, octant)
		sx, sy, sz := octantSigns(octant)
		if sx*a.Ox < 0 || sy*a.Oy < 0 || sz*a.Oz < 0 {
			tst.Fatalf("octant %d: signs don't match: %+v", octant, a)
		}
		chk.Scalar(tst, "|ox|", 1e-12, math.Abs(a.Ox), math.Abs(base.Ox))
		chk.Scalar(tst, "|oy|", 1e-12, math.Abs(a.Oy), math.Abs(base.Oy))
		chk.Scalar(tst, "|oz|", 1e-12, math.Abs(a.Oz), math.Abs(base.Oz))
	}
}

func TestUpwindSurface(tst *testing.T) {
	chk.PrintTitle("upwind surface")

	cases := []struct {
		ox, oy, oz float64
		norm       Normal
		want       Surface
	}{
		{1, 1, 1, XNorm, West},
		{-1, 1, 1, XNorm, East},
		{1, 1, 1, YNorm, South},
		{1, -1, 1, YNorm, North},
		{1, 1, 1, ZNorm, Bottom},
		{1, 1, -1, ZNorm, Top},
	}
	for _, c := range cases {
		a := Angle{Ox: c.ox, Oy: c.oy, Oz: c.oz}
		got := a.UpwindSurface(c.norm)
		if got != c.want {
			tst.Fatalf("upwind_surface(%+v, %v) = %v, want %v", a, c.norm, got, c.want)
		}
	}
}

func TestNdirOctConstant(tst *testing.T) {
	chk.PrintTitle("ndir_oct constant across octants")

	q, err := NewProductQuadrature(4, 3)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	if q.NdirOct() != 12 {
		tst.Fatalf("expected ndir_oct=12, got %d", q.NdirOct())
	}
	if q.Len() != 8*12 {
		tst.Fatalf("expected 96 total angles, got %d", q.Len())
	}
	for i := 0; i < q.Len(); i++ {
		want := i/12 + 1
		if q.Octant(i) != want {
			tst.Fatalf("angle %d: octant() = %d, want %d", i, q.Octant(i), want)
		}
	}
}

func TestModifyAlpha(tst *testing.T) {
	chk.PrintTitle("modify alpha preserves theta and weight")

	a := NewAngleFromPolar(0.3, 0.9, 0.05)
	b := a.ModifyAlpha(1.2)
	chk.Scalar(tst, "theta", 1e-14, b.Theta, a.Theta)
	chk.Scalar(tst, "weight", 1e-14, b.Weight, a.Weight)
	chk.Scalar(tst, "alpha", 1e-14, b.Alpha, 1.2)
}

func TestReflect(tst *testing.T) {
	chk.PrintTitle("reflect finds matching angle")

	q, err := NewProductQuadrature(2, 2)
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for i := range q.Angles() {
		j := q.Reflect(i, XNorm)
		if j < 0 {
			tst.Fatalf("angle %d: no reflection found across XNorm", i)
			continue
		}
		a, b := q.At(i), q.At(j)
		chk.Scalar(tst, "oy", 1e-9, b.Oy, a.Oy)
		chk.Scalar(tst, "oz", 1e-9, b.Oz, a.Oz)
		chk.Scalar(tst, "ox", 1e-9, b.Ox, -a.Ox)
	}
}
