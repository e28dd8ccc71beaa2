// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package quad

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Quadrature is an ordered sequence of Angles, partitioned into eight
// octants with a constant number of directions per octant (NdirOct).
// Angles are ordered by octant, then by intra-octant index.
type Quadrature struct {
	angles  []Angle
	ndirOct int
}

// NewProductQuadrature builds a quadrature set from nPolar polar levels
// (Gauss-Legendre on cos(theta) in (0, 1)) crossed with nAzimuthal equally
// spaced azimuthal angles in the first octant's quadrant (0, pi/2), then
// replicated into all eight octants by sign reflection. This is the
// "product quadrature" construction common to orthogonal-mesh Sn codes; it
// is used here in place of a hardcoded level-symmetric table because the
// retrieved corpus does not carry quadrature tables to ground one, but the
// normalization and octant-symmetry invariants spec.md requires (§8.1-3)
// hold for any correctly constructed product set.
//
// Weights are normalized so that the total over all eight octants is 4π.
func NewProductQuadrature(nPolar, nAzimuthal int) (*Quadrature, error) {
	if nPolar < 1 || nAzimuthal < 1 {
		return nil, chk.Err("quad: nPolar and nAzimuthal must be >= 1, got %d, %d", nPolar, nAzimuthal)
	}

	mu, wPolar := gaussLegendreOnUnit(nPolar)

	ndirOct := nPolar * nAzimuthal
	total := 8 * ndirOct
	q := &Quadrature{
		angles:  make([]Angle, 0, total),
		ndirOct: ndirOct,
	}

	// Each octant gets an equal share of the total solid angle, 4π/8 = π/2.
	// Within the octant, weight is split between polar levels (by the
	// Gauss-Legendre weight) and azimuthal subdivisions (equal split).
	azWeight := HalfPi / float64(nAzimuthal)

	octant1 := make([]Angle, 0, ndirOct)
	for ip := 0; ip < nPolar; ip++ {
		theta := math.Acos(mu[ip])
		for ia := 0; ia < nAzimuthal; ia++ {
			// Midpoint azimuthal samples within (0, pi/2).
			alpha := (float64(ia) + 0.5) * azWeight
			w := wPolar[ip] * azWeight
			octant1 = append(octant1, NewAngleFromPolar(alpha, theta, w))
		}
	}

	for octant := 1; octant <= 8; octant++ {
		for _, a := range octant1 {
			q.angles = append(q.angles, ToOctant(a, octant))
		}
	}

	return q, nil
}

// gaussLegendreOnUnit returns n Gauss-Legendre nodes/weights mapped from
// [-1, 1] onto cos(theta) in (0, 1) (i.e. the polar cosine restricted to
// the upper hemisphere, since octant replication handles the oz < 0 half),
// with weights normalized to sum to 1.
func gaussLegendreOnUnit(n int) (mu, w []float64) {
	x, wStd := gaussLegendreNodes(n)
	mu = make([]float64, n)
	w = make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		// Map [-1, 1] -> (0, 1)
		mu[i] = 0.5 * (x[i] + 1)
		w[i] = 0.5 * wStd[i]
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
	return mu, w
}

// gaussLegendreNodes computes the n-point Gauss-Legendre nodes and weights
// on [-1, 1] via the Newton iteration on the Legendre polynomial, the
// standard textbook construction (no special-function library in the
// retrieved corpus provides this directly).
func gaussLegendreNodes(n int) (x, w []float64) {
	x = make([]float64, n)
	w = make([]float64, n)
	m := (n + 1) / 2
	for i := 0; i < m; i++ {
		z := math.Cos(math.Pi * (float64(i) + 0.75) / (float64(n) + 0.5))
		var z1, pp float64
		for iter := 0; iter < 100; iter++ {
			p1, p2 := 1.0, 0.0
			for j := 0; j < n; j++ {
				p3 := p2
				p2 = p1
				p1 = ((2*float64(j)+1)*z*p2 - float64(j)*p3) / (float64(j) + 1)
			}
			pp = float64(n) * (z*p1 - p2) / (z*z - 1)
			z1 = z
			z = z1 - p1/pp
			if math.Abs(z-z1) < 1e-15 {
				break
			}
		}
		x[i] = -z
		x[n-1-i] = z
		wi := 2.0 / ((1 - z*z) * pp * pp)
		w[i] = wi
		w[n-1-i] = wi
	}
	return x, w
}

// Angles returns the full ordered sequence of Angles.
func (q *Quadrature) Angles() []Angle { return q.angles }

// NdirOct returns the (constant) number of directions per octant.
func (q *Quadrature) NdirOct() int { return q.ndirOct }

// Len returns the total number of Angles.
func (q *Quadrature) Len() int { return len(q.angles) }

// At returns the Angle at the given quadrature index.
func (q *Quadrature) At(i int) Angle { return q.angles[i] }

// Octant returns the 1-based octant containing quadrature index i.
func (q *Quadrature) Octant(i int) int { return i/q.ndirOct + 1 }

// TotalWeight sums the weights of every Angle in the set.
func (q *Quadrature) TotalWeight() float64 {
	var sum float64
	for _, a := range q.angles {
		sum += a.Weight
	}
	return sum
}

// Reflect returns the quadrature index of the angle obtained by specularly
// reflecting the angle at index i off a surface with the given normal
// (i.e. the outgoing angle for an incident ray hitting a reflective
// boundary on that normal). Reflection flips the cosine component along
// the normal and leaves the others unchanged, then looks up the matching
// angle by nearest cosines. Returns -1 if no match is found within
// tolerance, which indicates a quadrature/boundary mismatch.
func (q *Quadrature) Reflect(i int, norm Normal) int {
	a := q.angles[i]
	ox, oy, oz := a.Ox, a.Oy, a.Oz
	switch norm {
	case XNorm:
		ox = -ox
	case YNorm:
		oy = -oy
	case ZNorm:
		oz = -oz
	}
	const tol = 1e-9
	for j, b := range q.angles {
		if math.Abs(b.Ox-ox) < tol && math.Abs(b.Oy-oy) < tol && math.Abs(b.Oz-oz) < tol {
			return j
		}
	}
	return -1
}
