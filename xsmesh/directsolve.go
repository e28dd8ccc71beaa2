// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsmesh

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ntouran/mocc/merr"
)

// DirectSolve solves this Region's multigroup fixed-source balance
// equation directly by Gaussian elimination rather than power iteration:
//
//	(diag(Xstr) - scat^T) * phi = q
//
// where scat[g'][g] is the g'->g scattering cross section. This is the
// same balance equation both the Sn and MoC sweepers converge to
// iteratively for a single, non-leaking homogeneous region; DirectSolve
// gives the exact answer to check them against (spec.md's S2 two-group
// upscatter test), and is not used by either sweeper itself.
func (r *Region) DirectSolve(q []float64) ([]float64, error) {
	ng := r.NumGroups()
	if len(q) != ng {
		return nil, merr.Config("xsmesh.Region.DirectSolve", "q has length %d, expected %d groups", len(q), ng)
	}
	scat := r.Xssc.AsDense()

	a := mat.NewDense(ng, ng, nil)
	for g := 0; g < ng; g++ {
		for gp := 0; gp < ng; gp++ {
			v := -scat[gp][g]
			if g == gp {
				v += r.Xstr[g]
			}
			a.Set(g, gp, v)
		}
	}
	b := mat.NewVecDense(ng, append([]float64(nil), q...))

	var phi mat.VecDense
	if err := phi.SolveVec(a, b); err != nil {
		return nil, merr.Config("xsmesh.Region.DirectSolve", "singular balance matrix: %v", err)
	}

	out := make([]float64, ng)
	for g := 0; g < ng; g++ {
		out[g] = phi.AtVec(g)
	}
	return out, nil
}
