// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsmesh

import "github.com/ntouran/mocc/mesh"

// Homogenized is the homogenized XS mesh: one Region per pin, indexed
// lexicographically (mesh.CoreMesh.IndexLex order). It starts out
// volume-weighted and becomes flux-volume-weighted after the first
// Update(flux) call.
type Homogenized struct {
	mesh    *mesh.CoreMesh
	ng      int
	Regions []Region
}

// NewHomogenized builds the initial (volume-weighted, no flux) homogenized
// XS mesh: for each pin in lex order, a Region is produced by
// volume-weighting its materials' XS over its fine regions. Chi is
// weighted by fission source (sum_g xsnf[g]) rather than volume; if that
// weight is zero for every fine region, chi collapses to zero (an
// unfissile pin).
func NewHomogenized(cm *mesh.CoreMesh) *Homogenized {
	ng := cm.MatLib.NumGroups()
	h := &Homogenized{mesh: cm, ng: ng, Regions: make([]Region, cm.NumPins())}

	for ipin, pin := range cm.Pins() {
		pos := cm.PinPosition(ipin)
		ixsreg := cm.IndexLex(pos)
		h.Regions[ixsreg] = homogenizeVolume(cm, ipin, pin, ng)
	}
	return h
}

// homogenizeVolume volume-weights a single pin's materials into one
// Region, weighting chi by fission source.
func homogenizeVolume(cm *mesh.CoreMesh, ipin int, pin *mesh.Pin, ng int) Region {
	xstr := make([]float64, ng)
	xsnf := make([]float64, ng)
	xskf := make([]float64, ng)
	xsch := make([]float64, ng)
	scat := make([][]float64, ng)
	for g := range scat {
		scat[g] = make([]float64, ng)
	}

	vols := pin.PinMesh.Volumes()
	var fvol float64

	ireg := 0
	ixsreg := 0
	for _, matID := range pin.MatIDs {
		material, _ := cm.MatLib.ByID(matID)
		fsrc := material.FissionSource()
		n := pin.PinMesh.NFSRsInRegion(ixsreg)
		for r := 0; r < n; r++ {
			v := vols[ireg]
			fvol += v * fsrc
			for g := 0; g < ng; g++ {
				xstr[g] += v * material.Xstr(g)
				xsnf[g] += v * material.Xsnf[g]
				xskf[g] += v * material.Xskf[g]
				xsch[g] += v * fsrc * material.Xsch[g]

				row := material.Xssc.To(g)
				for gp := row.MinG; gp <= row.MaxG; gp++ {
					scat[gp][g] += row.From[gp-row.MinG] * v
				}
			}
			ireg++
		}
		ixsreg++
	}

	vol := pin.Volume()
	for g := 0; g < ng; g++ {
		xstr[g] /= vol
		xsnf[g] /= vol
		xskf[g] /= vol
		if fvol > 0.0 {
			xsch[g] /= fvol
		}
		for gp := 0; gp < ng; gp++ {
			scat[g][gp] /= vol
		}
	}

	return Region{
		FSRs: []int{cm.IndexLex(cm.PinPosition(ipin))},
		Xstr: xstr, Xsnf: xsnf, Xskf: xskf, Xsch: xsch,
		Xssc: newScatteringMatrixFromDense(scat),
	}
}

// Update recomputes every pin's Region with flux-volume weighting:
//
//	xstr_h[g] = sum_r(v*phi(r,g)*xstr_mat(r,g)) / sum_r(v*phi(r,g))
//
// Scattering is normalized by the *source* group's flux-volume (not the
// destination group's), and chi is re-weighted by the fission source
// fs[r] = sum_g(xsnf_mat(g)*phi(r,g)*v). If the pin's total fission source
// is zero, chi is left at zero (guards against the NaN a naive
// flux-weighted average would produce for an unfissile pin).
//
// flux is indexed flux[region][group], region in the dense global
// fine-region numbering CoreMesh.Volumes() uses.
func (h *Homogenized) Update(flux [][]float64) {
	cm := h.mesh
	ng := h.ng

	firstReg := 0
	for ipin, pin := range cm.Pins() {
		pos := cm.PinPosition(ipin)
		ixsreg := cm.IndexLex(pos)
		h.Regions[ixsreg] = homogenizeFlux(cm, ipin, pin, firstReg, flux, ng)
		firstReg += pin.NumFSRs()
	}
}

func homogenizeFlux(cm *mesh.CoreMesh, ipin int, pin *mesh.Pin, firstReg int, flux [][]float64, ng int) Region {
	vols := pin.PinMesh.Volumes()
	nRegPin := pin.NumFSRs()

	// Precompute the fission source in each pin-local FSR, the chi
	// weighting factor.
	fs := make([]float64, nRegPin)
	{
		ixsreg := 0
		ireg := 0
		for _, matID := range pin.MatIDs {
			material, _ := cm.MatLib.ByID(matID)
			n := pin.PinMesh.NFSRsInRegion(ixsreg)
			for r := 0; r < n; r++ {
				for g := 0; g < ng; g++ {
					fs[ireg] += material.Xsnf[g] * flux[firstReg+ireg][g] * vols[ireg]
				}
				ireg++
			}
			ixsreg++
		}
	}
	var fsSum float64
	for _, v := range fs {
		fsSum += v
	}

	xstr := make([]float64, ng)
	xsnf := make([]float64, ng)
	xskf := make([]float64, ng)
	xsch := make([]float64, ng)
	scat := make([][]float64, ng)
	for g := range scat {
		scat[g] = make([]float64, ng)
	}

	for g := 0; g < ng; g++ {
		var fluxVolSum float64
		scatSum := make([]float64, ng)

		ireg := 0
		ixsreg := 0
		for _, matID := range pin.MatIDs {
			material, _ := cm.MatLib.ByID(matID)
			row := material.Xssc.To(g)
			n := pin.PinMesh.NFSRsInRegion(ixsreg)
			for r := 0; r < n; r++ {
				v := vols[ireg]
				fluxG := flux[firstReg+ireg][g]
				fluxVolSum += v * fluxG
				xstr[g] += v * fluxG * material.Xstr(g)
				xsnf[g] += v * fluxG * material.Xsnf[g]
				xskf[g] += v * fluxG * material.Xskf[g]
				xsch[g] += fs[ireg] * material.Xsch[g]

				for gg := 0; gg < ng; gg++ {
					fluxGG := flux[firstReg+ireg][gg]
					scatSum[gg] += v * fluxGG
					if gg >= row.MinG && gg <= row.MaxG {
						// scat is stored source-major (scat[src][dst]) to
						// match mat.NewScatteringMatrix's input
						// convention, so the destination-group loop
						// variable g lands in the second index.
						scat[gg][g] += row.From[gg-row.MinG] * v * fluxGG
					}
				}
				ireg++
			}
			ixsreg++
		}

		for gg := 0; gg < ng; gg++ {
			if scat[gg][g] > 0.0 {
				scat[gg][g] /= scatSum[gg]
			}
		}

		if fluxVolSum > 0.0 {
			xstr[g] /= fluxVolSum
			xsnf[g] /= fluxVolSum
			xskf[g] /= fluxVolSum
		}
		if fsSum > 0.0 {
			xsch[g] /= fsSum
		}
	}

	return Region{
		FSRs: []int{cm.IndexLex(cm.PinPosition(ipin))},
		Xstr: xstr, Xsnf: xsnf, Xskf: xskf, Xsch: xsch,
		Xssc: newScatteringMatrixFromDense(scat),
	}
}

// NumGroups returns the number of energy groups.
func (h *Homogenized) NumGroups() int { return h.ng }

// Size returns the number of homogenized regions (== number of pins).
func (h *Homogenized) Size() int { return len(h.Regions) }
