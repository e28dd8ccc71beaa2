// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hdfout

import (
	"fmt"

	"github.com/ntouran/mocc/mesh"
	"github.com/ntouran/mocc/xsmesh"
)

// WriteFlux writes one group's pin-average scalar flux as a 3-D grid under
// /flux/<group>, reshaped to CoreMesh's (nx, ny, nz) dimensions but
// recorded in the (z, y, x) dimension order spec.md §6 requires.
func WriteFlux(w *Writer, cm *mesh.CoreMesh, group int, flux []float64) {
	nx, ny, nz := cm.Dimensions()
	w.Write(fmt.Sprintf("/flux/%d", group), flux, []int{nz, ny, nx})
}

// WriteXSMesh writes the homogenized transport and nu-fission cross
// sections for every group under /xsmesh/xstr/<g> and /xsmesh/xsnf/<g>,
// and creates an empty /xsmesh/xssc group; scattering cross sections are
// not written.
func WriteXSMesh(w *Writer, h *xsmesh.Homogenized) {
	w.CreateGroup("/xsmesh")
	if len(h.Regions) == 0 {
		return
	}
	ng := len(h.Regions[0].Xstr)
	nPin := len(h.Regions)
	for g := 0; g < ng; g++ {
		xstr := make([]float64, nPin)
		xsnf := make([]float64, nPin)
		for i, r := range h.Regions {
			xstr[i] = r.Xstr[g]
			xsnf[i] = r.Xsnf[g]
		}
		w.Write(fmt.Sprintf("/xsmesh/xstr/%d", g), xstr, []int{nPin})
		w.Write(fmt.Sprintf("/xsmesh/xsnf/%d", g), xsnf, []int{nPin})
	}
	w.CreateGroup("/xsmesh/xssc")
}

// WriteHistory writes a solver's per-outer convergence history (e.g. k or
// the fission-source residual) as a flat 1-D dataset under path.
func WriteHistory(w *Writer, path string, values []float64) {
	w.Write(path, values, []int{len(values)})
}
