// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package correction holds the CDD (corrected diamond difference) factors
// the MoC plane sweeper produces and the Sn CDD cell worker consumes: two
// alpha factors and one beta factor per (pin, group, angle). Produced by
// moc.Sweeper.Sweep, read by sn's CDD CellWorker — the MoC-to-Sn handoff
// spec.md §3 describes.
package correction

// Data is the CorrectionData store, owned by the 2D3D composite sweeper
// and shared with the Sn sub-sweeper's CDD cell worker for its lifetime.
type Data struct {
	NPin, Ng, NAngle int

	// AlphaX, AlphaY are per-(pin, group, angle) correction factors
	// applied to the diamond-difference relation along x and y; Beta is
	// the single axial (z) correction factor. All are indexed by
	// Index(pin, group, angle).
	AlphaX []float64
	AlphaY []float64
	Beta   []float64
}

// NewData allocates a CorrectionData store for the given pin count, group
// count, and angle count. Every factor defaults to 1, the value that
// reduces the CDD cell equation to plain diamond difference before the
// first MoC sweep populates real corrections.
func NewData(nPin, ng, nAngle int) *Data {
	d := &Data{NPin: nPin, Ng: ng, NAngle: nAngle}
	n := nPin * ng * nAngle
	d.AlphaX = make([]float64, n)
	d.AlphaY = make([]float64, n)
	d.Beta = make([]float64, n)
	for i := range d.AlphaX {
		d.AlphaX[i] = 1
		d.AlphaY[i] = 1
		d.Beta[i] = 1
	}
	return d
}

// Index returns the flat index for a given pin, group, and angle.
func (d *Data) Index(pin, group, angle int) int {
	return (pin*d.Ng+group)*d.NAngle + angle
}

// Set stores the correction triple for a (pin, group, angle).
func (d *Data) Set(pin, group, angle int, alphaX, alphaY, beta float64) {
	i := d.Index(pin, group, angle)
	d.AlphaX[i] = alphaX
	d.AlphaY[i] = alphaY
	d.Beta[i] = beta
}

// Get returns the correction triple for a (pin, group, angle).
func (d *Data) Get(pin, group, angle int) (alphaX, alphaY, beta float64) {
	i := d.Index(pin, group, angle)
	return d.AlphaX[i], d.AlphaY[i], d.Beta[i]
}
