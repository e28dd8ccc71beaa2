// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xsource

// Kind tags which concrete source Any carries, replacing the original's
// runtime downcast at Sweeper.AssignSource call sites (spec.md REDESIGN
// FLAGS: "SourceKind = Plain | TwoByThreeD").
type Kind int

const (
	// KindPlain is a standalone Source for an Sn-only or MoC-only sweeper.
	KindPlain Kind = iota
	// Kind2D3D is a composite Source2D3D for the 2D3D composite sweeper.
	Kind2D3D
)

// Any is the tagged-variant argument every Sweeper.AssignSource accepts.
// Exactly one of Plain or TwoD3D is non-nil, selected by Kind.
type Any struct {
	Kind   Kind
	Plain  *Source
	TwoD3D *Source2D3D
}

// FromPlain wraps a standalone Source as an Any of KindPlain.
func FromPlain(s *Source) Any { return Any{Kind: KindPlain, Plain: s} }

// From2D3D wraps a Source2D3D as an Any of Kind2D3D.
func From2D3D(s *Source2D3D) Any { return Any{Kind: Kind2D3D, TwoD3D: s} }

// Source2D3D composes the MoC-facing source (the plain Source given to the
// composite sweeper) with the Sn sub-sweeper's own source over the
// homogenized XS mesh. The Sn sub-sweeper binds to GetSnSource() rather
// than reinterpreting the composite source itself.
//
// SetExternal, Fission, and InScatter are overridden (not left to Source's
// embedded-field promotion) so that a single call on the composite source
// reaches both inner sources identically — the solver only ever sees one
// Source, but both sub-sweepers need a consistent fission/in-scatter/
// external term built from the same fission bank. AddExternalDelta is
// deliberately not forwarded to the Sn side: it exists solely for the
// composite sweeper's transverse-leakage contribution, which spec.md
// §4.6 step 1 adds to the MoC source only.
type Source2D3D struct {
	*Source        // the MoC-facing source
	sn      *Source // the Sn sub-sweeper's own source
}

// NewSource2D3D builds a Source2D3D from the MoC-facing source and the
// Sn-facing source that reads the same fission bank.
func NewSource2D3D(moc, sn *Source) *Source2D3D {
	return &Source2D3D{Source: moc, sn: sn}
}

// GetSnSource returns the Sn sub-sweeper's source.
func (s *Source2D3D) GetSnSource() *Source { return s.sn }

// SetExternal attaches the same fixed external source to both the MoC
// and Sn sub-sources.
func (s *Source2D3D) SetExternal(ext [][]float64) {
	s.Source.SetExternal(ext)
	s.sn.SetExternal(ext)
}

// Fission sets the fission contribution to Q for group on both
// sub-sources from the same fission density.
func (s *Source2D3D) Fission(fissionDensity []float64, group int) {
	s.Source.Fission(fissionDensity, group)
	s.sn.Fission(fissionDensity, group)
}

// InScatter adds the in-scatter (and external) contribution to Q for
// group on both sub-sources.
func (s *Source2D3D) InScatter(group int) {
	s.Source.InScatter(group)
	s.sn.InScatter(group)
}
