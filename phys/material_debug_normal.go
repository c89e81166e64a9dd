// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

// Package phys implements physically based materials and utility shaders used by
// the raytracer. Package phys follows the Go standard library conventions.
package phys

import "lajolla/r3"

// DebugNormal draws the surface normal as a false-color visualization.
//
// R = (nx + 1) / 2, G = (ny + 1) / 2, B = (nz + 1) / 2. DebugNormal is an
// unlit diagnostic material: it contributes no BSDF, only emission.
type DebugNormal struct{}

func (m DebugNormal) Validate() error {
	return nil
}

func (m DebugNormal) Emission(vtx *Vertex) Spectrum {
	n := vtx.GeometricNormal.Unit()
	return Spectrum{X: 0.5 * (n.X + 1), Y: 0.5 * (n.Y + 1), Z: 0.5 * (n.Z + 1)}.Clip(0, 1)
}

func (m DebugNormal) Eval(wi, wo r3.Vec, vtx *Vertex) Spectrum {
	return ZeroSpectrum
}

func (m DebugNormal) Pdf(wi, wo r3.Vec, vtx *Vertex) float64 {
	return 0
}

func (m DebugNormal) Sample(wi r3.Vec, vtx *Vertex, rnd *Rand) (BSDFSample, bool) {
	return BSDFSample{}, false
}

func init() {
	RegisterInterfaceType(DebugNormal{})
}
