// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import "lajolla/r3"

// Material is the surface shading interface every Node's BSDF satisfies.
// wi and wo both point away from the surface. Emission lets a Material
// double as an area light without a parallel light-source hierarchy: a
// purely reflective material simply returns ZeroSpectrum.
type Material interface {
	Eval(wi, wo r3.Vec, vtx *Vertex) Spectrum
	Pdf(wi, wo r3.Vec, vtx *Vertex) float64
	Sample(wi r3.Vec, vtx *Vertex, rnd *Rand) (BSDFSample, bool)
	Emission(vtx *Vertex) Spectrum
	Validate() error
}
