// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import "lajolla/r3"

// lobe is the common shape of a single analytic BSDF component (diffuse,
// sheen, metal, clearcoat, glass). The Disney mixer in bsdf_mixer.go
// combines five of these per material. wi and wo both point away from the
// surface (wi toward the previous path vertex, wo toward the next one);
// frame is the shading frame already flipped to agree with the geometric
// normal along wi.
type lobe interface {
	eval(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) Spectrum
	pdf(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) float64
	sample(wi r3.Vec, frame Frame, geometricNormal r3.Vec, rnd *Rand) (BSDFSample, bool)
}
