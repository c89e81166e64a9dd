// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"lajolla/r2"
	"lajolla/r3"
)

// Vertex describes a surface point the path tracer has just landed on: its
// position, the two normals used for shading consistency, texture
// coordinates, and the material/medium ids of whatever Node was hit.
type Vertex struct {
	Position        r3.Point
	GeometricNormal r3.Vec
	ShadingFrame    Frame
	UV              r2.Point
	UVScreenSize    float64 // texture footprint, for mip selection
	MaterialID      int     // -1 means index-matched: no BSDF, only a medium transition
	InteriorMedium  int     // -1 means vacuum
	ExteriorMedium  int     // -1 means vacuum
}

// BSDFSample is the outcome of importance-sampling a material's scattering
// distribution: the sampled outgoing direction plus the bookkeeping the
// path integrator needs to classify the bounce (specular vs. rough, and
// the relative index of refraction the ray now travels through).
type BSDFSample struct {
	Dir       r3.Vec
	Eta       float64 // 0 for a reflection lobe, != 1 for transmission
	Roughness float64
}

// flipToGeometric returns frame flipped so its normal agrees in sign with
// the geometric normal as seen from dirIn, matching the shading/geometric
// normal consistency check used throughout the Disney lobes.
func flipToGeometric(frame Frame, geometricNormal, dirIn r3.Vec) Frame {
	if frame.N.Dot(dirIn)*geometricNormal.Dot(dirIn) < 0 {
		return frame.Flip()
	}
	return frame
}
