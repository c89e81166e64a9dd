// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"math"

	"lajolla/r3"
)

// Lambertian is a pure cosine-weighted diffuse BSDF, kept alongside
// DisneyMaterial as a cheap surface for debugging and for scenes that
// don't need the full principled model.
type Lambertian struct {
	Texture Texture
}

func (m Lambertian) Validate() error {
	return m.Texture.Validate()
}

func (m Lambertian) Emission(vtx *Vertex) Spectrum {
	return ZeroSpectrum
}

func (m Lambertian) Eval(wi, wo r3.Vec, vtx *Vertex) Spectrum {
	frame := flipToGeometric(vtx.ShadingFrame, vtx.GeometricNormal, wi)
	if vtx.GeometricNormal.Dot(wi) < 0 || vtx.GeometricNormal.Dot(wo) < 0 {
		return ZeroSpectrum
	}
	albedo := evalTexture(m.Texture, vtx)
	nDotOut := math.Max(0, frame.N.Dot(wo))
	return albedo.Muls(nDotOut / math.Pi)
}

func (m Lambertian) Pdf(wi, wo r3.Vec, vtx *Vertex) float64 {
	frame := flipToGeometric(vtx.ShadingFrame, vtx.GeometricNormal, wi)
	if vtx.GeometricNormal.Dot(wi) < 0 || vtx.GeometricNormal.Dot(wo) < 0 {
		return 0
	}
	return math.Max(0, frame.N.Dot(wo)) / math.Pi
}

func (m Lambertian) Sample(wi r3.Vec, vtx *Vertex, rnd *Rand) (BSDFSample, bool) {
	frame := flipToGeometric(vtx.ShadingFrame, vtx.GeometricNormal, wi)
	if vtx.GeometricNormal.Dot(wi) < 0 {
		return BSDFSample{}, false
	}
	dir := rnd.CosineWeightedHemisphere(frame.N)
	return BSDFSample{Dir: dir, Eta: 0, Roughness: 1}, true
}

func init() {
	RegisterInterfaceType(Lambertian{})
}
