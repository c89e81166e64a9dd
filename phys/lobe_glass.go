// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"lajolla/r3"
)

// glassLobe is a rough dielectric interface: anisotropic GGX reflection
// and transmission coupled by a single Fresnel term, following Walter et
// al., "Microfacet Models for Refraction through Rough Surfaces" (2007).
// Grounded on disney_glass.inl.
type glassLobe struct {
	baseColor   Spectrum
	roughness   float64
	anisotropic float64
	eta         float64 // IOR of the material, assuming vacuum on the other side
}

// relativeEta returns eta-transmitted-over-eta-incident for a ray
// currently on the side of geometricNormal indicated by dirIn.
func (l glassLobe) relativeEta(geometricNormal, dirIn r3.Vec) float64 {
	if geometricNormal.Dot(dirIn) > 0 {
		return l.eta
	}
	return 1 / l.eta
}

func (l glassLobe) eval(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) Spectrum {
	eta := l.relativeEta(geometricNormal, wi)
	reflectBranch := geometricNormal.Dot(wi)*geometricNormal.Dot(wo) > 0

	lwi := frame.ToLocal(wi)
	lwo := frame.ToLocal(wo)

	var h r3.Vec
	if reflectBranch {
		h = lwi.Add(lwo).Unit()
	} else {
		h = lwi.Add(lwo.Muls(eta)).Unit()
	}
	if h.Z < 0 {
		h = h.Muls(-1)
	}

	roughness := math.Max(0.01, math.Min(1, l.roughness))
	ax, ay := roughnessToAlpha(roughness, l.anisotropic)
	hDotIn := h.Dot(lwi)
	hDotOut := h.Dot(lwo)
	f := fresnelDielectric(hDotIn, eta)
	d := ggxAniso(h, ax, ay)
	g := smithMaskingAniso(lwi, ax, ay) * smithMaskingAniso(lwo, ax, ay)
	nDotIn := lwi.Z

	if reflectBranch {
		value := f * d * g / (4 * math.Abs(nDotIn))
		return l.baseColor.Muls(value)
	}
	sqrtDenom := hDotIn + eta*hDotOut
	if sqrtDenom == 0 {
		return ZeroSpectrum
	}
	value := (1 - f) * d * g * math.Abs(hDotOut*hDotIn) / (math.Abs(nDotIn) * sqrtDenom * sqrtDenom)
	return l.baseColor.Sqrt().Muls(value)
}

func (l glassLobe) pdf(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) float64 {
	eta := l.relativeEta(geometricNormal, wi)
	reflectBranch := geometricNormal.Dot(wi)*geometricNormal.Dot(wo) > 0

	lwi := frame.ToLocal(wi)
	lwo := frame.ToLocal(wo)

	var h r3.Vec
	if reflectBranch {
		h = lwi.Add(lwo).Unit()
	} else {
		h = lwi.Add(lwo.Muls(eta)).Unit()
	}
	if h.Z < 0 {
		h = h.Muls(-1)
	}

	roughness := math.Max(0.01, math.Min(1, l.roughness))
	ax, ay := roughnessToAlpha(roughness, l.anisotropic)
	hDotIn := h.Dot(lwi)
	hDotOut := h.Dot(lwo)
	f := fresnelDielectric(hDotIn, eta)
	d := ggxAniso(h, ax, ay)
	gIn := smithMaskingAniso(lwi, ax, ay)

	if reflectBranch {
		return f * d * gIn / (4 * math.Abs(hDotIn))
	}
	sqrtDenom := hDotIn + eta*hDotOut
	if sqrtDenom == 0 {
		return 0
	}
	dhDOut := eta * eta * math.Abs(hDotOut) / (sqrtDenom * sqrtDenom)
	return (1 - f) * d * gIn * dhDOut
}

func (l glassLobe) sample(wi r3.Vec, frame Frame, geometricNormal r3.Vec, rnd *Rand) (BSDFSample, bool) {
	eta := l.relativeEta(geometricNormal, wi)
	roughness := math.Max(0.01, math.Min(1, l.roughness))
	ax, ay := roughnessToAlpha(roughness, l.anisotropic)

	lwi := frame.ToLocal(wi)
	u1, u2 := rnd.Next2D()
	h := sampleVisibleNormalsAniso(lwi, ax, ay, u1, u2)
	hDotIn := h.Dot(lwi)
	f := fresnelDielectric(hDotIn, eta)

	rndW := rnd.Float64()
	if rndW <= f {
		lwo := reflect(lwi.Muls(-1), h)
		if lwo.Z*lwi.Z <= 0 {
			return BSDFSample{}, false
		}
		return BSDFSample{Dir: frame.ToWorld(lwo), Eta: 0, Roughness: roughness}, true
	}

	nDotTSq := 1 - (1-hDotIn*hDotIn)/(eta*eta)
	if nDotTSq <= 0 {
		return BSDFSample{}, false // total internal reflection
	}
	sqrtND := math.Sqrt(nDotTSq)
	signC := math.Copysign(1, hDotIn)
	invEta := 1 / eta
	lwo := lwi.Muls(-invEta).Add(h.Muls(invEta*hDotIn - signC*sqrtND))
	if lwo.Z*lwi.Z > 0 {
		return BSDFSample{}, false // should have crossed to the other side
	}
	return BSDFSample{Dir: frame.ToWorld(lwo), Eta: eta, Roughness: roughness}, true
}
