// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"lajolla/r3"
)

// clearcoatLobe is a fixed-IOR (eta=1.5) isotropic GTR1 specular coat
// layered on top of the rest of the material. Grounded on
// disney_clearcoat.inl.
type clearcoatLobe struct {
	gloss float64
}

func (l clearcoatLobe) eval(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) Spectrum {
	if geometricNormal.Dot(wi) < 0 || geometricNormal.Dot(wo) < 0 {
		return ZeroSpectrum
	}
	alphaG := clearcoatAlpha(l.gloss)
	lwi := frame.ToLocal(wi)
	lwo := frame.ToLocal(wo)
	if lwi.Z <= 0 || lwo.Z <= 0 {
		return ZeroSpectrum
	}
	lwh := lwi.Add(lwo).Unit()
	if lwh.Z <= 0 {
		return ZeroSpectrum
	}
	dc := clearcoatDistribution(lwh, alphaG)
	fc := fresnelClearcoat(lwh.Dot(lwo))
	gc := clearcoatMasking(lwi) * clearcoatMasking(lwo)
	nDotIn := lwi.Z
	f := (fc * dc * gc) / (4 * math.Abs(nDotIn))
	return Spectrum{X: f, Y: f, Z: f}
}

func (l clearcoatLobe) pdf(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) float64 {
	if geometricNormal.Dot(wi) < 0 || geometricNormal.Dot(wo) < 0 {
		return 0
	}
	alphaG := clearcoatAlpha(l.gloss)
	lwi := frame.ToLocal(wi)
	lwo := frame.ToLocal(wo)
	if lwi.Z <= 0 || lwo.Z <= 0 {
		return 0
	}
	lwh := lwi.Add(lwo).Unit()
	if lwh.Z <= 0 {
		return 0
	}
	dc := clearcoatDistribution(lwh, alphaG)
	woDotH := lwo.Dot(lwh)
	return (dc * lwh.Z) / (4 * math.Abs(woDotH))
}

func (l clearcoatLobe) sample(wi r3.Vec, frame Frame, geometricNormal r3.Vec, rnd *Rand) (BSDFSample, bool) {
	if geometricNormal.Dot(wi) < 0 {
		return BSDFSample{}, false
	}
	alphaG := clearcoatAlpha(l.gloss)
	lwi := frame.ToLocal(wi)
	if lwi.Z <= 0 {
		return BSDFSample{}, false
	}
	u1, u2 := rnd.Next2D()
	h := sampleClearcoatHalfVector(alphaG, u1, u2)
	lwo := reflect(lwi.Muls(-1), h)
	if lwo.Z <= 0 {
		return BSDFSample{}, false
	}
	return BSDFSample{Dir: frame.ToWorld(lwo), Eta: 0, Roughness: alphaG}, true
}
