// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"lajolla/r3"
)

// diffuseLobe is the Disney base diffuse term: a Schlick-style
// retroreflective base diffuse blended against a Hanrahan-Krueger-style
// subsurface approximation. Grounded on disney_diffuse.inl.
type diffuseLobe struct {
	baseColor  Spectrum
	roughness  float64
	subsurface float64
}

func diffuseRetro(fd90 func(cosTheta float64) float64, cosTheta float64) float64 {
	return 1 + (fd90(cosTheta)-1)*math.Pow(1-math.Abs(cosTheta), 5)
}

func (l diffuseLobe) eval(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) Spectrum {
	if geometricNormal.Dot(wi) < 0 || geometricNormal.Dot(wo) < 0 {
		return ZeroSpectrum
	}
	lwi := frame.ToLocal(wi)
	lwo := frame.ToLocal(wo)
	h := lwi.Add(lwo).Unit()
	hDotOut := h.Dot(lwo)
	nDotIn := lwi.Z
	nDotOut := lwo.Z

	fd90 := 0.5 + 2*l.roughness*hDotOut*hDotOut
	fdIn := diffuseRetro(func(float64) float64 { return fd90 }, nDotIn)
	fdOut := diffuseRetro(func(float64) float64 { return fd90 }, nDotOut)
	baseDiffuse := l.baseColor.Muls((1 / math.Pi) * fdIn * fdOut)

	fss90 := l.roughness * hDotOut * hDotOut
	fssIn := diffuseRetro(func(float64) float64 { return fss90 }, nDotIn)
	fssOut := diffuseRetro(func(float64) float64 { return fss90 }, nDotOut)
	denom := math.Abs(nDotIn) + math.Abs(nDotOut)
	var subsurfaceTerm Spectrum
	if denom > 0 {
		fss := fssIn * fssOut * (1/denom - 0.5) * 1.25
		subsurfaceTerm = l.baseColor.Muls((1 / math.Pi) * fss)
	}

	blended := baseDiffuse.Muls(1 - l.subsurface).Add(subsurfaceTerm.Muls(l.subsurface))
	return blended.Muls(math.Abs(nDotOut))
}

func (l diffuseLobe) pdf(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) float64 {
	if geometricNormal.Dot(wi) < 0 || geometricNormal.Dot(wo) < 0 {
		return 0
	}
	nDotOut := frame.ToLocal(wo).Z
	return math.Max(nDotOut, 0) / math.Pi
}

func (l diffuseLobe) sample(wi r3.Vec, frame Frame, geometricNormal r3.Vec, rnd *Rand) (BSDFSample, bool) {
	if geometricNormal.Dot(wi) < 0 {
		return BSDFSample{}, false
	}
	dir := rnd.CosineWeightedHemisphere(frame.N)
	return BSDFSample{Dir: dir, Eta: 0, Roughness: l.roughness}, true
}
