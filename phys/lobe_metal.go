// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"lajolla/r3"
)

// metalLobe is Disney's "modified metal" lobe: an anisotropic GGX
// specular reflection whose Fresnel term blends the tinted dielectric base
// reflectance at normal incidence with the base color as the material
// becomes more metallic. Grounded on disney_metal_modified.inl.
type metalLobe struct {
	baseColor     Spectrum
	roughness     float64
	anisotropic   float64
	specular      float64
	specularTint  float64
	metallic      float64
	eta           float64
}

func r0OfEta(eta float64) float64 {
	t := (eta - 1) / (eta + 1)
	return t * t
}

// c0 is the metal lobe's effective Fresnel reflectance at normal
// incidence, blending a dielectric base (tinted by specular/specularTint)
// with the raw base color as metallic increases.
func (l metalLobe) c0() Spectrum {
	lum := l.baseColor.Luminance()
	tintColor := White
	if lum > 0 {
		tintColor = l.baseColor.Divs(lum)
	}
	ks := White.Muls(1 - l.specularTint).Add(tintColor.Muls(l.specularTint))
	r0 := r0OfEta(l.eta)
	dielectric := ks.Muls(l.specular * r0 * (1 - l.metallic))
	return dielectric.Add(l.baseColor.Muls(l.metallic))
}

func (l metalLobe) eval(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) Spectrum {
	if geometricNormal.Dot(wi) < 0 || geometricNormal.Dot(wo) < 0 {
		return ZeroSpectrum
	}
	lwi := frame.ToLocal(wi)
	lwo := frame.ToLocal(wo)
	nDotIn := lwi.Z
	if math.Abs(nDotIn) < 0.05 {
		return ZeroSpectrum
	}
	h := lwi.Add(lwo).Unit()
	hDotOut := h.Dot(lwo)
	roughness := math.Max(0.01, math.Min(1, l.roughness))
	ax, ay := roughnessToAlpha(roughness, l.anisotropic)

	c0 := l.c0()
	fm := c0.Add(White.Sub(c0).Muls(math.Pow(1-math.Abs(hDotOut), 5)))
	dm := ggxAniso(h, ax, ay)
	gIn := smithMaskingAniso(lwi, ax, ay)
	gOut := smithMaskingAniso(lwo, ax, ay)
	return fm.Muls(dm * gIn * gOut / (4 * math.Abs(nDotIn)))
}

func (l metalLobe) pdf(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) float64 {
	if geometricNormal.Dot(wi) < 0 || geometricNormal.Dot(wo) < 0 {
		return 0
	}
	lwi := frame.ToLocal(wi)
	lwo := frame.ToLocal(wo)
	if lwi.Z <= 0 || lwo.Z <= 0 {
		return 0
	}
	roughness := math.Max(0.01, math.Min(1, l.roughness))
	ax, ay := roughnessToAlpha(roughness, l.anisotropic)
	h := lwi.Add(lwo).Unit()
	hDotOut := h.Dot(lwo)
	if math.Abs(hDotOut) < 0.05 {
		return 0
	}
	dm := ggxAniso(h, ax, ay)
	gIn := smithMaskingAniso(lwi, ax, ay)
	return dm * gIn * math.Abs(h.Z) / (4 * math.Abs(hDotOut))
}

func (l metalLobe) sample(wi r3.Vec, frame Frame, geometricNormal r3.Vec, rnd *Rand) (BSDFSample, bool) {
	if geometricNormal.Dot(wi) < 0 {
		return BSDFSample{}, false
	}
	roughness := math.Max(0.01, math.Min(1, l.roughness))
	ax, ay := roughnessToAlpha(roughness, l.anisotropic)
	lwi := frame.ToLocal(wi)
	u1, u2 := rnd.Next2D()
	h := sampleVisibleNormalsAniso(lwi, ax, ay, u1, u2)
	lwo := reflect(lwi.Muls(-1), h)
	if lwo.Z <= 0 {
		return BSDFSample{}, false
	}
	return BSDFSample{Dir: frame.ToWorld(lwo), Eta: 0, Roughness: roughness}, true
}
