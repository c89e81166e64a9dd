// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"lajolla/r3"
)

// sheenLobe models the soft grazing-angle highlight on cloth-like
// materials. It shares the diffuse lobe's cosine-weighted sampler and is
// folded into eval but, per the mixer's design note, deliberately left
// out of the combined pdf (it never dominates the BSDF's importance
// sampling, so omitting it keeps the sampler simple without biasing the
// estimator). Grounded on disney_sheen.inl.
type sheenLobe struct {
	baseColor Spectrum
	sheenTint float64
}

func (l sheenLobe) tint() Spectrum {
	lum := l.baseColor.Luminance()
	cTint := White
	if lum > 0 {
		cTint = l.baseColor.Divs(lum)
	}
	return White.Muls(1 - l.sheenTint).Add(cTint.Muls(l.sheenTint))
}

func (l sheenLobe) eval(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) Spectrum {
	if geometricNormal.Dot(wi) < 0 || geometricNormal.Dot(wo) < 0 {
		return ZeroSpectrum
	}
	lwi := frame.ToLocal(wi)
	lwo := frame.ToLocal(wo)
	h := lwi.Add(lwo).Unit()
	hDotOut := h.Dot(lwo)
	sheenTerm := math.Pow(1-math.Abs(hDotOut), 5)
	cSheen := l.tint()
	return cSheen.Muls(sheenTerm * math.Abs(lwo.Z))
}

func (l sheenLobe) pdf(wi, wo r3.Vec, frame Frame, geometricNormal r3.Vec) float64 {
	if geometricNormal.Dot(wi) < 0 || geometricNormal.Dot(wo) < 0 {
		return 0
	}
	return math.Max(frame.ToLocal(wo).Z, 0) / math.Pi
}

func (l sheenLobe) sample(wi r3.Vec, frame Frame, geometricNormal r3.Vec, rnd *Rand) (BSDFSample, bool) {
	if geometricNormal.Dot(wi) < 0 {
		return BSDFSample{}, false
	}
	dir := rnd.CosineWeightedHemisphere(frame.N)
	return BSDFSample{Dir: dir, Eta: 0, Roughness: 1}, true
}
