// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"lajolla/r3"
)

// identityFrame is the shading frame aligned to world axes, used so a
// lobe's local-space math is easy to reason about directly in world space.
var identityFrame = Frame{T: r3.Vec{X: 1}, B: r3.Vec{Y: 1}, N: r3.Vec{Z: 1}}

// uniformHemisphereSample draws a direction uniformly over the hemisphere
// around +Z; its density is the constant 1/(2*pi).
func uniformHemisphereSample(rnd *Rand) r3.Vec {
	v := rnd.UnitVector()
	if v.Z < 0 {
		v = v.Muls(-1)
	}
	return v
}

const uniformHemispherePdf = 1 / (2 * math.Pi)

// checkEvalReciprocity verifies property 3 from the spec: eval already
// folds in the outgoing cosine term (eval(wi,wo) = f_r(wi,wo)*|n.wo|), so
// the raw-BRDF reciprocity f_r(wi,wo) == f_r(wo,wi) shows up as
// eval(wi,wo)*|n.wi| == eval(wo,wi)*|n.wo|.
func checkEvalReciprocity(t *testing.T, name string, eval func(wi, wo r3.Vec) Spectrum, wi, wo r3.Vec) {
	t.Helper()
	n := identityFrame.N
	lhs := eval(wi, wo).Muls(math.Abs(n.Dot(wi)))
	rhs := eval(wo, wi).Muls(math.Abs(n.Dot(wo)))
	assert.InDelta(t, lhs.X, rhs.X, 1e-9, "%s: reciprocity X", name)
	assert.InDelta(t, lhs.Y, rhs.Y, 1e-9, "%s: reciprocity Y", name)
	assert.InDelta(t, lhs.Z, rhs.Z, 1e-9, "%s: reciprocity Z", name)
}

func TestDiffuseLobeEvalReciprocity(t *testing.T) {
	l := diffuseLobe{baseColor: Spectrum{X: 0.6, Y: 0.4, Z: 0.3}, roughness: 0.5, subsurface: 0.2}
	wi := r3.Vec{X: 0.3, Y: 0.1, Z: 0.94}.Unit()
	wo := r3.Vec{X: -0.2, Y: 0.5, Z: 0.84}.Unit()
	eval := func(a, b r3.Vec) Spectrum { return l.eval(a, b, identityFrame, identityFrame.N) }
	checkEvalReciprocity(t, "diffuse", eval, wi, wo)
}

func TestMetalLobeEvalReciprocity(t *testing.T) {
	l := metalLobe{
		baseColor: Spectrum{X: 0.9, Y: 0.2, Z: 0.2}, roughness: 0.3, anisotropic: 0.4,
		specular: 0.5, specularTint: 0.3, metallic: 0.8, eta: 1.5,
	}
	wi := r3.Vec{X: 0.4, Y: -0.2, Z: 0.89}.Unit()
	wo := r3.Vec{X: -0.1, Y: 0.3, Z: 0.95}.Unit()
	eval := func(a, b r3.Vec) Spectrum { return l.eval(a, b, identityFrame, identityFrame.N) }
	checkEvalReciprocity(t, "metal", eval, wi, wo)
}

func TestClearcoatLobeEvalReciprocity(t *testing.T) {
	l := clearcoatLobe{gloss: 0.6}
	wi := r3.Vec{X: 0.2, Y: 0.2, Z: 0.96}.Unit()
	wo := r3.Vec{X: -0.3, Y: 0.1, Z: 0.95}.Unit()
	eval := func(a, b r3.Vec) Spectrum { return l.eval(a, b, identityFrame, identityFrame.N) }
	checkEvalReciprocity(t, "clearcoat", eval, wi, wo)
}

// TestDiffuseLobeEnergyBound is property 1: the hemispherical integral of
// eval/|n.wo| (the raw BRDF) estimated by uniform-hemisphere Monte Carlo
// must not exceed one by more than sampling tolerance.
func TestDiffuseLobeEnergyBound(t *testing.T) {
	l := diffuseLobe{baseColor: Spectrum{X: 0.8, Y: 0.8, Z: 0.8}, roughness: 0.4, subsurface: 0}
	wi := r3.Vec{X: 0, Y: 0, Z: 1}
	rnd := NewRand(42)
	const n = 100000
	var sum Spectrum
	for i := 0; i < n; i++ {
		wo := uniformHemisphereSample(rnd)
		fr := l.eval(wi, wo, identityFrame, identityFrame.N).Divs(math.Abs(wo.Z))
		sum = sum.Add(fr.Muls(1.0 / uniformHemispherePdf))
	}
	integral := sum.Divs(n)
	assert.Less(t, integral.X, 1.05)
	assert.Less(t, integral.Y, 1.05)
	assert.Less(t, integral.Z, 1.05)
}

// TestLobeSamplesAreConsistentWithPdf is property 2, spot-checked rather
// than with a full chi-squared histogram: every direction a lobe's sample
// method actually produces must carry strictly positive density under its
// own pdf method, and eval must be consistent (non-negative, finite).
func TestLobeSamplesAreConsistentWithPdf(t *testing.T) {
	rnd := NewRand(7)
	wi := r3.Vec{X: 0.1, Y: 0.05, Z: 0.993}.Unit()

	cases := []struct {
		name   string
		sample func(r3.Vec, Frame, r3.Vec, *Rand) (BSDFSample, bool)
		pdf    func(wi, wo r3.Vec, frame Frame, n r3.Vec) float64
		eval   func(wi, wo r3.Vec, frame Frame, n r3.Vec) Spectrum
	}{
		{"diffuse",
			diffuseLobe{baseColor: White, roughness: 0.5}.sample,
			diffuseLobe{baseColor: White, roughness: 0.5}.pdf,
			diffuseLobe{baseColor: White, roughness: 0.5}.eval},
		{"metal",
			metalLobe{baseColor: White, roughness: 0.3, metallic: 1, specular: 0.5, eta: 1.5}.sample,
			metalLobe{baseColor: White, roughness: 0.3, metallic: 1, specular: 0.5, eta: 1.5}.pdf,
			metalLobe{baseColor: White, roughness: 0.3, metallic: 1, specular: 0.5, eta: 1.5}.eval},
		{"clearcoat",
			clearcoatLobe{gloss: 0.5}.sample,
			clearcoatLobe{gloss: 0.5}.pdf,
			clearcoatLobe{gloss: 0.5}.eval},
	}

	for _, c := range cases {
		for i := 0; i < 500; i++ {
			bs, ok := c.sample(wi, identityFrame, identityFrame.N, rnd)
			if !ok {
				continue
			}
			pdf := c.pdf(wi, bs.Dir, identityFrame, identityFrame.N)
			assert.Greater(t, pdf, 0.0, "%s sample %d must have positive pdf at its own direction", c.name, i)
			f := c.eval(wi, bs.Dir, identityFrame, identityFrame.N)
			assert.GreaterOrEqual(t, f.X, 0.0, "%s eval must be non-negative", c.name)
			assert.False(t, math.IsNaN(f.X) || math.IsInf(f.X, 0), "%s eval must be finite", c.name)
		}
	}
}
