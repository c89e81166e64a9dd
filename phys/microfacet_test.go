// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"
	"testing"

	"lajolla/r3"
)

// almostEqual checks if two float64 values are approximately equal within a small tolerance.
func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestSchlickFresnel(t *testing.T) {
	f0 := r3.Vec{X: 0.04, Y: 0.04, Z: 0.04}
	// At normal incidence, F == F0.
	got := schlickFresnel(f0, 1.0)
	if !got.IsClose(f0, 1e-9) {
		t.Errorf("schlickFresnel at cosTheta=1 got %v, want %v", got, f0)
	}
	// At grazing incidence, F -> white.
	got = schlickFresnel(f0, 0.0)
	if !got.IsClose(r3.Vec{X: 1, Y: 1, Z: 1}, 1e-9) {
		t.Errorf("schlickFresnel at cosTheta=0 got %v, want white", got)
	}
}

func TestFresnelDielectricTotalInternalReflection(t *testing.T) {
	// eta < 1 (going from dense to sparse medium) at grazing angle must
	// total-internally-reflect.
	f := fresnelDielectric(0.05, 1.0/1.5)
	if f != 1 {
		t.Errorf("expected total internal reflection (F=1), got %v", f)
	}
}

func TestFresnelDielectricNormalIncidence(t *testing.T) {
	eta := 1.5
	want := math.Pow((eta-1)/(eta+1), 2)
	got := fresnelDielectric(1.0, eta)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("fresnelDielectric at normal incidence got %v, want %v", got, want)
	}
}

func TestRoughnessToAlphaIsotropicAtZeroAnisotropy(t *testing.T) {
	ax, ay := roughnessToAlpha(0.5, 0)
	if !almostEqual(ax, ay, 1e-9) {
		t.Errorf("expected alphaX == alphaY at anisotropic=0, got %v, %v", ax, ay)
	}
}

func TestGgxAnisoPeaksAtNormalIncidence(t *testing.T) {
	alphaX, alphaY := 0.2, 0.2
	atNormal := ggxAniso(r3.Vec{X: 0, Y: 0, Z: 1}, alphaX, alphaY)
	offNormal := ggxAniso(r3.Vec{X: 0.5, Y: 0, Z: math.Sqrt(1 - 0.25)}, alphaX, alphaY)
	if atNormal <= offNormal {
		t.Errorf("GTR2 should peak at h=n: D(n)=%v, D(off)=%v", atNormal, offNormal)
	}
}

func TestSmithMaskingAnisoBounds(t *testing.T) {
	v := r3.Vec{X: 0.1, Y: 0.1, Z: 0.99}
	g := smithMaskingAniso(v, 0.3, 0.3)
	if g <= 0 || g > 1 {
		t.Errorf("Smith G1 must be in (0,1], got %v", g)
	}
}

func TestSampleVisibleNormalsAnisoFlipsBelowHorizon(t *testing.T) {
	wi := r3.Vec{X: 0, Y: 0, Z: -1}
	h := sampleVisibleNormalsAniso(wi, 0.3, 0.3, 0.25, 0.75)
	if h.Z >= 0 {
		t.Errorf("sampled half-vector for a below-horizon incoming direction should flip to z<0, got %v", h)
	}
}

func TestClearcoatAlphaRange(t *testing.T) {
	smooth := clearcoatAlpha(1)
	rough := clearcoatAlpha(0)
	if smooth >= rough {
		t.Errorf("higher gloss should give a smaller alpha: gloss=1 -> %v, gloss=0 -> %v", smooth, rough)
	}
}

func TestFresnelClearcoatAtNormalIncidence(t *testing.T) {
	want := math.Pow((1.5-1)/(1.5+1), 2)
	got := fresnelClearcoat(1.0)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("fresnelClearcoat at h.wo=1 got %v, want %v", got, want)
	}
}

func TestReflect(t *testing.T) {
	i := r3.Vec{X: 0, Y: 0, Z: -1}
	n := r3.Vec{X: 0, Y: 0, Z: 1}
	got := reflect(i, n)
	want := r3.Vec{X: 0, Y: 0, Z: 1}
	if !got.IsClose(want, 1e-9) {
		t.Errorf("reflect(%v, %v) = %v, want %v", i, n, got, want)
	}
}
