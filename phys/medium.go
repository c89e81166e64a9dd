// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"lajolla/r3"
)

// MediumSampler exposes the per-point absorption and scattering
// coefficients of a participating medium along with its phase function
// anisotropy. The path integrator queries it generically by world-space
// point, so a heterogeneous medium can be swapped in for a homogeneous
// one without touching the integrator itself.
type MediumSampler interface {
	// SigmaA returns the absorption coefficient at p, one value per channel.
	SigmaA(p r3.Point) Spectrum
	// SigmaS returns the scattering coefficient at p, one value per channel.
	SigmaS(p r3.Point) Spectrum
	// MajorantSigmaT bounds sigmaA+sigmaS over the whole medium. The path
	// integrator does not call it; its distance sampling uses SigmaA+SigmaS
	// at the segment origin.
	MajorantSigmaT() float64
	// G is the Henyey-Greenstein asymmetry parameter, in (-1, 1).
	G() float64
	Validate() error
}

// henyeyGreenstein evaluates the normalized HG phase function for the
// angle between wo and wi, both pointing away from the scattering point.
func henyeyGreenstein(cosTheta, g float64) float64 {
	denom := 1 + g*g + 2*g*cosTheta
	return (1 - g*g) / (4 * math.Pi * denom * math.Sqrt(math.Max(denom, 1e-12)))
}

// phaseHG evaluates p(wo, wi) for the convention that wi is the incoming
// direction (pointing toward the scattering point) and wo is outgoing
// (pointing away from it); cosTheta is measured between -wi and wo, both
// pointing away from the scattering point, so straight-line travel is
// cosTheta = -1 and the deviation angle is the supplement of that angle.
func phaseHG(wi, wo r3.Vec, g float64) float64 {
	cosTheta := wi.Muls(-1).Unit().Dot(wo.Unit())
	return henyeyGreenstein(cosTheta, g)
}

// samplePhaseHG importance samples the HG phase function about the
// incoming direction wi, returning a new outgoing direction and the pdf
// (equal to the phase value itself, since HG integrates to one).
func samplePhaseHG(wi r3.Vec, g float64, rnd *Rand) (r3.Vec, float64) {
	u1, u2 := rnd.Float64(), rnd.Float64()
	var cosTheta float64
	if math.Abs(g) < 1e-3 {
		cosTheta = 1 - 2*u1
	} else {
		sqrTerm := (1 - g*g) / (1 + g - 2*g*u1)
		cosTheta = -(1 + g*g - sqrTerm*sqrTerm) / (2 * g)
	}
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u2
	frame := NewFrame(wi.Muls(-1).Unit())
	local := r3.Vec{X: sinTheta * math.Cos(phi), Y: sinTheta * math.Sin(phi), Z: cosTheta}
	dir := frame.ToWorld(local)
	return dir, henyeyGreenstein(cosTheta, g)
}

// HomogeneousMedium is a participating medium with constant absorption
// and scattering coefficients, the simplest case the integrator's single-
// and multi-scatter variants are built and verified against.
type HomogeneousMedium struct {
	SigmaAValue Spectrum
	SigmaSValue Spectrum
	GValue      float64
}

func (m HomogeneousMedium) SigmaA(p r3.Point) Spectrum { return m.SigmaAValue }
func (m HomogeneousMedium) SigmaS(p r3.Point) Spectrum { return m.SigmaSValue }

func (m HomogeneousMedium) MajorantSigmaT() float64 {
	t := m.SigmaAValue.Add(m.SigmaSValue)
	return t.MaxComponent()
}

func (m HomogeneousMedium) G() float64 { return m.GValue }

func (m HomogeneousMedium) Validate() error {
	if m.SigmaAValue.X < 0 || m.SigmaAValue.Y < 0 || m.SigmaAValue.Z < 0 {
		return fmt.Errorf("HomogeneousMedium: SigmaA must be non-negative, got %v", m.SigmaAValue)
	}
	if m.SigmaSValue.X < 0 || m.SigmaSValue.Y < 0 || m.SigmaSValue.Z < 0 {
		return fmt.Errorf("HomogeneousMedium: SigmaS must be non-negative, got %v", m.SigmaSValue)
	}
	if m.GValue <= -1 || m.GValue >= 1 {
		return fmt.Errorf("HomogeneousMedium: G must be in (-1, 1), got %v", m.GValue)
	}
	return nil
}

func init() {
	RegisterInterfaceType(HomogeneousMedium{})
}

// HeterogeneousMedium models smoke- and fog-like density variation with a
// Perlin noise field modulating a homogeneous base density. It is a
// declared extension point rather than a fully tuned production medium:
// the integrator only ever calls SigmaA/SigmaS/G, so swapping this in for
// HomogeneousMedium requires no integrator change. The integrator samples
// distance from the coefficients at each segment's origin and does no
// delta tracking against MajorantSigmaT, so density variation along a
// segment is not accounted for.
type HeterogeneousMedium struct {
	BaseSigmaA Spectrum
	BaseSigmaS Spectrum
	GValue     float64
	// Frequency scales world-space coordinates before noise lookup; higher
	// values produce finer density detail.
	Frequency float64
	// Octaves is the number of summed Perlin octaves (go-perlin's n).
	Octaves int32
	// Seed initializes the noise generator deterministically.
	Seed int64

	noise *perlin.Perlin
}

// noiseGen lazily builds the underlying go-perlin generator, since Perlin
// itself is not JSON-serializable and must be reconstructed from the
// scene-authored seed.
func (m *HeterogeneousMedium) noiseGen() *perlin.Perlin {
	if m.noise == nil {
		m.noise = perlin.NewPerlin(2, 2, m.Octaves, m.Seed)
	}
	return m.noise
}

// density evaluates the local density multiplier in [0, 1], remapping
// go-perlin's [-1, 1] noise output.
func (m *HeterogeneousMedium) density(p r3.Point) float64 {
	n := m.noiseGen().Noise3D(p.X*m.Frequency, p.Y*m.Frequency, p.Z*m.Frequency)
	return math.Max(0, math.Min(1, 0.5*(n+1)))
}

func (m *HeterogeneousMedium) SigmaA(p r3.Point) Spectrum {
	return m.BaseSigmaA.Muls(m.density(p))
}

func (m *HeterogeneousMedium) SigmaS(p r3.Point) Spectrum {
	return m.BaseSigmaS.Muls(m.density(p))
}

func (m *HeterogeneousMedium) MajorantSigmaT() float64 {
	return m.BaseSigmaA.Add(m.BaseSigmaS).MaxComponent()
}

func (m *HeterogeneousMedium) G() float64 { return m.GValue }

func (m *HeterogeneousMedium) Validate() error {
	if m.Frequency <= 0 {
		return fmt.Errorf("HeterogeneousMedium: Frequency must be positive, got %v", m.Frequency)
	}
	if m.Octaves <= 0 {
		return fmt.Errorf("HeterogeneousMedium: Octaves must be positive, got %v", m.Octaves)
	}
	if m.GValue <= -1 || m.GValue >= 1 {
		return fmt.Errorf("HeterogeneousMedium: G must be in (-1, 1), got %v", m.GValue)
	}
	return nil
}

func init() {
	RegisterInterfaceType(&HeterogeneousMedium{})
}
