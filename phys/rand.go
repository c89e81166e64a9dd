// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"lajolla/r3"
)

// Rand is a PCG32 random number generator, per O'Neill, "PCG: A Family of
// Simple Fast Space-Efficient Statistically Good Algorithms for Random
// Number Generation" (2014). Render seeds one stream per scanline of each
// tile from the scene seed and the scanline's first pixel, so a render is
// reproducible regardless of how tiles are scheduled across worker
// goroutines; all samples of all pixels on that scanline segment draw from
// the same stream. Render does not use per-sample streams.
type Rand struct {
	state uint64
	inc   uint64
}

const pcg32Multiplier uint64 = 6364136223846793005

// NewRand creates a PCG32 stream from a 64-bit seed, always on the same
// fixed stream-selection sequence; streams differ only by seed.
func NewRand(seed int64) *Rand {
	return newRandPCG(uint64(seed), 0xda3e39cb94b95bdb)
}

func newRandPCG(initState, initSeq uint64) *Rand {
	r := &Rand{}
	r.inc = (initSeq << 1) | 1
	r.next()
	r.state += initState
	r.next()
	return r
}

// NewRandFromHash derives a PCG32 stream for one camera sample from its
// tile id, pixel coordinates, and sample index, so every sample in the
// image draws from an independent, reproducible sequence.
func NewRandFromHash(tileID, x, y, sampleIndex int) *Rand {
	h := hash64(uint64(tileID), uint64(x), uint64(y), uint64(sampleIndex))
	return newRandPCG(h, uint64(x)<<32|uint64(y))
}

// hash64 mixes four 64-bit lanes via splitmix64 rounds.
func hash64(a, b, c, d uint64) uint64 {
	mix := func(x uint64) uint64 {
		x += 0x9e3779b97f4a7c15
		x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
		x = (x ^ (x >> 27)) * 0x94d049bb133111eb
		return x ^ (x >> 31)
	}
	h := mix(a)
	h = mix(h ^ mix(b))
	h = mix(h ^ mix(c))
	h = mix(h ^ mix(d))
	return h
}

// next advances the PCG32 state and returns the next 32-bit output.
func (r *Rand) next() uint32 {
	old := r.state
	r.state = old*pcg32Multiplier + r.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Float64 returns a pseudo-random value in [0, 1).
func (r *Rand) Float64() float64 {
	return float64(r.next()) / float64(1<<32)
}

// Next2D returns two independent samples in [0, 1), the canonical input
// to a BSDF or light importance sampler.
func (r *Rand) Next2D() (float64, float64) {
	return r.Float64(), r.Float64()
}

// InUnitSphere returns a random vector uniformly distributed within a unit sphere.
// Useful for volumetric scattering and diffuse reflections.
// Length of the vector is guaranteed to be less than 1.
func (r *Rand) InUnitSphere() r3.Vec {
	for {
		p := r3.Vec{
			X: r.Float64(),
			Y: r.Float64(),
			Z: r.Float64(),
		}.Muls(2).Sub(r3.Vec{X: 1, Y: 1, Z: 1})
		if p.Length() < 1.0 {
			return p
		}
	}
}

// UnitVector returns a random unit vector uniformly distributed on the surface of a unit sphere.
func (r *Rand) UnitVector() r3.Vec {
	azimuth := r.Float64() * 2 * math.Pi
	z := r.Float64()*2 - 1
	radius := math.Sqrt(1 - z*z)
	return r3.Vec{
		X: radius * math.Cos(azimuth),
		Y: radius * math.Sin(azimuth),
		Z: z,
	}
}

// InUnitDisk returns a random vector inside a unit disk (circle) in the
// XY-plane centered at the origin, via rejection sampling.
func (r *Rand) InUnitDisk() r3.Vec {
	for {
		p := r3.Vec{
			X: r.Float64(),
			Y: r.Float64(),
			Z: 0,
		}.Muls(2).Sub(r3.Vec{X: 1, Y: 1, Z: 0})
		if p.Dot(p) < 1.0 {
			return p
		}
	}
}

// CosineWeightedHemisphere samples a random direction in the hemisphere
// with a cosine-weighted distribution, aligned to the provided normal.
func (r *Rand) CosineWeightedHemisphere(normal r3.Vec) r3.Vec {
	u1, u2 := r.Next2D()
	r1 := math.Sqrt(u1)
	theta := 2 * math.Pi * u2
	x := r1 * math.Cos(theta)
	y := r1 * math.Sin(theta)
	z := math.Sqrt(1 - u1)
	frame := NewFrame(normal)
	return frame.ToWorld(r3.Vec{X: x, Y: y, Z: z}).Unit()
}
