// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"math"

	"lajolla/r3"
)

// DebugUV visualizes the UV coordinates as colors: U -> red, V -> green,
// blue fixed at 0.5 for visibility. An unlit diagnostic material.
type DebugUV struct{}

func (m DebugUV) Validate() error {
	return nil
}

func (m DebugUV) Emission(vtx *Vertex) Spectrum {
	if vtx.UV.X < 0 || vtx.UV.X > 1 || vtx.UV.Y < 0 || vtx.UV.Y > 1 {
		return Spectrum{X: 1, Y: 0, Z: 0}
	}
	u := math.Min(math.Max(vtx.UV.X, 0), 1)
	v := math.Min(math.Max(vtx.UV.Y, 0), 1)
	return Spectrum{X: u, Y: v, Z: 0.5}
}

func (m DebugUV) Eval(wi, wo r3.Vec, vtx *Vertex) Spectrum {
	return ZeroSpectrum
}

func (m DebugUV) Pdf(wi, wo r3.Vec, vtx *Vertex) float64 {
	return 0
}

func (m DebugUV) Sample(wi r3.Vec, vtx *Vertex, rnd *Rand) (BSDFSample, bool) {
	return BSDFSample{}, false
}

func init() {
	RegisterInterfaceType(DebugUV{})
}
