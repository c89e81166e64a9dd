// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"math"

	"lajolla/r3"
)

// Frame is a local orthonormal basis (tangent, bitangent, normal) used to
// convert between world-space and shading-local directions.
type Frame struct {
	T r3.Vec
	B r3.Vec
	N r3.Vec
}

// NewFrame builds an orthonormal frame whose N axis is n, following the
// branch-free construction from Duff et al., "Building an Orthonormal
// Basis, Revisited".
func NewFrame(n r3.Vec) Frame {
	sign := math.Copysign(1, n.Z)
	a := -1.0 / (sign + n.Z)
	b := n.X * n.Y * a
	t := r3.Vec{X: 1 + sign*n.X*n.X*a, Y: sign * b, Z: -sign * n.X}
	bt := r3.Vec{X: b, Y: sign + n.Y*n.Y*a, Z: -n.Y}
	return Frame{T: t, B: bt, N: n}
}

// ToLocal projects a world-space vector into this frame's local basis.
func (f Frame) ToLocal(v r3.Vec) r3.Vec {
	return r3.Vec{X: v.Dot(f.T), Y: v.Dot(f.B), Z: v.Dot(f.N)}
}

// ToWorld lifts a local-space vector (expressed in this frame's basis)
// back into world space.
func (f Frame) ToWorld(v r3.Vec) r3.Vec {
	return f.T.Muls(v.X).Add(f.B.Muls(v.Y)).Add(f.N.Muls(v.Z))
}

// Flip negates every axis of the frame, used when the shading normal and
// geometric normal disagree about which side of the surface a direction
// is on.
func (f Frame) Flip() Frame {
	return Frame{T: f.T.Muls(-1), B: f.B.Muls(-1), N: f.N.Muls(-1)}
}
