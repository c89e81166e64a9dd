// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"math"

	"lajolla/r3"
)

// pathState carries everything the integrator's main loop threads through
// iterations: throughput and accumulated radiance, the medium the ray is
// currently travelling through, the bounce count, and the caches next
// event estimation needs to weight a directly-hit emitter against the
// direction that led to it.
type pathState struct {
	beta          Spectrum // path throughput so far
	radiance      Spectrum // accumulated estimate
	mediumID      int      // -1 means vacuum
	depth         int      // bounce count k
	neverScatter  bool     // true until the first real scattering event
	dirPdf        float64  // solid-angle pdf of the direction that reached the current vertex
	pNee          r3.Point // last point eligible for NEE (scatter point or surface hit)
	transPdfChain float64  // product of transmittance pdfs through index-matched crossings
}

func newPathState(mediumID int) *pathState {
	return &pathState{
		beta:          White,
		mediumID:      mediumID,
		neverScatter:  true,
		transPdfChain: 1,
	}
}

// powerHeuristic is the beta=2 MIS weight for pdfA's sampling strategy
// against a competing strategy with density pdfB, both measured in the
// same domain.
func powerHeuristic(pdfA, pdfB float64) float64 {
	a := pdfA * pdfA
	b := pdfB * pdfB
	if a+b == 0 {
		return 0
	}
	return a / (a + b)
}

// intersectScene finds the nearest Node a ray hits, returning the surface
// vertex built from the collision plus the Node (nil on a miss).
func intersectScene(scene *Scene, r ray) (Vertex, *Node, bool) {
	var nearest collision
	var nearestNode *Node
	minDist := Distance(math.MaxFloat64)
	hit := false
	for i := range scene.Node {
		node := &scene.Node[i]
		if h, c := node.Shape.Collide(r, eps, minDist); h && c.t < minDist {
			minDist = c.t
			nearest = c
			nearestNode = node
			hit = true
		}
	}
	if !hit {
		return Vertex{}, nil, false
	}
	vtx := Vertex{
		Position:        nearest.at,
		GeometricNormal: nearest.normal,
		ShadingFrame:    NewFrame(nearest.normal),
		UV:              nearest.uv,
		MaterialID:      nearestNode.MaterialID,
		InteriorMedium:  nearestNode.InteriorMedium,
		ExteriorMedium:  nearestNode.ExteriorMedium,
	}
	return vtx, nearestNode, true
}

// crossMediumBoundary returns the medium id a ray now travels through
// after passing through an index-matched interface, chosen by which side
// of the geometric normal the ray direction points toward.
func crossMediumBoundary(vtx Vertex, dir r3.Vec) int {
	if vtx.GeometricNormal.Dot(dir) < 0 {
		return vtx.InteriorMedium
	}
	return vtx.ExteriorMedium
}

// maxShadowChainDepth bounds how many index-matched interfaces a shadow
// ray may cross before NEE gives up and reports an occluded path, per the
// "missing medium on shadow ray" error kind.
const maxShadowChainDepth = 32

// shadowTransmittance walks a shadow ray from origin toward a light at
// distance maxDist, accumulating transmittance through homogeneous media
// and crossing any index-matched interfaces it meets. It returns false on
// opaque occlusion or when the crossing chain exceeds maxShadowChainDepth.
func shadowTransmittance(scene *Scene, origin r3.Point, dir r3.Vec, maxDist Distance, mediumID int) (Spectrum, bool) {
	trans := White
	remaining := maxDist
	o := origin
	for chain := 0; ; chain++ {
		if chain > maxShadowChainDepth {
			return ZeroSpectrum, false
		}
		r := ray{origin: o, direction: dir}
		vtx, node, hit := intersectScene(scene, r)
		segment := remaining
		if hit && vtx.Position.Sub(o).Length() < float64(remaining) {
			segment = Distance(vtx.Position.Sub(o).Length())
		} else {
			hit = false
		}
		if mediumID >= 0 {
			medium := scene.MediumAt(mediumID)
			sigmaT := medium.SigmaA(o).Add(medium.SigmaS(o))
			trans = trans.Mul(sigmaT.Muls(-float64(segment)).Exp())
		}
		if !hit {
			return trans, true
		}
		if node.MaterialID >= 0 {
			return ZeroSpectrum, false
		}
		mediumID = crossMediumBoundary(vtx, dir)
		o = vtx.Position.Add(dir.Muls(eps))
		remaining -= segment
		if remaining <= 0 {
			return trans, true
		}
	}
}
