// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"math"

	"lajolla/r3"
)

// A microfacet model assumes the surface is composed of infinitely many
// little mirrors/glasses. The orientation distribution of the mirrors
// determines the amount of light reflected.
//
// We use the anisotropic Generalized Trowbridge-Reitz (GTR2) distribution
// proposed by Burley ("Physically Based Shading at Disney") as the normal
// distribution function for the metal and glass lobes, and the isotropic
// GTR1 (Berry) distribution for the clearcoat lobe.

const alphaMin = 0.0001

// schlickFresnel is Schlick's inexpensive Fresnel approximation.
func schlickFresnel(f0 r3.Vec, cosTheta float64) r3.Vec {
	c := math.Pow(math.Max(1-cosTheta, 0), 5)
	return f0.Add(r3.Vec{X: 1, Y: 1, Z: 1}.Sub(f0).Muls(c))
}

func schlickFresnelScalar(f0, cosTheta float64) float64 {
	c := math.Pow(math.Max(1-cosTheta, 0), 5)
	return f0 + (1-f0)*c
}

// fresnelDielectric2 is the full two-angle dielectric Fresnel equation.
// nDotI and nDotT are both non-negative cosines; eta = etaTransmitted/etaIncident.
func fresnelDielectric2(nDotI, nDotT, eta float64) float64 {
	rs := (nDotI - eta*nDotT) / (nDotI + eta*nDotT)
	rp := (eta*nDotI - nDotT) / (eta*nDotI + nDotT)
	return (rs*rs + rp*rp) / 2
}

// fresnelDielectric derives the transmission cosine from Snell's law and
// evaluates the full dielectric Fresnel equation, handling total internal
// reflection. nDotI may be negative; eta = etaTransmitted/etaIncident.
func fresnelDielectric(nDotI, eta float64) float64 {
	nDotTSq := 1 - (1-nDotI*nDotI)/(eta*eta)
	if nDotTSq < 0 {
		return 1 // total internal reflection
	}
	nDotT := math.Sqrt(nDotTSq)
	return fresnelDielectric2(math.Abs(nDotI), nDotT, eta)
}

// fresnelClearcoat is the fixed-eta=1.5 Schlick Fresnel used by the
// clearcoat lobe regardless of the material's own index of refraction.
func fresnelClearcoat(hDotOut float64) float64 {
	const eta = 1.5
	r0 := (eta - 1) / (eta + 1)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-math.Abs(hDotOut), 5)
}

// roughnessToAlpha converts the Disney roughness/anisotropic parameters
// into the GTR2 distribution's two tangent-space widths.
func roughnessToAlpha(roughness, anisotropic float64) (alphaX, alphaY float64) {
	aspect := math.Sqrt(1 - 0.9*anisotropic)
	a2 := roughness * roughness
	alphaX = math.Max(alphaMin, a2/aspect)
	alphaY = math.Max(alphaMin, a2*aspect)
	return
}

// ggxAniso is the anisotropic GTR2 (GGX) normal distribution evaluated at
// the local-space half-vector h.
func ggxAniso(h r3.Vec, alphaX, alphaY float64) float64 {
	t := h.X*h.X/(alphaX*alphaX) + h.Y*h.Y/(alphaY*alphaY) + h.Z*h.Z
	return 1 / (math.Pi * alphaX * alphaY * t * t)
}

// smithLambdaAniso is the anisotropic Smith masking auxiliary Lambda.
func smithLambdaAniso(v r3.Vec, alphaX, alphaY float64) float64 {
	ax2 := alphaX * alphaX
	ay2 := alphaY * alphaY
	return (-1 + math.Sqrt(1+(v.X*v.X*ax2+v.Y*v.Y*ay2)/(v.Z*v.Z))) / 2
}

// smithMaskingAniso is the anisotropic Smith masking-shadowing term G1 for
// a single direction.
func smithMaskingAniso(v r3.Vec, alphaX, alphaY float64) float64 {
	return 1 / (1 + smithLambdaAniso(v, alphaX, alphaY))
}

// sampleVisibleNormalsAniso draws a half-vector distributed according to
// the visible-normal distribution of an anisotropic GGX surface, following
// Heitz, "Sampling the GGX Distribution of Visible Normals" (2018).
func sampleVisibleNormalsAniso(wi r3.Vec, alphaX, alphaY float64, u1, u2 float64) r3.Vec {
	if wi.Z < 0 {
		neg := sampleVisibleNormalsAniso(wi.Muls(-1), alphaX, alphaY, u1, u2)
		return neg.Muls(-1)
	}
	hemiDirIn := r3.Vec{X: alphaX * wi.X, Y: alphaY * wi.Y, Z: wi.Z}.Unit()

	r := math.Sqrt(u1)
	phi := 2 * math.Pi * u2
	t1 := r * math.Cos(phi)
	t2 := r * math.Sin(phi)
	s := 0.5 * (1 + hemiDirIn.Z)
	t2 = (1-s)*math.Sqrt(math.Max(0, 1-t1*t1)) + s*t2

	diskN := r3.Vec{X: t1, Y: t2, Z: math.Sqrt(math.Max(0, 1-t1*t1-t2*t2))}

	hemiFrame := NewFrame(hemiDirIn)
	nHemi := hemiFrame.ToWorld(diskN)

	return r3.Vec{
		X: alphaX * nHemi.X,
		Y: alphaY * nHemi.Y,
		Z: math.Max(0, nHemi.Z),
	}.Unit()
}

// clearcoatAlpha maps the [0,1] clearcoat gloss parameter to the GTR1
// roughness used by its own (fixed) distribution.
func clearcoatAlpha(gloss float64) float64 {
	return (1-gloss)*0.1 + gloss*0.001
}

// clearcoatDistribution is the isotropic GTR1 (Berry) normal distribution,
// used only by the clearcoat lobe.
func clearcoatDistribution(h r3.Vec, alphaG float64) float64 {
	a2 := alphaG * alphaG
	denom := 1 + (a2-1)*h.Z*h.Z
	return (a2 - 1) / (math.Pi * math.Log(a2) * denom)
}

// clearcoatLambda is the clearcoat lobe's masking term, which fixes the
// effective roughness at 0.25 regardless of the gloss parameter.
func clearcoatLambda(v r3.Vec) float64 {
	rx := 0.25 * v.X
	ry := 0.25 * v.Y
	rr := (rx*rx + ry*ry) / (v.Z * v.Z)
	tmp := math.Sqrt(1 + rr)
	return (tmp - 1) * 0.5
}

func clearcoatMasking(v r3.Vec) float64 {
	return 1 / (1 + clearcoatLambda(v))
}

// sampleClearcoatHalfVector draws a half-vector from the clearcoat GTR1
// distribution.
func sampleClearcoatHalfVector(alpha, u1, u2 float64) r3.Vec {
	a2 := alpha * alpha
	powTerm := math.Pow(a2, 1-u1)
	cosTheta := math.Sqrt((1 - powTerm) / (1 - a2))
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))
	phi := 2 * math.Pi * u2
	return r3.Vec{X: sinTheta * math.Cos(phi), Y: sinTheta * math.Sin(phi), Z: cosTheta}
}

func reflect(i, m r3.Vec) r3.Vec {
	return i.Sub(m.Muls(2 * i.Dot(m)))
}
