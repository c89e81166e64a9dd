// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"context"
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lajolla/r3"
)

// derefCamera unwraps a pointer Camera, since unmarshalInterface always
// hands back a pointer to the registered type regardless of how it was
// registered.
func derefCamera(c Camera) Camera {
	v := reflect.ValueOf(c)
	if v.Kind() == reflect.Ptr {
		return v.Elem().Interface().(Camera)
	}
	return c
}

func TestOrthographicCameraCastProducesParallelRays(t *testing.T) {
	cam := OrthographicCamera{
		LookFrom:  r3.Point{X: 0, Y: 0, Z: 0},
		LookAt:    r3.Point{X: 0, Y: 0, Z: 1},
		VUp:       r3.Vec{X: 0, Y: 1, Z: 0},
		FOVHeight: 2,
		FOVWidth:  2,
	}
	require.NoError(t, cam.Validate())

	rand := NewRand(1)
	corner := cam.Cast(0, 0, rand)
	center := cam.Cast(0.5, 0.5, rand)
	opposite := cam.Cast(1, 1, rand)

	// Orthographic projection: direction is the same for every sample,
	// only the origin moves across the image plane.
	assert.InDelta(t, 0, corner.direction.Sub(center.direction).Length(), 1e-9)
	assert.InDelta(t, 0, corner.direction.Sub(opposite.direction).Length(), 1e-9)
	assert.Greater(t, corner.origin.Sub(center.origin).Length(), 0.0)
}

func TestOrthographicCameraValidateRejectsDegenerateFrames(t *testing.T) {
	base := OrthographicCamera{
		LookFrom:  r3.Point{X: 0, Y: 0, Z: 0},
		LookAt:    r3.Point{X: 0, Y: 0, Z: 1},
		VUp:       r3.Vec{X: 0, Y: 1, Z: 0},
		FOVHeight: 2,
		FOVWidth:  2,
	}
	assert.NoError(t, base.Validate())

	zeroFOV := base
	zeroFOV.FOVHeight = 0
	assert.Error(t, zeroFOV.Validate())

	samePoint := base
	samePoint.LookAt = samePoint.LookFrom
	assert.Error(t, samePoint.Validate())

	zeroUp := base
	zeroUp.VUp = r3.Vec{}
	assert.Error(t, zeroUp.Validate())
}

// TestCalibratedCameraZeroDistortionMatchesPinholeDirection checks that a
// CalibratedCamera with all distortion coefficients zero reduces to a plain
// perspective projection: with the camera at the origin looking down -Z
// (an identity basis), the cast direction equals the ideal pinhole
// direction (x, -y, -1) for the pixel.
func TestCalibratedCameraZeroDistortionMatchesPinholeDirection(t *testing.T) {
	width, height := 100, 100
	fx, fy := 100.0, 100.0
	cx, cy := 50.0, 50.0

	cam := CalibratedCamera{
		Intrinsics: CameraIntrinsics{Width: width, Height: height, Fx: fx, Fy: fy, Cx: cx, Cy: cy},
		Extrinsics: CameraExtrinsics{
			LookFrom: r3.Point{X: 0, Y: 0, Z: 0},
			LookAt:   r3.Point{X: 0, Y: 0, Z: -1},
			VUp:      r3.Vec{X: 0, Y: 1, Z: 0},
		},
	}
	require.NoError(t, cam.Validate())

	rand := NewRand(1)
	s, tSample := 0.7, 0.3
	got := cam.Cast(s, tSample, rand)

	uPix := s * float64(width)
	vPix := tSample * float64(height)
	x := (uPix - cx) / fx
	y := (vPix - cy) / fy
	want := r3.Vec{X: x, Y: -y, Z: -1}.Unit()

	assert.InDelta(t, 0, got.direction.Sub(want).Length(), 1e-9,
		"zero-distortion CalibratedCamera should reduce to a plain perspective projection")
}

func TestCalibratedCameraValidateRejectsBadIntrinsics(t *testing.T) {
	good := CalibratedCamera{
		Intrinsics: CameraIntrinsics{Width: 100, Height: 100, Fx: 100, Fy: 100, Cx: 50, Cy: 50},
		Extrinsics: CameraExtrinsics{
			LookFrom: r3.Point{X: 0, Y: 0, Z: 0},
			LookAt:   r3.Point{X: 0, Y: 0, Z: 1},
			VUp:      r3.Vec{X: 0, Y: 1, Z: 0},
		},
	}
	require.NoError(t, good.Validate())

	badFocal := good
	badFocal.Intrinsics.Fx = 0
	assert.Error(t, badFocal.Validate())

	badPose := good
	badPose.Extrinsics.LookAt = badPose.Extrinsics.LookFrom
	assert.Error(t, badPose.Validate())
}

func TestCameraIntrinsicsUndistortNormalizedConvergesForSmallRadialDistortion(t *testing.T) {
	ci := CameraIntrinsics{Width: 100, Height: 100, Fx: 100, Fy: 100, Cx: 50, Cy: 50, K1: -0.1, K2: 0.02}
	const xWant, yWant = 0.2, -0.15
	r2 := xWant*xWant + yWant*yWant
	radial := 1 + ci.K1*r2 + ci.K2*r2*r2
	xd, yd := xWant*radial, yWant*radial

	x, y := ci.undistortNormalized(xd, yd)
	assert.InDelta(t, xWant, x, 1e-6)
	assert.InDelta(t, yWant, y, 1e-6)
}

// TestRenderAbsorbingSlabWithOrthographicCamera re-runs the S2 Beer-Lambert
// end-to-end scenario with an OrthographicCamera in scene.Camera[0] instead
// of the PinholeCamera, confirming the render pipeline drives any Camera
// implementation identically through the scene/render path.
func TestRenderAbsorbingSlabWithOrthographicCamera(t *testing.T) {
	const sigmaA = 1.0
	const l = 1.0

	scene := &Scene{
		Camera: []Camera{OrthographicCamera{
			LookFrom:  r3.Point{X: 0, Y: 0, Z: 0},
			LookAt:    r3.Point{X: 0, Y: 0, Z: 1},
			VUp:       r3.Vec{X: 0, Y: 1, Z: 0},
			FOVHeight: 0.01,
			FOVWidth:  0.01,
		}},
		Node: []Node{{
			Name:       "emitter",
			Shape:      Sphere{Center: r3.Point{X: 0, Y: 0, Z: l + 1}, Radius: 1},
			Material:   Emitter{Texture: TextureUniform{Color: White}},
			MaterialID: 0,
		}},
		Medium: []MediumSampler{HomogeneousMedium{
			SigmaAValue: Spectrum{X: sigmaA, Y: sigmaA, Z: sigmaA},
			SigmaSValue: ZeroSpectrum,
			GValue:      0,
		}},
		CameraMediumID: 0,
		RenderOptions: RenderOptions{
			Seed: 1, RaysPerPixel: 2000, MaxRayDepth: 50, RRDepth: 4, Dx: 1, Dy: 1,
		},
	}
	require.NoError(t, scene.Validate())

	artifact, err := Render(context.Background(), scene, 2)
	require.NoError(t, err)

	px := artifact.Image.RGBAAt(0, 0)
	want := math.Exp(-sigmaA*l) * 255.99
	assert.InDelta(t, want, float64(px.R), 12, "red channel should match Beer-Lambert transmittance")
	assert.InDelta(t, want, float64(px.G), 12)
	assert.InDelta(t, want, float64(px.B), 12)
}

// TestSceneCameraJSONRoundTripThroughTypeRegistry exercises the
// RegisterInterfaceType/marshalInterface/unmarshalInterface path for all
// three camera types, confirming self-registration actually round-trips a
// Scene's camera list through JSON rather than sitting unused.
func TestSceneCameraJSONRoundTripThroughTypeRegistry(t *testing.T) {
	for _, cam := range []Camera{
		PinholeCamera{
			Origin:          r3.Point{X: 0, Y: 0, Z: 0},
			LowerLeftCorner: r3.Point{X: -0.5, Y: -0.5, Z: 1},
			Horizontal:      r3.Vec{X: 1, Y: 0, Z: 0},
			Vertical:        r3.Vec{X: 0, Y: 1, Z: 0},
		},
		OrthographicCamera{
			LookFrom:  r3.Point{X: 0, Y: 0, Z: 0},
			LookAt:    r3.Point{X: 0, Y: 0, Z: 1},
			VUp:       r3.Vec{X: 0, Y: 1, Z: 0},
			FOVHeight: 2,
			FOVWidth:  2,
		},
		CalibratedCamera{
			Intrinsics: CameraIntrinsics{Width: 100, Height: 100, Fx: 100, Fy: 100, Cx: 50, Cy: 50},
			Extrinsics: CameraExtrinsics{
				LookFrom: r3.Point{X: 0, Y: 0, Z: 0},
				LookAt:   r3.Point{X: 0, Y: 0, Z: 1},
				VUp:      r3.Vec{X: 0, Y: 1, Z: 0},
			},
		},
	} {
		scene := &Scene{
			Camera:         []Camera{cam},
			Medium:         []MediumSampler{},
			CameraMediumID: -1,
			RenderOptions:  RenderOptions{Seed: 1, RaysPerPixel: 1, MaxRayDepth: 1, Dx: 1, Dy: 1},
		}
		data, err := json.Marshal(scene)
		require.NoError(t, err)

		var roundTripped Scene
		require.NoError(t, json.Unmarshal(data, &roundTripped))
		require.Len(t, roundTripped.Camera, 1)
		assert.Equal(t, cam, derefCamera(roundTripped.Camera[0]))
	}
}
