// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"image/color"
	"math"

	"lajolla/r3"
)

// Spectrum represents a sampled spectrum of light with discrete bands.
// The spectrum is discretely sampled and stored as a slice of values.
// The underlying type may change as this type evolves.
// For convenience, has method to convert to color.Color for image display.
type Spectrum r3.Vec

// Add returns the sum of two spectra.
func (s Spectrum) Add(other Spectrum) Spectrum {
	return Spectrum(r3.Vec(s).Add(r3.Vec(other)))
}

// Mul returns the element-wise product of two spectra.
func (s Spectrum) Mul(other Spectrum) Spectrum {
	return Spectrum(r3.Vec(s).Mul(r3.Vec(other)))
}

// Muls returns the spectrum multiplied by a scalar.
func (s Spectrum) Muls(t float64) Spectrum {
	return Spectrum(r3.Vec(s).Muls(t))
}

// Divs returns the spectrum divided by a scalar.
func (s Spectrum) Divs(t float64) Spectrum {
	return Spectrum(r3.Vec(s).Divs(t))
}

// Clip returns the spectrum with each component clipped to the range [min, max].
func (s Spectrum) Clip(min, max float64) Spectrum {
	return Spectrum(r3.Vec(s).Clip(min, max))
}

// ToColor converts the spectrum to a color.Color.
func (s Spectrum) ToColor() color.Color {
	c := s.Clip(0, 1)
	return color.RGBA{
		R: uint8(c.X * 255),
		G: uint8(c.Y * 255),
		B: uint8(c.Z * 255),
		A: 255,
	}
}

// String returns a string representation of the spectrum.
func (s Spectrum) String() string {
	return r3.Vec(s).String()
}

// Sub returns the element-wise difference of two spectra.
func (s Spectrum) Sub(other Spectrum) Spectrum {
	return Spectrum(r3.Vec(s).Sub(r3.Vec(other)))
}

// Sqrt returns the element-wise square root of the spectrum. Negative
// components are treated as zero.
func (s Spectrum) Sqrt() Spectrum {
	return Spectrum{X: math.Sqrt(math.Max(0, s.X)), Y: math.Sqrt(math.Max(0, s.Y)), Z: math.Sqrt(math.Max(0, s.Z))}
}

// Exp returns the element-wise exponential of the spectrum, used to turn
// optical depth (sigma_t * distance) into transmittance.
func (s Spectrum) Exp() Spectrum {
	return Spectrum{X: math.Exp(s.X), Y: math.Exp(s.Y), Z: math.Exp(s.Z)}
}

// IsBlack reports whether every channel of the spectrum is exactly zero.
func (s Spectrum) IsBlack() bool {
	return s.X == 0 && s.Y == 0 && s.Z == 0
}

// Luminance returns the Rec. 709 relative luminance of the spectrum,
// treated as linear RGB.
func (s Spectrum) Luminance() float64 {
	return 0.2126*s.X + 0.7152*s.Y + 0.0722*s.Z
}

// MaxComponent returns the largest of the spectrum's three channels, used
// by Russian-roulette termination.
func (s Spectrum) MaxComponent() float64 {
	return math.Max(s.X, math.Max(s.Y, s.Z))
}

// White is an RGB spectrum of unit reflectance/transmittance on every
// channel.
var White = Spectrum{X: 1, Y: 1, Z: 1}

// ZeroSpectrum is the additive identity, used as the default "no
// contribution" return value throughout the renderer's error handling.
var ZeroSpectrum = Spectrum{}
