// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"encoding/json"
	"fmt"

	"lajolla/r3"
)

func init() {
	RegisterInterfaceType(DisneyMaterial{})
}

// DisneyMaterial is the five-lobe principled BSDF: a weighted mixture of
// diffuse, sheen, metal, clearcoat, and glass, selected and combined per
// Burley, "Physically Based Shading at Disney", and grounded on
// disney_bsdf.inl's eval/pdf/sample mixer. When the incoming ray arrives
// from inside the surface, the material delegates entirely to the glass
// lobe, since nothing else can be seen from below a dielectric boundary.
type DisneyMaterial struct {
	BaseColor            Texture
	Roughness            ScalarTexture
	Anisotropic          ScalarTexture
	Metallic             ScalarTexture
	Specular             ScalarTexture
	SpecularTint         ScalarTexture
	Sheen                ScalarTexture
	SheenTint            ScalarTexture
	Subsurface           ScalarTexture
	Clearcoat            ScalarTexture
	ClearcoatGloss       ScalarTexture
	SpecularTransmission ScalarTexture
	Eta                  float64
}

func (m DisneyMaterial) Validate() error {
	if m.BaseColor == nil {
		return fmt.Errorf("DisneyMaterial: missing BaseColor")
	}
	if m.Eta <= 0 {
		return fmt.Errorf("DisneyMaterial: Eta must be positive, got %v", m.Eta)
	}
	for name, tex := range map[string]ScalarTexture{
		"Roughness": m.Roughness, "Anisotropic": m.Anisotropic, "Metallic": m.Metallic,
		"Specular": m.Specular, "SpecularTint": m.SpecularTint, "Sheen": m.Sheen,
		"SheenTint": m.SheenTint, "Subsurface": m.Subsurface, "Clearcoat": m.Clearcoat,
		"ClearcoatGloss": m.ClearcoatGloss, "SpecularTransmission": m.SpecularTransmission,
	} {
		if tex == nil {
			return fmt.Errorf("DisneyMaterial: missing %s", name)
		}
	}
	return nil
}

func (m DisneyMaterial) Emission(vtx *Vertex) Spectrum {
	return ZeroSpectrum
}

// disneyWeights is the set of scalar parameters evaluated once per shading
// query at the vertex's uv, used by Eval/Pdf/Sample alike.
type disneyWeights struct {
	baseColor  Spectrum
	roughness  float64
	aniso      float64
	metallic   float64
	specular   float64
	specTint   float64
	sheen      float64
	sheenTint  float64
	subsurface float64
	clearcoat  float64
	ccGloss    float64
	specTrans  float64
}

func (m DisneyMaterial) resolve(vtx *Vertex) disneyWeights {
	u, v := vtx.UV.X, vtx.UV.Y
	return disneyWeights{
		baseColor:  evalTexture(m.BaseColor, vtx),
		roughness:  m.Roughness.At(u, v),
		aniso:      m.Anisotropic.At(u, v),
		metallic:   m.Metallic.At(u, v),
		specular:   m.Specular.At(u, v),
		specTint:   m.SpecularTint.At(u, v),
		sheen:      m.Sheen.At(u, v),
		sheenTint:  m.SheenTint.At(u, v),
		subsurface: m.Subsurface.At(u, v),
		clearcoat:  m.Clearcoat.At(u, v),
		ccGloss:    m.ClearcoatGloss.At(u, v),
		specTrans:  m.SpecularTransmission.At(u, v),
	}
}

func (m DisneyMaterial) lobes(w disneyWeights) (diffuseLobe, sheenLobe, metalLobe, clearcoatLobe, glassLobe) {
	return diffuseLobe{baseColor: w.baseColor, roughness: w.roughness, subsurface: w.subsurface},
		sheenLobe{baseColor: w.baseColor, sheenTint: w.sheenTint},
		metalLobe{
			baseColor: w.baseColor, roughness: w.roughness, anisotropic: w.aniso,
			specular: w.specular, specularTint: w.specTint, metallic: w.metallic, eta: m.Eta,
		},
		clearcoatLobe{gloss: w.ccGloss},
		glassLobe{baseColor: w.baseColor, roughness: w.roughness, anisotropic: w.aniso, eta: m.Eta}
}

func (m DisneyMaterial) glassOnly(w disneyWeights) glassLobe {
	return glassLobe{baseColor: w.baseColor, roughness: w.roughness, anisotropic: w.aniso, eta: m.Eta}
}

func (m DisneyMaterial) Eval(wi, wo r3.Vec, vtx *Vertex) Spectrum {
	frame := flipToGeometric(vtx.ShadingFrame, vtx.GeometricNormal, wi)
	w := m.resolve(vtx)
	inside := vtx.GeometricNormal.Dot(wi) < 0
	if inside {
		return m.glassOnly(w).eval(wi, wo, frame, vtx.GeometricNormal)
	}
	diffuse, sheen, metal, clearcoat, glass := m.lobes(w)
	wDiffuse := (1 - w.specTrans) * (1 - w.metallic)
	wSheen := (1 - w.metallic) * w.sheen
	wMetal := 1 - w.specTrans*(1-w.metallic)
	wClearcoat := 0.25 * w.clearcoat
	wGlass := (1 - w.metallic) * w.specTrans

	fDiffuse := diffuse.eval(wi, wo, frame, vtx.GeometricNormal)
	fSheen := sheen.eval(wi, wo, frame, vtx.GeometricNormal)
	fMetal := metal.eval(wi, wo, frame, vtx.GeometricNormal)
	fClearcoat := clearcoat.eval(wi, wo, frame, vtx.GeometricNormal)
	fGlass := glass.eval(wi, wo, frame, vtx.GeometricNormal)

	return fDiffuse.Muls(wDiffuse).
		Add(fSheen.Muls(wSheen)).
		Add(fMetal.Muls(wMetal)).
		Add(fClearcoat.Muls(wClearcoat)).
		Add(fGlass.Muls(wGlass))
}

func (m DisneyMaterial) Pdf(wi, wo r3.Vec, vtx *Vertex) float64 {
	frame := flipToGeometric(vtx.ShadingFrame, vtx.GeometricNormal, wi)
	w := m.resolve(vtx)
	inside := vtx.GeometricNormal.Dot(wi) < 0
	if inside {
		return m.glassOnly(w).pdf(wi, wo, frame, vtx.GeometricNormal)
	}
	diffuse, _, metal, clearcoat, glass := m.lobes(w)
	wD := (1 - w.specTrans) * (1 - w.metallic)
	wM := 1 - w.specTrans*(1-w.metallic)
	wC := 0.25 * w.clearcoat
	wG := (1 - w.metallic) * w.specTrans
	sumW := wD + wM + wC + wG
	if sumW < 0.05 {
		return 0
	}
	pdfD := diffuse.pdf(wi, wo, frame, vtx.GeometricNormal)
	pdfM := metal.pdf(wi, wo, frame, vtx.GeometricNormal)
	pdfC := clearcoat.pdf(wi, wo, frame, vtx.GeometricNormal)
	pdfG := glass.pdf(wi, wo, frame, vtx.GeometricNormal)
	return (wD*pdfD + wM*pdfM + wC*pdfC + wG*pdfG) / sumW
}

func (m DisneyMaterial) Sample(wi r3.Vec, vtx *Vertex, rnd *Rand) (BSDFSample, bool) {
	frame := flipToGeometric(vtx.ShadingFrame, vtx.GeometricNormal, wi)
	w := m.resolve(vtx)
	inside := vtx.GeometricNormal.Dot(wi) < 0
	if inside {
		return m.glassOnly(w).sample(wi, frame, vtx.GeometricNormal, rnd)
	}
	diffuse, _, metal, clearcoat, glass := m.lobes(w)
	wD := (1 - w.specTrans) * (1 - w.metallic)
	wM := 1 - w.specTrans*(1-w.metallic)
	wC := 0.25 * w.clearcoat
	wG := (1 - w.metallic) * w.specTrans
	sumW := wD + wM + wC + wG
	if sumW < 0.05 {
		return BSDFSample{}, false
	}

	xi := rnd.Float64() * sumW
	if xi < wD {
		return diffuse.sample(wi, frame, vtx.GeometricNormal, rnd)
	}
	xi -= wD
	if xi < wM {
		return metal.sample(wi, frame, vtx.GeometricNormal, rnd)
	}
	xi -= wM
	if xi < wC {
		return clearcoat.sample(wi, frame, vtx.GeometricNormal, rnd)
	}
	return glass.sample(wi, frame, vtx.GeometricNormal, rnd)
}

// MarshalJSON encodes a DisneyMaterial as JSON using the shared interface
// registry for its Texture/ScalarTexture fields.
func (m DisneyMaterial) MarshalJSON() ([]byte, error) {
	marshal := func(i interface{ Validate() error }) (json.RawMessage, error) {
		return marshalInterface(i)
	}
	baseColor, err := marshal(m.BaseColor)
	if err != nil {
		return nil, err
	}
	fields := map[string]ScalarTexture{
		"Roughness": m.Roughness, "Anisotropic": m.Anisotropic, "Metallic": m.Metallic,
		"Specular": m.Specular, "SpecularTint": m.SpecularTint, "Sheen": m.Sheen,
		"SheenTint": m.SheenTint, "Subsurface": m.Subsurface, "Clearcoat": m.Clearcoat,
		"ClearcoatGloss": m.ClearcoatGloss, "SpecularTransmission": m.SpecularTransmission,
	}
	encoded := map[string]json.RawMessage{}
	for name, tex := range fields {
		raw, err := marshal(tex)
		if err != nil {
			return nil, err
		}
		encoded[name] = raw
	}
	wrapped := map[string]interface{}{
		"Type":      "DisneyMaterial",
		"BaseColor": baseColor,
		"Scalars":   encoded,
		"Eta":       m.Eta,
	}
	return json.Marshal(wrapped)
}

func (m *DisneyMaterial) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type      string                     `json:"Type"`
		BaseColor json.RawMessage            `json:"BaseColor"`
		Scalars   map[string]json.RawMessage `json:"Scalars"`
		Eta       float64                    `json:"Eta"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Type != "DisneyMaterial" {
		return fmt.Errorf("invalid type: expected DisneyMaterial, got %s", temp.Type)
	}
	baseColor, err := unmarshalInterface(temp.BaseColor)
	if err != nil {
		return err
	}
	m.BaseColor = baseColor.(Texture)
	get := func(name string) (ScalarTexture, error) {
		raw, ok := temp.Scalars[name]
		if !ok {
			return nil, fmt.Errorf("DisneyMaterial: missing scalar field %s", name)
		}
		iface, err := unmarshalInterface(raw)
		if err != nil {
			return nil, err
		}
		return iface.(ScalarTexture), nil
	}
	for name, dst := range map[string]*ScalarTexture{
		"Roughness": &m.Roughness, "Anisotropic": &m.Anisotropic, "Metallic": &m.Metallic,
		"Specular": &m.Specular, "SpecularTint": &m.SpecularTint, "Sheen": &m.Sheen,
		"SheenTint": &m.SheenTint, "Subsurface": &m.Subsurface, "Clearcoat": &m.Clearcoat,
		"ClearcoatGloss": &m.ClearcoatGloss, "SpecularTransmission": &m.SpecularTransmission,
	} {
		tex, err := get(name)
		if err != nil {
			return err
		}
		*dst = tex
	}
	m.Eta = temp.Eta
	return nil
}
