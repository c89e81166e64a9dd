// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"encoding/json"
	"fmt"

	"lajolla/r3"
)

// Emitter is a purely emissive surface material: an area light. It has no
// BSDF of its own; the path integrator adds its Emission whenever a ray
// lands on it and terminates the reflective contribution there.
type Emitter struct {
	Texture Texture
}

func (m Emitter) Validate() error {
	return m.Texture.Validate()
}

func (m Emitter) Emission(vtx *Vertex) Spectrum {
	return evalTexture(m.Texture, vtx)
}

func (m Emitter) Eval(wi, wo r3.Vec, vtx *Vertex) Spectrum {
	return ZeroSpectrum
}

func (m Emitter) Pdf(wi, wo r3.Vec, vtx *Vertex) float64 {
	return 0
}

func (m Emitter) Sample(wi r3.Vec, vtx *Vertex, rnd *Rand) (BSDFSample, bool) {
	return BSDFSample{}, false
}

// MarshalJSON implements custom JSON marshalling for Emitter.
func (e *Emitter) MarshalJSON() ([]byte, error) {
	type EmitterData struct {
		Type    string          `json:"Type"`
		Texture json.RawMessage `json:"Texture"`
	}
	textureData, err := marshalInterface(e.Texture)
	if err != nil {
		return nil, err
	}
	data := EmitterData{
		Type:    "Emitter",
		Texture: textureData,
	}
	return json.Marshal(data)
}

// UnmarshalJSON implements custom JSON unmarshalling for Emitter.
func (e *Emitter) UnmarshalJSON(data []byte) error {
	type EmitterData struct {
		Type    string          `json:"Type"`
		Texture json.RawMessage `json:"Texture"`
	}
	var temp EmitterData
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Type != "Emitter" {
		return fmt.Errorf("invalid type: expected Emitter, got %s", temp.Type)
	}
	texture, err := unmarshalInterface(temp.Texture)
	if err != nil {
		return err
	}
	e.Texture = texture.(Texture)
	return nil
}

func init() {
	RegisterInterfaceType(Emitter{})
}
