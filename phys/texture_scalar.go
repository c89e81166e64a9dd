// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.
package phys

import (
	"encoding/json"
	"fmt"
)

// ScalarTexture is the single-channel counterpart of Texture, used for the
// Disney material's roughness, metallic, specular, sheen, clearcoat, and
// transmission parameters.
type ScalarTexture interface {
	At(u, v float64) float64
	Validate() error
}

func init() {
	RegisterInterfaceType(ScalarUniform{})
}

// ScalarUniform is a spatially constant ScalarTexture.
type ScalarUniform struct {
	Value float64
}

func (s ScalarUniform) At(u, v float64) float64 {
	return s.Value
}

func (s ScalarUniform) Validate() error {
	return nil
}

func (s ScalarUniform) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string  `json:"Type"`
		Value float64 `json:"Value"`
	}{Type: "ScalarUniform", Value: s.Value})
}

func (s *ScalarUniform) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type  string  `json:"Type"`
		Value float64 `json:"Value"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Type != "ScalarUniform" {
		return fmt.Errorf("invalid type: expected ScalarUniform, got %s", temp.Type)
	}
	s.Value = temp.Value
	return nil
}

// Scalar is a convenience constructor for a constant ScalarTexture.
func Scalar(v float64) ScalarUniform {
	return ScalarUniform{Value: v}
}
