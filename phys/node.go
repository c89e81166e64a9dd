// Copyright 2024 Scott Lawson scottlawsonbc@gmail.com. All rights reserved.

package phys

import (
	"encoding/json"
	"fmt"
)

// Node represents a physical object in the scene.
// It combines a geometric shape with a material that interacts with light.
// MaterialID of -1 marks an index-matched interface: the shape only
// switches the active participating medium and contributes no BSDF.
type Node struct {
	Name            string
	Shape           Shape
	Material        Material
	MaterialID      int
	InteriorMedium  int
	ExteriorMedium  int
}

func (n Node) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("Node must have a name")
	}
	if n.Shape == nil {
		return fmt.Errorf("Node %q: missing Shape", n.Name)
	}
	if err := n.Shape.Validate(); err != nil {
		return fmt.Errorf("Shape %q: %v", n.Name, err)
	}
	if n.MaterialID < 0 {
		// Index-matched interface: no material required.
		return nil
	}
	if n.Material == nil {
		return fmt.Errorf("Node %q: missing Material", n.Name)
	}
	if err := n.Material.Validate(); err != nil {
		return fmt.Errorf("Material %q: %v", n.Name, err)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Node.
func (n Node) MarshalJSON() ([]byte, error) {
	shapeJSON, err := marshalInterface(n.Shape)
	if err != nil {
		return nil, err
	}
	wrapped := map[string]interface{}{
		"Name":           n.Name,
		"Shape":          shapeJSON,
		"MaterialID":     n.MaterialID,
		"InteriorMedium": n.InteriorMedium,
		"ExteriorMedium": n.ExteriorMedium,
	}
	if n.Material != nil {
		materialJSON, err := marshalInterface(n.Material)
		if err != nil {
			return nil, err
		}
		wrapped["Material"] = materialJSON
	}
	return json.Marshal(wrapped)
}

// UnmarshalJSON implements the json.Unmarshaler interface for Node.
func (n *Node) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		Name           string          `json:"Name"`
		Shape          json.RawMessage `json:"Shape"`
		Material       json.RawMessage `json:"Material"`
		MaterialID     int             `json:"MaterialID"`
		InteriorMedium int             `json:"InteriorMedium"`
		ExteriorMedium int             `json:"ExteriorMedium"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	iface, err := unmarshalInterface(wrapper.Shape)
	if err != nil {
		return err
	}
	shape, ok := iface.(Shape)
	if !ok {
		return fmt.Errorf("expected Shape, got %T", iface)
	}
	n.Name = wrapper.Name
	n.Shape = shape
	n.MaterialID = wrapper.MaterialID
	n.InteriorMedium = wrapper.InteriorMedium
	n.ExteriorMedium = wrapper.ExteriorMedium
	if len(wrapper.Material) > 0 {
		iface, err = unmarshalInterface(wrapper.Material)
		if err != nil {
			return err
		}
		material, ok := iface.(Material)
		if !ok {
			return fmt.Errorf("expected Material, got %T", iface)
		}
		n.Material = material
	}
	return nil
}

func (n Node) String() string {
	return fmt.Sprintf("Node{Name: %q, Shape: %v, MaterialID: %d}", n.Name, n.Shape, n.MaterialID)
}
