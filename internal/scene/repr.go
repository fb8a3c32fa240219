package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Doc is the top-level shape of a scene YAML document.
type Doc struct {
	Camera     CameraRepr                `yaml:"camera"`
	Light      LightRepr                 `yaml:"light"`
	Materials  map[string]MaterialRepr   `yaml:"materials"`
	Transforms map[string][]TransformStep `yaml:"transforms"`
	Objects    []ObjectRepr              `yaml:"objects"`
}

type CameraRepr struct {
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	FieldOfView  float64    `yaml:"field_of_view"`
	From         [3]float64 `yaml:"from"`
	To           [3]float64 `yaml:"to"`
	Up           [3]float64 `yaml:"up"`
}

type LightRepr struct {
	At    [3]float64 `yaml:"at"`
	Color [3]float64 `yaml:"color"`
}

// MaterialRepr is both a complete material definition and a partial
// override set layered onto an `extends` base or onto the default
// material — the nil-ness of each pointer field is the only
// distinction the loader needs between "specified" and "inherited".
type MaterialRepr struct {
	Extends         *string     `yaml:"extends,omitempty"`
	Color           *[3]float64 `yaml:"color,omitempty"`
	Ambient         *float64    `yaml:"ambient,omitempty"`
	Diffuse         *float64    `yaml:"diffuse,omitempty"`
	Specular        *float64    `yaml:"specular,omitempty"`
	Shininess       *float64    `yaml:"shininess,omitempty"`
	Reflective      *float64    `yaml:"reflective,omitempty"`
	Transparency    *float64    `yaml:"transparency,omitempty"`
	RefractiveIndex *float64    `yaml:"refractive_index,omitempty"`
}

// TransformStep is either a reference to a named transform (a bare
// string, inlined in place) or a tagged operation array like
// [translate, x, y, z]. Custom unmarshaling is required because the
// two forms have different YAML node kinds.
type TransformStep struct {
	Ref  string
	Op   string
	Args []float64
}

func (s *TransformStep) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Ref = node.Value
		return nil
	}
	if node.Kind != yaml.SequenceNode || len(node.Content) < 1 {
		return fmt.Errorf("%w: transform step must be a name or a [op, args...] sequence", ErrParse)
	}
	s.Op = node.Content[0].Value
	for _, c := range node.Content[1:] {
		var v float64
		if err := c.Decode(&v); err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		s.Args = append(s.Args, v)
	}
	return nil
}

func (s TransformStep) isRef() bool { return s.Op == "" }

// ObjectMaterial is a material field on an object: either a reference
// to a named material or an inline override set layered onto the
// default material.
type ObjectMaterial struct {
	Ref    string
	Inline *MaterialRepr
}

func (m *ObjectMaterial) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		m.Ref = node.Value
		return nil
	}
	var repr MaterialRepr
	if err := node.Decode(&repr); err != nil {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	m.Inline = &repr
	return nil
}

type ObjectRepr struct {
	Type      string          `yaml:"type"`
	Material  ObjectMaterial  `yaml:"material"`
	Transform []TransformStep `yaml:"transform"`
}
