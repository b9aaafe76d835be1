// Package model: YAML model definitions.

package model

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Definition is the on-disk YAML form of a model:
//
//	name: sir
//	states: [S, I, R]
//	parameters: [beta, gamma]
//	odes:
//	  - "-beta*S*I"
//	  - "beta*S*I - gamma*I"
//	  - "gamma*I"
type Definition struct {
	Name       string   `yaml:"name"`
	States     []string `yaml:"states"`
	Parameters []string `yaml:"parameters"`
	ODEs       []string `yaml:"odes"`
}

// ParseDefinition decodes a YAML document into a Definition. Unknown
// fields are rejected so that typos in hand-written definitions fail
// loudly.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("model: decode definition: %w", err)
	}
	return &def, nil
}

// ReadDefinition decodes a YAML document from r.
func ReadDefinition(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("model: read definition: %w", err)
	}
	return ParseDefinition(data)
}

// Build validates the definition and constructs the Model, parsing and
// symbol-checking every equation.
func (d *Definition) Build() (*Model, error) {
	m, err := New(d.States, d.Parameters)
	if err != nil {
		return nil, err
	}
	m.SetName(d.Name)
	if err := m.SetODE(d.ODEs...); err != nil {
		return nil, err
	}
	return m, nil
}
