package crossuuid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes u as its canonical text form
func (u UUID) MarshalYAML() (interface{}, error) {
	return u.String(), nil
}

// UnmarshalYAML decodes a scalar node with the Parse grammar
func (u *UUID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected scalar node at line %d", ErrInvalidInput, node.Line)
	}
	return DecodeInto(u, node.Value)
}
