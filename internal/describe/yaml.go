package describe

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a scene file:
//
//	name: Settings
//	nodes:
//	  - type: pane
//	    name: Main
//	    children:
//	      - {type: text, name: Volume}
//	      - {type: button, name: Apply, focus: true}
func FromYAML(data []byte) (*Static, error) {
	var s Static
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene: %w", err)
	}
	return &s, nil
}

// MarshalYAML writes s in the format FromYAML reads.
func (s *Static) MarshalYAML() (any, error) {
	return struct {
		Name  string `yaml:"name"`
		Nodes []Node `yaml:"nodes"`
	}{s.Title, s.Nodes}, nil
}
