package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File is the attrgen.yaml project configuration.
type File struct {
	// Version of the config format.
	Version string `yaml:"version,omitempty"`
	// Packages are the package patterns to scan.
	Packages StringOrArray `yaml:"packages,omitempty"`
	// Output controls generated file naming.
	Output Output `yaml:"output,omitempty"`
	// Overrides force attribute names without touching source markers.
	Overrides []Override `yaml:"overrides,omitempty"`
}

// Output controls generated file naming.
type Output struct {
	// Suffix replaces the ".go" of each source file (e.g. "_attrs.go").
	Suffix string `yaml:"suffix,omitempty"`
}

// Override forces the attribute name of one schema type. It takes
// precedence over any //+attrgen marker argument.
type Override struct {
	// Type is the qualified type name, "pkgpath.TypeName".
	Type string `yaml:"type"`
	// Name is the attribute name to use.
	Name string `yaml:"name"`
}

// StringOrArray accepts either a single string or an array of strings
// in YAML.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}
