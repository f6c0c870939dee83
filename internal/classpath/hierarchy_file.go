package classpath

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// HierarchyFile is the YAML form of a class hierarchy:
//
//	root: java.lang.Object
//	classes:
//	  com.example.Base: {}
//	  com.example.Foo: com.example.Base          # superclass only
//	  com.example.Bar:
//	    super: com.example.Base
//	    interfaces: [com.example.Marker]
type HierarchyFile struct {
	Root    string               `yaml:"root,omitempty"`
	Classes map[string]ClassDecl `yaml:"classes"`
}

// ClassDecl declares the supertypes of one class.
type ClassDecl struct {
	Super      string   `yaml:"super,omitempty"`
	Interfaces []string `yaml:"interfaces,omitempty"`
}

// UnmarshalYAML accepts either a superclass name or a full mapping.
func (d *ClassDecl) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.Super)

	case yaml.MappingNode:
		type plain ClassDecl

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*d = ClassDecl(p)

		return nil

	default:
		return fmt.Errorf("expected superclass name or mapping, got %v", node.Kind)
	}
}

// ParseHierarchy parses YAML data into a Hierarchy.
func ParseHierarchy(data []byte) (*Hierarchy, error) {
	var hf HierarchyFile

	if err := yaml.Unmarshal(data, &hf); err != nil {
		return nil, fmt.Errorf("failed to parse hierarchy YAML: %w", err)
	}

	return hf.Build(), nil
}

// LoadHierarchyFile loads and parses a YAML hierarchy file.
func LoadHierarchyFile(path string) (*Hierarchy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hierarchy file %s: %w", path, err)
	}

	return ParseHierarchy(data)
}

// Build declares every class of the file in a new Hierarchy.
func (hf *HierarchyFile) Build() *Hierarchy {
	h := NewHierarchy(hf.Root)

	// sorted so forward references resolve identically on every run
	names := make([]string, 0, len(hf.Classes))
	for name := range hf.Classes {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		decl := hf.Classes[name]
		h.Declare(name, decl.Super, decl.Interfaces...)
	}

	return h
}
