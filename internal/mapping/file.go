package mapping

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the schema version written by Marshal.
const CurrentVersion = "1"

// File represents one YAML mapping file.
type File struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Classes maps intermediate class names to canonical ones, in file order.
	Classes ClassList `yaml:"classes,omitempty"`

	// Intermediate holds intermediate <-> canonical member entries.
	Intermediate Members `yaml:"intermediate,omitempty"`

	// Runtime holds canonical <-> runtime member entries.
	Runtime Members `yaml:"runtime,omitempty"`
}

// ClassPair is one class dictionary line.
type ClassPair struct {
	Intermediate string
	Canonical    string
}

// ClassList is an ordered class dictionary, written in YAML as a mapping
// from intermediate to canonical names.
type ClassList []ClassPair

// UnmarshalYAML implements custom YAML unmarshaling for ClassList.
// Key order of the YAML mapping is preserved.
func (c *ClassList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping of intermediate to canonical class names, got %v", node.Kind)
	}

	pairs := make(ClassList, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		var pair ClassPair

		if err := node.Content[i].Decode(&pair.Intermediate); err != nil {
			return fmt.Errorf("invalid intermediate class name: %w", err)
		}

		if err := node.Content[i+1].Decode(&pair.Canonical); err != nil {
			return fmt.Errorf("invalid canonical class name for %s: %w", pair.Intermediate, err)
		}

		pairs = append(pairs, pair)
	}

	*c = pairs

	return nil
}

// MarshalYAML implements custom YAML marshaling for ClassList.
func (c ClassList) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, pair := range c {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: pair.Intermediate},
			&yaml.Node{Kind: yaml.ScalarNode, Value: pair.Canonical},
		)
	}

	return node, nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Entry.
// Accepts:
//   - Compact string: "owner name canonical [descriptor]"
//   - Mapping: {owner: ..., name: ..., canonical: ..., descriptor: ...}
func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var line string

		if err := node.Decode(&line); err != nil {
			return err
		}

		entry, err := ParseEntry(line)
		if err != nil {
			return err
		}

		*e = entry

		return nil

	case yaml.MappingNode:
		type plain Entry

		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}

		*e = Entry(p)

		return nil

	default:
		return fmt.Errorf("expected string or mapping entry, got %v", node.Kind)
	}
}

// ParseEntry parses the compact "owner name canonical [descriptor]" form.
func ParseEntry(line string) (Entry, error) {
	parts := strings.Fields(line)

	switch len(parts) {
	case 3:
		return Entry{Owner: parts[0], Name: parts[1], Canonical: parts[2]}, nil
	case 4:
		return Entry{Owner: parts[0], Name: parts[1], Canonical: parts[2], Descriptor: parts[3]}, nil
	case 0:
		return Entry{}, errors.New("empty entry")
	default:
		return Entry{}, fmt.Errorf("invalid entry %q (expected 'owner name canonical [descriptor]')", line)
	}
}

// String returns the compact form of the entry.
func (e Entry) String() string {
	s := e.Owner + " " + e.Name + " " + e.Canonical
	if e.Descriptor != "" {
		s += " " + e.Descriptor
	}

	return s
}
