package mapping

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"reflex-remapper/internal/common"
	"reflex-remapper/internal/diagnostic"
)

// ErrNoFiles is returned by LoadGlob when no pattern matches a file.
var ErrNoFiles = errors.New("no mapping files matched")

// LoadFile loads and parses a YAML mapping file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	// Apply defaults and normalize
	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values and normalizes class names.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = CurrentVersion
	}

	for i := range f.Classes {
		p := &f.Classes[i]
		p.Intermediate = common.NormalizeClassName(p.Intermediate)
		p.Canonical = common.NormalizeClassName(p.Canonical)
	}

	for _, entries := range [][]Entry{
		f.Intermediate.Fields, f.Intermediate.Methods,
		f.Runtime.Fields, f.Runtime.Methods,
	} {
		for i := range entries {
			entries[i].Owner = common.NormalizeClassName(entries[i].Owner)
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal mapping: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write mapping file %s: %w", path, err)
	}

	return nil
}

// Expand returns the files matched by the glob patterns ("**" supported),
// sorted per pattern and without duplicates.
func Expand(patterns ...string) ([]string, error) {
	seen := make(map[string]struct{})

	var paths []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid mapping pattern %q: %w", pattern, err)
		}

		sort.Strings(matches)

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}

			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoFiles, patterns)
	}

	return paths, nil
}

// LoadGlob loads every file matched by patterns and merges them, in match
// order, into one Table.
func LoadGlob(patterns ...string) (*Table, *diagnostic.Diagnostics, error) {
	paths, err := Expand(patterns...)
	if err != nil {
		return nil, nil, err
	}

	sources := make([]Source, 0, len(paths))

	for _, path := range paths {
		f, err := LoadFile(path)
		if err != nil {
			return nil, nil, err
		}

		sources = append(sources, Source{Name: path, File: f})
	}

	table, diags := Build(sources...)

	return table, diags, nil
}

// Source is a parsed file together with the name used in diagnostics.
type Source struct {
	Name string
	File *File
}

// Build merges files into a Table. Class dictionary collisions keep the
// first pair and are reported as warnings.
func Build(sources ...Source) (*Table, *diagnostic.Diagnostics) {
	table := NewTable()
	diags := &diagnostic.Diagnostics{}

	for _, src := range sources {
		if src.File == nil {
			continue
		}

		for _, pair := range src.File.Classes {
			newIntermediate, newCanonical := table.Classes.Add(pair.Intermediate, pair.Canonical)
			if !newIntermediate {
				diags.AddWarning("duplicate_intermediate_class",
					fmt.Sprintf("intermediate class already mapped, keeping the first mapping (ignored %s)", pair.Canonical),
					src.Name, pair.Intermediate)
			}

			if !newCanonical {
				diags.AddWarning("duplicate_canonical_class",
					fmt.Sprintf("canonical class already mapped, keeping the first mapping (ignored %s)", pair.Intermediate),
					src.Name, pair.Canonical)
			}
		}

		table.Intermediate.Fields = append(table.Intermediate.Fields, src.File.Intermediate.Fields...)
		table.Intermediate.Methods = append(table.Intermediate.Methods, src.File.Intermediate.Methods...)
		table.Runtime.Fields = append(table.Runtime.Fields, src.File.Runtime.Fields...)
		table.Runtime.Methods = append(table.Runtime.Methods, src.File.Runtime.Methods...)
	}

	return table, diags
}
