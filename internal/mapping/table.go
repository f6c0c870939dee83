package mapping

import (
	"reflex-remapper/internal/common"
)

// Kind selects the field or method entries of a member table.
type Kind int

const (
	KindField Kind = iota
	KindMethod
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindField:
		return "field"
	case KindMethod:
		return "method"
	default:
		return common.UnknownStr
	}
}

// Entry maps one field or method between two adjacent naming schemes.
type Entry struct {
	// Owner is the owning class in the table's source scheme
	// (intermediate for Table.Intermediate, canonical for Table.Runtime).
	Owner string `yaml:"owner"`
	// Name is the member name in the table's own scheme
	// (intermediate or runtime).
	Name string `yaml:"name"`
	// Canonical is the member name in the canonical scheme, the bridge
	// identity shared by both member tables.
	Canonical string `yaml:"canonical"`
	// Descriptor is the type signature; required for methods.
	Descriptor string `yaml:"descriptor,omitempty"`
}

// Members is an ordered collection of field and method entries.
type Members struct {
	Fields  []Entry `yaml:"fields,omitempty"`
	Methods []Entry `yaml:"methods,omitempty"`
}

// Of returns the entries of the given kind.
func (m *Members) Of(kind Kind) []Entry {
	if kind == KindMethod {
		return m.Methods
	}

	return m.Fields
}

// Len returns the total number of entries.
func (m *Members) Len() int {
	return len(m.Fields) + len(m.Methods)
}

// ClassDictionary is a bidirectional intermediate <-> canonical class map.
type ClassDictionary struct {
	toCanonical    map[string]string
	toIntermediate map[string]string
}

// NewClassDictionary creates an empty dictionary.
func NewClassDictionary() *ClassDictionary {
	return &ClassDictionary{
		toCanonical:    make(map[string]string),
		toIntermediate: make(map[string]string),
	}
}

// Add records intermediate <-> canonical. Each direction keeps its first
// value: Add reports false for each side that was already present.
func (d *ClassDictionary) Add(intermediate, canonical string) (newIntermediate, newCanonical bool) {
	intermediate = common.NormalizeClassName(intermediate)
	canonical = common.NormalizeClassName(canonical)

	if _, ok := d.toCanonical[intermediate]; !ok {
		d.toCanonical[intermediate] = canonical
		newIntermediate = true
	}

	if _, ok := d.toIntermediate[canonical]; !ok {
		d.toIntermediate[canonical] = intermediate
		newCanonical = true
	}

	return newIntermediate, newCanonical
}

// Canonical returns the canonical name of an intermediate class. The
// lookups treat a nil dictionary as empty.
func (d *ClassDictionary) Canonical(intermediate string) (string, bool) {
	if d == nil {
		return "", false
	}

	name, ok := d.toCanonical[intermediate]
	return name, ok
}

// Intermediate returns the intermediate name of a canonical class.
func (d *ClassDictionary) Intermediate(canonical string) (string, bool) {
	if d == nil {
		return "", false
	}

	name, ok := d.toIntermediate[canonical]
	return name, ok
}

// Len returns the number of intermediate class names.
func (d *ClassDictionary) Len() int {
	if d == nil {
		return 0
	}

	return len(d.toCanonical)
}

// Table is one complete set of mapping data for a runtime version.
// It must be fully populated before a resolver uses it and not modified after.
type Table struct {
	Classes      *ClassDictionary
	Intermediate Members
	Runtime      Members
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{Classes: NewClassDictionary()}
}
