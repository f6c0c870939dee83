package classpath

import (
	"errors"
	"fmt"
	"strings"
)

// NullName is how an absent argument is rendered in argument lists.
const NullName = "null"

// ErrClassNotFound is returned by loaders for names they cannot resolve.
var ErrClassNotFound = errors.New("class not found")

// Class is a runtime type handle.
type Class interface {
	// Name returns the dotted class name.
	Name() string
	// IsAssignableFrom reports whether a value whose runtime class is other
	// can be assigned to this class, i.e. this class equals other or is one
	// of its supertypes.
	IsAssignableFrom(other Class) bool
}

// Loader resolves a normalized (dotted) class name to a Class.
type Loader interface {
	Load(name string) (Class, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name string) (Class, error)

// Load calls f(name).
func (f LoaderFunc) Load(name string) (Class, error) {
	return f(name)
}

// NotFound returns an error wrapping ErrClassNotFound for name.
func NotFound(name string) error {
	return fmt.Errorf("%w: %s", ErrClassNotFound, name)
}

// Chain tries each loader in order. A loader reporting ErrClassNotFound
// passes the name on to the next one; any other error stops the chain.
type Chain []Loader

// Load implements Loader.
func (c Chain) Load(name string) (Class, error) {
	for _, l := range c {
		cls, err := l.Load(name)
		if err == nil {
			return cls, nil
		}

		if !errors.Is(err, ErrClassNotFound) {
			return nil, err
		}
	}

	return nil, NotFound(name)
}

// Names returns the class names of classes in order, NullName for nil entries.
func Names(classes []Class) []string {
	names := make([]string, len(classes))
	for i, c := range classes {
		names[i] = NameOf(c)
	}

	return names
}

// NameOf returns c.Name(), or NullName if c is nil.
func NameOf(c Class) string {
	if c == nil {
		return NullName
	}

	return c.Name()
}

// Signature renders an argument list as "(a,b,null)".
func Signature(classes []Class) string {
	return "(" + strings.Join(Names(classes), ",") + ")"
}

// LoadAll loads each name, treating NullName as an absent argument.
func LoadAll(l Loader, names ...string) ([]Class, error) {
	classes := make([]Class, 0, len(names))

	for _, name := range names {
		if name == NullName {
			classes = append(classes, nil)
			continue
		}

		cls, err := l.Load(name)
		if err != nil {
			return nil, err
		}

		classes = append(classes, cls)
	}

	return classes, nil
}
