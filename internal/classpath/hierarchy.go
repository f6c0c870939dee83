package classpath

import (
	"reflex-remapper/internal/common"
)

// DefaultRoot is the implicit superclass of every declared class.
const DefaultRoot = "java.lang.Object"

// Declared is a class known by its declared supertypes.
type Declared struct {
	name       string
	super      *Declared
	interfaces []*Declared
}

// Name implements Class.
func (c *Declared) Name() string {
	return c.name
}

// Super returns the direct superclass, nil for the root.
func (c *Declared) Super() *Declared {
	return c.super
}

// Interfaces returns the directly implemented interfaces.
func (c *Declared) Interfaces() []*Declared {
	return c.interfaces
}

// IsAssignableFrom implements Class. Only other Declared classes are
// considered; handles from other loaders never match.
func (c *Declared) IsAssignableFrom(other Class) bool {
	o, ok := other.(*Declared)
	if !ok || o == nil {
		return false
	}

	return o.isSubtypeOf(c, map[*Declared]struct{}{})
}

func (c *Declared) isSubtypeOf(t *Declared, seen map[*Declared]struct{}) bool {
	if c == t {
		return true
	}

	// hierarchy files are not trusted to be acyclic
	if _, ok := seen[c]; ok {
		return false
	}

	seen[c] = struct{}{}

	if c.super != nil && c.super.isSubtypeOf(t, seen) {
		return true
	}

	for _, iface := range c.interfaces {
		if iface.isSubtypeOf(t, seen) {
			return true
		}
	}

	return false
}

// Hierarchy is a Loader over explicitly declared classes.
// All Declare calls must happen before the Hierarchy is shared; Load is
// safe for concurrent use afterwards.
type Hierarchy struct {
	root    *Declared
	classes map[string]*Declared
}

// NewHierarchy creates a Hierarchy whose root class is root
// (DefaultRoot when empty).
func NewHierarchy(root string) *Hierarchy {
	if root == "" {
		root = DefaultRoot
	}

	root = common.NormalizeClassName(root)
	r := &Declared{name: root}

	return &Hierarchy{
		root:    r,
		classes: map[string]*Declared{root: r},
	}
}

// Root returns the root class.
func (h *Hierarchy) Root() *Declared {
	return h.root
}

// Declare adds (or completes) a class. An empty super means the root.
// Supertypes not declared yet are created on the fly and may be declared
// later with their own supertypes.
func (h *Hierarchy) Declare(name, super string, interfaces ...string) *Declared {
	c := h.class(name)
	if c == h.root {
		return c
	}

	if super == "" {
		c.super = h.root
	} else {
		c.super = h.class(super)
	}

	c.interfaces = c.interfaces[:0]
	for _, iface := range interfaces {
		c.interfaces = append(c.interfaces, h.class(iface))
	}

	return c
}

func (h *Hierarchy) class(name string) *Declared {
	name = common.NormalizeClassName(name)
	if c, ok := h.classes[name]; ok {
		return c
	}

	c := &Declared{name: name, super: h.root}
	h.classes[name] = c

	return c
}

// Load implements Loader.
func (h *Hierarchy) Load(name string) (Class, error) {
	c, ok := h.classes[common.NormalizeClassName(name)]
	if !ok {
		return nil, NotFound(name)
	}

	return c, nil
}

// Len returns the number of known classes, including the root.
func (h *Hierarchy) Len() int {
	return len(h.classes)
}
