package classpath

import (
	"reflect"
	"sync"

	"reflex-remapper/internal/common"
)

// ReflectClass is a Class backed by a Go reflect.Type.
//
// Go values are compared with reference semantics: for a named type T, the
// values T and *T are one class (they share a ReflectName) and both are
// accepted wherever either form is assignable.
type ReflectClass struct {
	t reflect.Type
}

// Of wraps t; nil yields nil.
func Of(t reflect.Type) Class {
	if t == nil {
		return nil
	}

	return ReflectClass{t: t}
}

// TypeFor returns the class of T.
func TypeFor[T any]() Class {
	return Of(reflect.TypeFor[T]())
}

// TypeOf returns the runtime class of v, nil for a nil interface value.
func TypeOf(v any) Class {
	return Of(reflect.TypeOf(v))
}

// TypesOf returns the runtime classes of the actual call arguments, in order.
// Nil arguments become absent (nil) entries.
func TypesOf(values ...any) []Class {
	classes := make([]Class, len(values))
	for i, v := range values {
		classes[i] = TypeOf(v)
	}

	return classes
}

// Type returns the underlying reflect.Type.
func (c ReflectClass) Type() reflect.Type {
	return c.t
}

// Name implements Class.
func (c ReflectClass) Name() string {
	return ReflectName(c.t)
}

// IsAssignableFrom implements Class. The check runs over both reference
// forms of other, so handles with equal names give equal answers.
func (c ReflectClass) IsAssignableFrom(other Class) bool {
	o, ok := other.(ReflectClass)
	if !ok {
		return false
	}

	for _, t := range referenceForms(o.t) {
		if t.AssignableTo(c.t) {
			return true
		}
	}

	return false
}

// referenceForms returns t together with its value or pointer counterpart
// when both render under the same ReflectName.
func referenceForms(t reflect.Type) []reflect.Type {
	switch {
	case t.Kind() == reflect.Pointer && t.Name() == "" && t.Elem().Name() != "":
		return []reflect.Type{t, t.Elem()}
	case t.Name() != "" && t.Kind() != reflect.Pointer:
		return []reflect.Type{t, reflect.PointerTo(t)}
	default:
		return []reflect.Type{t}
	}
}

// ReflectName returns the class name for t: "<pkg path, dotted>.<Name>" for
// named types and pointers to them, t.String() otherwise.
func ReflectName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer && t.Name() == "" && t.Elem().Name() != "" {
		t = t.Elem()
	}

	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}

	return common.NormalizeClassName(t.PkgPath()) + "." + t.Name()
}

// Registry is a Loader over registered Go types. Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]reflect.Type
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]reflect.Type)}
}

// Register adds t under its ReflectName and returns that name.
func (r *Registry) Register(t reflect.Type) string {
	name := ReflectName(t)
	r.RegisterAs(name, t)

	return name
}

// RegisterAs adds t under an explicit class name, replacing any previous entry.
func (r *Registry) RegisterAs(name string, t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types[common.NormalizeClassName(name)] = t
}

// Load implements Loader.
func (r *Registry) Load(name string) (Class, error) {
	r.mu.RLock()
	t, ok := r.types[common.NormalizeClassName(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, NotFound(name)
	}

	return ReflectClass{t: t}, nil
}
