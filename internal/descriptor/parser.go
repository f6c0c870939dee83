package descriptor

import (
	"fmt"

	"golang.org/x/sync/singleflight"

	"reflex-remapper/internal/cache"
	"reflex-remapper/internal/classpath"
)

// Error reports a descriptor that could not be turned into parameter types.
// It wraps ErrSyntax or the type loader's error (usually
// classpath.ErrClassNotFound). Descriptors come from verified compiled
// metadata, so an Error means the mapping data is corrupt.
type Error struct {
	Descriptor string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("descriptor %q: %v", e.Descriptor, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Parser resolves descriptors to parameter classes and caches the result per
// descriptor string. Safe for concurrent use.
type Parser struct {
	loader classpath.Loader
	cache  *cache.Map[[]classpath.Class]
	group  singleflight.Group
}

// NewParser creates a Parser loading classes through loader.
func NewParser(loader classpath.Loader, shards int) *Parser {
	return &Parser{
		loader: loader,
		cache:  cache.New[[]classpath.Class](shards),
	}
}

// ParameterTypes returns the classes of the class-typed parameters of desc,
// in declaration order. The returned slice is shared and must not be modified.
// Failures are returned as *Error and are not cached.
func (p *Parser) ParameterTypes(desc string) ([]classpath.Class, error) {
	if classes, ok := p.cache.Get(desc); ok {
		return classes, nil
	}

	v, err, _ := p.group.Do(desc, func() (any, error) {
		classes, err := p.load(desc)
		if err != nil {
			return nil, err
		}

		return p.cache.Store(desc, classes), nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]classpath.Class), nil
}

func (p *Parser) load(desc string) ([]classpath.Class, error) {
	m, err := Parse(desc)
	if err != nil {
		return nil, &Error{Descriptor: desc, Err: err}
	}

	names := m.ParameterClassNames()
	classes := make([]classpath.Class, 0, len(names))

	for _, name := range names {
		cls, err := p.loader.Load(name)
		if err != nil {
			return nil, &Error{Descriptor: desc, Err: err}
		}

		classes = append(classes, cls)
	}

	return classes, nil
}

// Stats returns the descriptor cache counters.
func (p *Parser) Stats() cache.Stats {
	return p.cache.Stats()
}
