package analyze

import (
	"fmt"
	"go/types"
	"sort"
	"sync"

	"golang.org/x/tools/go/packages"

	"reflex-remapper/internal/classpath"
)

// Class is the class handle type served by Index.
type Class = classpath.Class

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports |
	packages.NeedDeps

// Index is a classpath.Loader over the named types of indexed packages.
// It is safe for concurrent use.
type Index struct {
	mu      sync.RWMutex
	classes map[string]*TypeClass
}

// NewIndex creates an Index holding the predeclared basic types and error,
// under their Go names.
func NewIndex() *Index {
	idx := &Index{classes: make(map[string]*TypeClass)}

	for _, name := range types.Universe.Names() {
		tn, ok := types.Universe.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}

		idx.classes[name] = NewTypeClass(name, tn.Type())
	}

	return idx
}

// Add indexes every exported named type declared in pkg and returns the
// number of classes added.
func (idx *Index) Add(pkg *types.Package) int {
	scope := pkg.Scope()

	idx.mu.Lock()
	defer idx.mu.Unlock()

	added := 0

	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !tn.Exported() {
			continue
		}

		className := ClassName(pkg.Path(), name)
		if _, exists := idx.classes[className]; exists {
			continue
		}

		idx.classes[className] = NewTypeClass(className, tn.Type())
		added++
	}

	return added
}

// Load implements classpath.Loader.
func (idx *Index) Load(name string) (Class, error) {
	idx.mu.RLock()
	c, ok := idx.classes[name]
	idx.mu.RUnlock()

	if !ok {
		return nil, classpath.NotFound(name)
	}

	return c, nil
}

// Names returns the sorted class names known to the index.
func (idx *Index) Names() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	names := make([]string, 0, len(idx.classes))
	for name := range idx.classes {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of indexed classes.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return len(idx.classes)
}

// Analyzer loads Go packages into an Index.
type Analyzer struct {
	index *Index
	dir   string
}

// NewAnalyzer creates a new Analyzer. Patterns are resolved relative to dir
// (the current directory when empty).
func NewAnalyzer(dir string) *Analyzer {
	return &Analyzer{
		index: NewIndex(),
		dir:   dir,
	}
}

// LoadPackages loads the specified packages and indexes their types.
// Patterns are standard Go package patterns (e.g., "./...", "example.com/world").
func (a *Analyzer) LoadPackages(patterns ...string) (*Index, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
		}

		a.index.Add(pkg.Types)
	}

	return a.index, nil
}

// Index returns the index built so far.
func (a *Analyzer) Index() *Index {
	return a.index
}
