package remap

import (
	"fmt"

	"golang.org/x/sync/singleflight"

	"reflex-remapper/internal/cache"
	"reflex-remapper/internal/classpath"
	"reflex-remapper/internal/mapping"
)

// Provider supplies the mapping table and type loader of a runtime version.
type Provider func(version string) (*mapping.Table, classpath.Loader, error)

// Set holds one Resolver per runtime version, built on first use. Resolvers
// of different versions never share caches. Safe for concurrent use.
type Set struct {
	provider  Provider
	config    Config
	resolvers *cache.Map[*Resolver]
	group     singleflight.Group
}

// NewSet creates a Set building resolvers with provider and config.
func NewSet(provider Provider, config Config) *Set {
	return &Set{
		provider:  provider,
		config:    config,
		resolvers: cache.New[*Resolver](config.Shards),
	}
}

// Get returns the resolver of version, building it if needed. Provider
// errors are returned and retried on the next call.
func (s *Set) Get(version string) (*Resolver, error) {
	if r, ok := s.resolvers.Get(version); ok {
		return r, nil
	}

	v, err, _ := s.group.Do(version, func() (any, error) {
		table, loader, err := s.provider(version)
		if err != nil {
			return nil, fmt.Errorf("failed to load mappings for version %q: %w", version, err)
		}

		r := NewResolver(table, loader, s.config)

		return s.resolvers.Store(version, r), nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Resolver), nil
}

// Len returns the number of resolvers built so far.
func (s *Set) Len() int {
	return s.resolvers.Len()
}
