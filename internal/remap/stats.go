package remap

import (
	"reflex-remapper/internal/cache"
)

// Stats holds the counters of a Resolver's caches.
type Stats struct {
	Fields      cache.Stats
	Methods     cache.Stats
	Descriptors cache.Stats
}

// Stats returns the current cache counters.
func (r *Resolver) Stats() Stats {
	return Stats{
		Fields:      r.fields.Stats(),
		Methods:     r.methods.Stats(),
		Descriptors: r.descriptors.Stats(),
	}
}
