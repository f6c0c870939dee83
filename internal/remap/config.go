package remap

import (
	"io"

	"github.com/sirupsen/logrus"

	"reflex-remapper/internal/cache"
)

// Config holds configuration for a Resolver.
type Config struct {
	// Shards is the number of lock shards per cache.
	Shards int
	// MaxSuggestions is the maximum number of near-miss names Explain reports.
	MaxSuggestions int
	// Logger receives fallback (debug) and descriptor failure (error) events.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the default resolver configuration. Its logger
// discards everything.
func DefaultConfig() Config {
	return Config{
		Shards:         cache.DefaultShards,
		MaxSuggestions: 3,
		Logger:         discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
