// Package config loads the reflex-remapper configuration file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"reflex-remapper/internal/cache"
	"reflex-remapper/internal/classpath"
	"reflex-remapper/internal/remap"
)

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "reflex-remapper.toml"

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Cache   Cache   `toml:"cache"`
	Log     Log     `toml:"log"`
	Mapping Mapping `toml:"mapping"`
}

type Cache struct {
	Shards         int `toml:"shards"`
	MaxSuggestions int `toml:"max_suggestions"`
}

type Log struct {
	Level  string `toml:"level"`  // logrus level name
	Format string `toml:"format"` // "text" or "json"
}

type Mapping struct {
	// Files are glob patterns of mapping files, "**" allowed.
	Files []string `toml:"files"`
	// Classes is a class hierarchy file for descriptor classes.
	Classes string `toml:"classes"`
	// Root is the root class used when no hierarchy file is given.
	Root string `toml:"root"`
	// Version labels the runtime version the files belong to.
	Version string `toml:"version"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Cache: Cache{
			Shards:         cache.DefaultShards,
			MaxSuggestions: 3,
		},
		Log: Log{
			Level:  logrus.InfoLevel.String(),
			Format: FormatText,
		},
		Mapping: Mapping{
			Root: classpath.DefaultRoot,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is DefaultFile.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultFile {
			return cfg, nil
		}

		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Cache.Shards < 0 {
		return fmt.Errorf("cache.shards must not be negative, got %d", c.Cache.Shards)
	}

	if c.Cache.MaxSuggestions < 0 {
		return fmt.Errorf("cache.max_suggestions must not be negative, got %d", c.Cache.MaxSuggestions)
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log.format must be %q or %q, got %q", FormatText, FormatJSON, c.Log.Format)
	}

	return nil
}

// NewLogger builds a logger writing to w as the [log] section says.
func (c Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)

	if strings.EqualFold(c.Log.Format, FormatJSON) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return l, nil
}

// Resolver returns the resolver configuration with logger attached.
func (c Config) Resolver(logger logrus.FieldLogger) remap.Config {
	rc := remap.DefaultConfig()
	rc.Shards = c.Cache.Shards
	rc.MaxSuggestions = c.Cache.MaxSuggestions

	if logger != nil {
		rc.Logger = logger
	}

	return rc
}
