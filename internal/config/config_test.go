package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reflex-remapper/internal/cache"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[cache]
shards = 8

[log]
level = "debug"
format = "json"

[mapping]
files = ["mappings/**/*.yaml"]
classes = "classes.yaml"
version = "1.20.4"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Cache.Shards)
	assert.Equal(t, 3, cfg.Cache.MaxSuggestions, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.Equal(t, []string{"mappings/**/*.yaml"}, cfg.Mapping.Files)
	assert.Equal(t, "classes.yaml", cfg.Mapping.Classes)
	assert.Equal(t, "java.lang.Object", cfg.Mapping.Root)
	assert.Equal(t, "1.20.4", cfg.Mapping.Version)
}

func TestLoad_DefaultFileMissing(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(DefaultFile)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{"bad toml", "[cache\n", "failed to parse config file"},
		{"negative shards", "[cache]\nshards = -1\n", "cache.shards must not be negative"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "log.level"},
		{"bad format", "[log]\nformat = \"xml\"\n", "log.format must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Log.Level = "warn"
	cfg.Log.Format = FormatJSON

	var buf bytes.Buffer

	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.WithField("owner", "a.B").Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"owner":"a.B"`)
}

func TestResolverConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Cache.Shards = 4

	rc := cfg.Resolver(nil)
	assert.Equal(t, 4, rc.Shards)
	assert.Equal(t, 3, rc.MaxSuggestions)
	assert.NotNil(t, rc.Logger)

	assert.Equal(t, cache.DefaultShards, DefaultConfig().Resolver(nil).Shards)
}
