package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliMappings = `
classes:
  org.bukkit.craftbukkit.Entity: net.minecraft.world.Entity
intermediate:
  fields:
    - org.bukkit.craftbukkit.Entity world level
  methods:
    - org.bukkit.craftbukkit.Entity m mFoo (Lcom/example/Foo;)V
runtime:
  fields:
    - net.minecraft.world.Entity a level
  methods:
    - net.minecraft.world.Entity f1 mFoo (Lcom/example/Foo;)V
`

const cliClasses = `
classes:
  com.example.Foo: {}
  com.example.SubFoo: com.example.Foo
`

func setupWorkspace(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mappings"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mappings", "entity.yaml"), []byte(cliMappings), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "classes.yaml"), []byte(cliClasses), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reflex-remapper.toml"), []byte(`
[mapping]
files = ["mappings/**/*.yaml"]
classes = "classes.yaml"
`), 0o644))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard

	err := app.Run(append([]string{"reflex-remapper"}, args...))

	return out.String(), err
}

func TestFieldCommand(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, "field", "org/bukkit/craftbukkit/Entity", "world")
	require.NoError(t, err)
	assert.Equal(t, "a\n", out)

	out, err = run(t, "field", "com.unknown.Thing", "x")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)

	out, err = run(t, "field", "--explain", "net.minecraft.world.Entity", "wrld")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "wrld [unmapped_member]"), out)
	assert.Contains(t, out, "did you mean world")

	_, err = run(t, "field", "only-owner")
	require.Error(t, err)
}

func TestMethodCommand(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, "method", "org.bukkit.craftbukkit.Entity", "m", "com.example.SubFoo")
	require.NoError(t, err)
	assert.Equal(t, "f1\n", out)

	out, err = run(t, "method", "org.bukkit.craftbukkit.Entity", "m", "null")
	require.NoError(t, err)
	assert.Equal(t, "f1\n", out)

	out, err = run(t, "method", "org.bukkit.craftbukkit.Entity", "m")
	require.NoError(t, err)
	assert.Equal(t, "m\n", out)

	out, err = run(t, "method", "--explain", "org.bukkit.craftbukkit.Entity", "m", "com.example.Foo")
	require.NoError(t, err)
	assert.Contains(t, out, "f1 [resolved]")
	assert.Contains(t, out, "bridge=mFoo")

	_, err = run(t, "method", "org.bukkit.craftbukkit.Entity", "m", "com.example.Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load argument classes")
}

func TestMethodCommand_MissingDescriptorClass(t *testing.T) {
	setupWorkspace(t)

	// without the hierarchy file com.example.Foo is unknown to the loader
	_, err := run(t, "--classes", "", "--config", "none.toml", "--mapping", "mappings/*.yaml",
		"method", "org.bukkit.craftbukkit.Entity", "m", "null")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	require.NoError(t, os.WriteFile("empty.toml", nil, 0o644))

	_, err = run(t, "--config", "empty.toml", "--mapping", "mappings/*.yaml",
		"method", "org.bukkit.craftbukkit.Entity", "m", "null")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class not found")
}

func TestClassCommand(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, "class", "org/bukkit/craftbukkit/Entity")
	require.NoError(t, err)
	assert.Equal(t, "net.minecraft.world.Entity\n"+
		"intermediate: org.bukkit.craftbukkit.Entity\n"+
		"canonical:    net.minecraft.world.Entity\n", out)

	out, err = run(t, "class", "a/b/C")
	require.NoError(t, err)
	assert.Equal(t, "a/b/C\nintermediate: a.b.C\ncanonical:    (unmapped)\n", out)
}

func TestCheckCommand(t *testing.T) {
	setupWorkspace(t)

	out, err := run(t, "check")
	require.NoError(t, err)
	assert.Equal(t, "ok: 1 files, 0 warnings\n", out)

	require.NoError(t, os.WriteFile(filepath.Join("mappings", "broken.yaml"), []byte(`
runtime:
  methods:
    - net.minecraft.world.Entity x y (Lcom/example/Foo
`), 0o644))

	out, err = run(t, "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors in 2 files")
	assert.Contains(t, out, "invalid_descriptor")
}

func TestNoMappingFiles(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := run(t, "field", "a.B", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no mapping files configured")
}
