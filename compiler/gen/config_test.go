package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultHeader, cfg.Header)
	assert.Zero(t, cfg.Workers)
}

func TestConfigOptions(t *testing.T) {
	cfg, err := NewConfig(
		WithPackage("example.com/out"),
		WithTarget("./gen"),
		WithHeader("custom"),
		WithWorkers(4),
	)
	require.NoError(t, err)
	assert.Equal(t, "example.com/out", cfg.Package)
	assert.Equal(t, "./gen", cfg.Target)
	assert.Equal(t, "custom", cfg.Header)
	assert.Equal(t, 4, cfg.Workers)
}

func TestConfigOptionErrors(t *testing.T) {
	t.Run("empty package", func(t *testing.T) {
		_, err := NewConfig(WithPackage(""))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
	t.Run("empty target", func(t *testing.T) {
		_, err := NewConfig(WithTarget(""))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
	t.Run("negative workers", func(t *testing.T) {
		_, err := NewConfig(WithWorkers(-1))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "thriftgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
package: example.com/out
target: ./gen
workers: 2
schemas:
  - idl/shared.json
  - idl/tutorial.json
`), 0o644))

	fc, err := LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "example.com/out", fc.Package)
	assert.Equal(t, "./gen", fc.Target)
	assert.Equal(t, 2, fc.Workers)
	assert.Equal(t, []string{"idl/shared.json", "idl/tutorial.json"}, fc.Schemas)

	cfg, err := fc.Config()
	require.NoError(t, err)
	assert.Equal(t, DefaultHeader, cfg.Header, "missing header falls back to the default")
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoadFileConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("bad yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("package: [oops"), 0o644))
		_, err := LoadFileConfig(path)
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}
