package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		content := `
root: /opt/modules
maintainer: Example <example@example.com>
editor: nano
category: tools
lenient: true
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)
		require.NoError(t, err)
		assert.Equal(t, "/opt/modules", cfg.Root)
		assert.Equal(t, "Example <example@example.com>", cfg.Maintainer)
		assert.Equal(t, "nano", cfg.Editor)
		assert.Equal(t, "tools", cfg.Category)
		assert.True(t, cfg.Lenient)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nonexistentfile"))
		require.NoError(t, err)
		assert.True(t, cfg.IsZero())
	})

	t.Run("environment does not leak into file values", func(t *testing.T) {
		t.Setenv("MODULEDEV_ROOT", "/env/root")

		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Empty(t, cfg.Root)
	})

	t.Run("fails on unparseable file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "bad_config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("root: [unclosed\n  - :"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}
