package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvVar(t *testing.T) {
	assert.Equal(t, "MODULEDEV_ROOT", EnvVar(KeyRoot))
	assert.Equal(t, EnvConfig, EnvVar("config"))
}

func TestResolveRoot_FlagPrecedence(t *testing.T) {
	t.Setenv("MODULEDEV_ROOT", "/env/root")

	result := ResolveRoot("/flag/root", &Config{Root: "/config/root"})

	assert.Equal(t, "/flag/root", result.Value)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/env/root", result.Shadowed[SourceEnv])
	assert.Equal(t, "/config/root", result.Shadowed[SourceConfig])
}

func TestResolveRoot_EnvPrecedence(t *testing.T) {
	t.Setenv("MODULEDEV_ROOT", "/env/root")

	result := ResolveRoot("", &Config{Root: "/config/root"})

	assert.Equal(t, "/env/root", result.Value)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "/config/root", result.Shadowed[SourceConfig])
	assert.NotContains(t, result.Shadowed, SourceFlag)
}

func TestResolveRoot_ConfigFallback(t *testing.T) {
	t.Setenv("MODULEDEV_ROOT", "")

	result := ResolveRoot("", &Config{Root: "/config/root"})

	assert.Equal(t, "/config/root", result.Value)
	assert.Equal(t, SourceConfig, result.Source)
	assert.Empty(t, result.Shadowed)
}

func TestResolveRoot_Unset(t *testing.T) {
	t.Setenv("MODULEDEV_ROOT", "")

	result := ResolveRoot("", &Config{})

	assert.Empty(t, result.Value)
	assert.Equal(t, SourceDefault, result.Source)
}

func TestResolveMaintainer_Default(t *testing.T) {
	t.Setenv("MODULEDEV_MAINTAINER", "")

	result := ResolveMaintainer("", &Config{})

	assert.Equal(t, DefaultMaintainer, result.Value)
	assert.Equal(t, SourceDefault, result.Source)
}

func TestResolveEditor(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		env        string
		cfg        Config
		editorEnv  string
		want       string
		wantSource ConfigSource
	}{
		{"flag", "ed", "nano", Config{Editor: "emacs"}, "vi", "ed", SourceFlag},
		{"env", "", "nano", Config{Editor: "emacs"}, "vi", "nano", SourceEnv},
		{"config", "", "", Config{Editor: "emacs"}, "vi", "emacs", SourceConfig},
		{"$EDITOR", "", "", Config{}, "vi", "vi", SourceDefault},
		{"built-in", "", "", Config{}, "", DefaultEditor, SourceDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MODULEDEV_EDITOR", tt.env)
			result := ResolveEditor(tt.flag, &tt.cfg, tt.editorEnv)
			assert.Equal(t, tt.want, result.Value)
			assert.Equal(t, tt.wantSource, result.Source)
		})
	}
}

func TestResolveCategory(t *testing.T) {
	t.Setenv("MODULEDEV_CATEGORY", "")

	assert.Equal(t, "tools", ResolveCategory("", &Config{Category: "tools"}).Value)
	assert.Equal(t, "cli", ResolveCategory("cli", &Config{Category: "tools"}).Value)
	assert.Empty(t, ResolveCategory("", &Config{}).Value)
}

func TestResolveConfigPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)
	defaultPath := filepath.Join(homeDir, ".moduledev", "config.yaml")

	t.Run("flag", func(t *testing.T) {
		t.Setenv("MODULEDEV_CONFIG", "/env/config.yaml")

		result, err := ResolveConfigPath("/flag/config.yaml")
		require.NoError(t, err)
		assert.Equal(t, "/flag/config.yaml", result.Value)
		assert.Equal(t, SourceFlag, result.Source)
		assert.Equal(t, "/env/config.yaml", result.Shadowed[SourceEnv])
		assert.Equal(t, defaultPath, result.Shadowed[SourceDefault])
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("MODULEDEV_CONFIG", "/env/config.yaml")

		result, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, "/env/config.yaml", result.Value)
		assert.Equal(t, SourceEnv, result.Source)
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("MODULEDEV_CONFIG", "")

		result, err := ResolveConfigPath("")
		require.NoError(t, err)
		assert.Equal(t, defaultPath, result.Value)
		assert.Equal(t, SourceDefault, result.Source)
		assert.Empty(t, result.Shadowed)
	})
}
