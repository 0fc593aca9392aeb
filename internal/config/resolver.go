package config

import (
	"os"
	"strings"

	"github.com/moduledev/cli/internal/output"
)

// EnvPrefix prefixes the environment overrides of every setting.
const EnvPrefix = "MODULEDEV"

// EnvConfig names the environment variable overriding the config file path.
const EnvConfig = EnvPrefix + "_CONFIG"

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a setting together with where it came from and the
// lower-precedence values it shadowed.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// EnvVar returns the environment variable overriding key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(key)
}

// resolve applies flag > env > config > default.
func resolve(key, flagValue, configValue, defaultValue string) ResolvedValue {
	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, os.Getenv(EnvVar(key))},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	result := ResolvedValue{
		Key:      key,
		Source:   SourceDefault,
		Shadowed: make(map[ConfigSource]string),
	}
	found := false
	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if !found {
			result.Value = c.value
			result.Source = c.source
			found = true
			continue
		}
		result.Shadowed[c.source] = c.value
	}
	return result
}

// ResolveRoot resolves the module tree root using precedence:
// (1) --root flag, (2) MODULEDEV_ROOT env, (3) config.root.
// There is no default; an unresolved root has an empty Value.
func ResolveRoot(flagValue string, cfg *Config) ResolvedValue {
	return resolve(KeyRoot, flagValue, cfg.Root, "")
}

// ResolveMaintainer resolves the maintainer using precedence:
// (1) --maintainer flag, (2) MODULEDEV_MAINTAINER env, (3) config.maintainer,
// (4) "nomaintainer".
func ResolveMaintainer(flagValue string, cfg *Config) ResolvedValue {
	return resolve(KeyMaintainer, flagValue, cfg.Maintainer, DefaultMaintainer)
}

// ResolveEditor resolves the editor using precedence:
// (1) --editor flag, (2) MODULEDEV_EDITOR env, (3) config.editor,
// (4) editorEnv (the caller's $EDITOR) or "vim".
func ResolveEditor(flagValue string, cfg *Config, editorEnv string) ResolvedValue {
	def := editorEnv
	if def == "" {
		def = DefaultEditor
	}
	return resolve(KeyEditor, flagValue, cfg.Editor, def)
}

// ResolveCategory resolves the default category using precedence:
// (1) --category flag, (2) MODULEDEV_CATEGORY env, (3) config.category.
func ResolveCategory(flagValue string, cfg *Config) ResolvedValue {
	return resolve(KeyCategory, flagValue, cfg.Category, "")
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) MODULEDEV_CONFIG env, (3) ~/.moduledev/config.yaml.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}
	return resolve("config", flagValue, "", paths.ConfigFile), nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
