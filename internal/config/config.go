// Package config provides configuration loading and management.
package config

// Built-in defaults.
const (
	// DefaultMaintainer is used by init when no maintainer is configured.
	DefaultMaintainer = "nomaintainer"

	// DefaultEditor is used by edit when neither a setting nor $EDITOR names
	// one.
	DefaultEditor = "vim"
)

// Setting keys accepted by the store.
const (
	KeyRoot       = "root"
	KeyMaintainer = "maintainer"
	KeyEditor     = "editor"
	KeyCategory   = "category"
	KeyLenient    = "lenient"
)

// Settings lists the known setting keys in display order.
var Settings = []string{KeyRoot, KeyMaintainer, KeyEditor, KeyCategory, KeyLenient}

// Config represents the moduledev configuration.
// Loaded from ~/.moduledev/config.yaml.
type Config struct {
	// Root is the module tree root directory.
	// Env: MODULEDEV_ROOT
	Root string `mapstructure:"root" yaml:"root,omitempty"`

	// Maintainer is written into new descriptors.
	// Env: MODULEDEV_MAINTAINER, Default: "nomaintainer"
	Maintainer string `mapstructure:"maintainer" yaml:"maintainer,omitempty"`

	// Editor is the program used by the edit command.
	// Env: MODULEDEV_EDITOR, Default: $EDITOR, then "vim"
	Editor string `mapstructure:"editor" yaml:"editor,omitempty"`

	// Category is the default loader category for new modules. Empty means
	// the repository label.
	Category string `mapstructure:"category" yaml:"category,omitempty"`

	// Lenient makes load commands skip malformed descriptor lines instead of
	// failing.
	Lenient bool `mapstructure:"lenient" yaml:"lenient,omitempty"`
}

// WithDefaults returns a copy of c with unset values filled in. editorEnv
// is the caller's $EDITOR.
func (c *Config) WithDefaults(editorEnv string) *Config {
	out := *c
	if out.Maintainer == "" {
		out.Maintainer = DefaultMaintainer
	}
	if out.Editor == "" {
		out.Editor = editorEnv
	}
	if out.Editor == "" {
		out.Editor = DefaultEditor
	}
	return &out
}

// IsZero reports whether no setting is set.
func (c *Config) IsZero() bool {
	return *c == Config{}
}
