// Package cmdutil provides shared command utilities for the moduledev
// subcommands. It centralizes flag group management, opening the module
// tree, loading modules and exit-error wrapping.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/config"
	"github.com/moduledev/cli/internal/core/module"
)

// VersionFlag selects one version of a module (show, edit, location, path,
// remove). Empty means the latest version.
type VersionFlag struct {
	Version string
}

// AddTo registers the version flag on the given cobra command.
func (f *VersionFlag) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Version, "version", "",
		"Module version (default: latest)")
}

// ParseFlags holds flags for commands that load descriptors.
type ParseFlags struct {
	Lenient bool
}

// AddTo registers the parse flags on the given cobra command.
func (f *ParseFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Lenient, "lenient", false,
		"Skip malformed descriptor lines instead of failing")
}

// Policy returns the parse policy: lenient when the flag or the config
// setting asks for it.
func (f *ParseFlags) Policy(cfg *config.Config) module.ParsePolicy {
	if f.Lenient || (cfg != nil && cfg.Lenient) {
		return module.ParseLenient
	}
	return module.ParseStrict
}
