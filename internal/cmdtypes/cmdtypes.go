// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/mod, internal/cmd/config).
package cmdtypes

import (
	"github.com/moduledev/cli/internal/config"
	oerrors "github.com/moduledev/cli/internal/errors"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Store      *config.Store
	ConfigPath string               // resolved --config path
	Root       config.ResolvedValue // resolved --root
	Maintainer config.ResolvedValue // resolved --maintainer
	EditorEnv  string               // $EDITOR captured at startup
	Verbose    bool
}

// FileConfig returns the settings read from the config file, or an empty
// Config when no store was opened.
func (g *GlobalConfig) FileConfig() *config.Config {
	if g == nil || g.Store == nil {
		return &config.Config{}
	}
	return g.Store.Config()
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess           = oerrors.ExitSuccess
	ExitGeneralError      = oerrors.ExitGeneralError
	ExitValidationError   = oerrors.ExitValidationError
	ExitPreconditionError = oerrors.ExitPreconditionError
	ExitCollision         = oerrors.ExitCollision
	ExitNotFound          = oerrors.ExitNotFound
	ExitParseError        = oerrors.ExitParseError
	ExitPermissionDenied  = oerrors.ExitPermissionDenied
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
