// Package mod provides the moduledev commands that operate on a module tree.
package mod

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
)

// NewCommands creates the module tree commands. They are attached directly
// to the root command.
func NewCommands(cfg *cmdtypes.GlobalConfig) []*cobra.Command {
	return []*cobra.Command{
		NewSetupCmd(cfg),
		NewInitCmd(cfg),
		NewPathCmd(cfg),
		NewShowCmd(cfg),
		NewEditCmd(cfg),
		NewLocationCmd(cfg),
		NewListCmd(cfg),
		NewVersionsCmd(cfg),
		NewRemoveCmd(cfg),
		NewCheckCmd(cfg),
	}
}

// parseFormat validates an --output value against the formats a command
// supports.
func parseFormat(value string, allowed ...output.OutputFormat) (output.OutputFormat, error) {
	f, ok := output.ParseOutputFormat(value, allowed...)
	if !ok {
		return "", cmdutil.Exit(oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", value), "",
			"valid formats: "+output.FormatNames(allowed...)))
	}
	return f, nil
}
