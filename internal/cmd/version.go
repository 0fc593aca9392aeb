package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
	"github.com/moduledev/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show moduledev version information.

Displays the CLI version, commit, build date and Go version.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runVersion(format)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", output.FormatText.String(),
		"Output format (text, yaml)")

	return c
}

func runVersion(value string) error {
	format, ok := output.ParseOutputFormat(value, output.FormatText, output.FormatYAML)
	if !ok {
		return cmdutil.Exit(oerrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", value), "", "valid formats: text, yaml"))
	}

	info := version.GetInfo()
	if format == output.FormatYAML {
		data, err := yaml.Marshal(info)
		if err != nil {
			return cmdutil.Exit(fmt.Errorf("encoding version info: %w", err))
		}
		output.Print(string(data))
		return nil
	}
	output.Println(info.String())
	return nil
}
