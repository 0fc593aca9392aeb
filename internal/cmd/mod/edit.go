package mod

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/anmitsu/go-shlex"
	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/config"
	"github.com/moduledev/cli/internal/core/module"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
)

// NewEditCmd creates the edit command.
func NewEditCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var vf cmdutil.VersionFlag
	var editorFlag string

	c := &cobra.Command{
		Use:   "edit <name>",
		Short: "Edit the descriptor of a module",
		Long: `Open the descriptor file of a module in an editor.

The editor is taken from --editor, MODULEDEV_EDITOR, the editor setting,
$EDITOR, and finally vim. It may carry arguments, e.g. "code --wait".
Malformed lines do not prevent editing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runEdit(c, args, cfg, &vf, editorFlag)
		},
	}

	vf.AddTo(c)
	c.Flags().StringVar(&editorFlag, "editor", "",
		"Editor command (default: from config, then $EDITOR, then vim)")

	return c
}

func runEdit(c *cobra.Command, args []string, cfg *cmdtypes.GlobalConfig, vf *cmdutil.VersionFlag, editorFlag string) error {
	editor := config.ResolveEditor(editorFlag, cfg.FileConfig(), cfg.EditorEnv)
	config.LogResolvedValues(editor)

	argv, err := shlex.Split(editor.Value, true)
	if err != nil || len(argv) == 0 {
		return cmdutil.Exit(oerrors.NewValidationError(
			fmt.Sprintf("cannot parse editor command %q", editor.Value), "", "set it with --editor"))
	}

	_, l, err := cmdutil.LoadModule(cfg, args[0], vf.Version, module.ParseLenient)
	if err != nil {
		return err
	}
	path, err := l.DescriptorPath()
	if err != nil {
		return cmdutil.Exit(err)
	}

	output.Debug("launching editor", "editor", argv[0], "file", path)
	run := exec.CommandContext(c.Context(), argv[0], append(argv[1:], path)...)
	run.Stdin = os.Stdin
	run.Stdout = os.Stdout
	run.Stderr = os.Stderr
	if err := run.Run(); err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: fmt.Errorf("running editor %s: %w", argv[0], err)}
	}
	return nil
}
