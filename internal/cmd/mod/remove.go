package mod

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/core/tree"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
)

// removeOptions holds the remove flags.
type removeOptions struct {
	force bool
	all   bool
}

// NewRemoveCmd creates the remove command.
func NewRemoveCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var vf cmdutil.VersionFlag
	var opts removeOptions

	c := &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a module version from the tree",
		Long: `Remove the install directory and loader link of a module version.

When the last version goes, the module's directories in both hierarchies are
removed as well.

Examples:
  # Remove the latest version after confirmation
  moduledev remove hello

  # Remove every version without asking
  moduledev rm --all --force hello`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runRemove(c.InOrStdin(), args, cfg, &vf, &opts)
		},
	}

	vf.AddTo(c)
	c.Flags().BoolVar(&opts.force, "force", false,
		"Skip confirmation prompt")
	c.Flags().BoolVar(&opts.all, "all", false,
		"Remove every version of the module")

	return c
}

func runRemove(in io.Reader, args []string, cfg *cmdtypes.GlobalConfig, vf *cmdutil.VersionFlag, opts *removeOptions) error {
	name := args[0]
	if opts.all && vf.Version != "" {
		return cmdutil.Exit(oerrors.NewValidationError("--all and --version are mutually exclusive", "", ""))
	}

	t, err := cmdutil.OpenTree(cfg)
	if err != nil {
		return err
	}

	versions := []string{vf.Version}
	if opts.all {
		versions, err = t.AvailableVersions(name)
		if err != nil {
			versions = nil
		}
	}

	loaders := make([]*tree.Loader, 0, len(versions))
	for _, v := range versions {
		l, err := tree.NewLoader(t, name, v)
		if err != nil || !l.IsValid() {
			return cmdutil.Exit(oerrors.NewNotFoundError(
				fmt.Sprintf("Module %s does not exist", cmdutil.ModuleRef(name, v)), t.Root(), ""))
		}
		loaders = append(loaders, l)
	}
	if len(loaders) == 0 {
		return cmdutil.Exit(oerrors.NewNotFoundError(
			fmt.Sprintf("Module %s does not exist", name), t.Root(), ""))
	}

	modLog := output.ModuleLogger(name)
	if !opts.force && !confirmRemove(in, name, len(loaders), loaders[0]) {
		modLog.Info("removal canceled")
		return nil
	}

	for _, l := range loaders {
		version, _ := l.Version()
		if err := l.Clear(); err != nil {
			modLog.Error("remove failed", "version", version, "error", err)
			return &cmdtypes.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
		}
		output.Println(output.FormatStatusLine(name+" "+version, output.StatusRemoved))
	}
	return nil
}

func confirmRemove(in io.Reader, name string, count int, l *tree.Loader) bool {
	prompt := fmt.Sprintf("Remove all %d versions of %q? [y/N]: ", count, name)
	if count == 1 {
		version, _ := l.Version()
		prompt = fmt.Sprintf("Remove %s %s? [y/N]: ", name, version)
	}

	output.Prompt(prompt)
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		answer := strings.TrimSpace(strings.ToLower(scanner.Text()))
		return answer == "y" || answer == "yes"
	}
	return false
}
