package mod

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/config"
	"github.com/moduledev/cli/internal/core/module"
	"github.com/moduledev/cli/internal/core/tree"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
)

// initOptions holds the init-specific flags.
type initOptions struct {
	force    bool
	category string
	detached bool
}

// NewInitCmd creates the init command.
func NewInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var opts initOptions

	c := &cobra.Command{
		Use:   "init <name> <version> [helptext] [description]",
		Short: "Create a module or a new module version",
		Long: `Create a module, or add a version to an existing one.

For a tree labelled "lab", 'moduledev init hello 1.0' creates:

  <root>/hello/.modulefile
  <root>/hello/1.0/
  <root>/modulefile/lab/hello/1.0 -> <root>/module/lab_modulefile

Paths can then be added with 'moduledev path add'. Run 'moduledev setup'
before this command.

Examples:
  # Create hello 1.0 with a help text
  moduledev init hello 1.0 "Prints a greeting"

  # File the module under another category
  moduledev init --category tools hello 1.0

  # Keep the descriptor inside the version directory
  moduledev init --detached hello 2.0

  # Replace an existing version
  moduledev init --force hello 1.0`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(c *cobra.Command, args []string) error {
			return runInit(args, cfg, &opts)
		},
	}

	c.Flags().BoolVar(&opts.force, "force", false,
		"Overwrite files where the module should be installed")
	c.Flags().StringVar(&opts.category, "category", "",
		"Loader category (default: from config, then the tree label)")
	c.Flags().BoolVar(&opts.detached, "detached", false,
		"Store the descriptor in the version directory instead of sharing it")

	return c
}

func runInit(args []string, cfg *cmdtypes.GlobalConfig, opts *initOptions) error {
	t, err := cmdutil.OpenTree(cfg)
	if err != nil {
		return err
	}

	if cfg.Maintainer.Source == config.SourceDefault {
		output.Warn(fmt.Sprintf("maintainer not set; defaulting to %s", cfg.Maintainer.Value))
	}

	d := module.New(args[0], args[1])
	d.Maintainer = cmdutil.SanitizeInfo("maintainer", cfg.Maintainer.Value)
	if len(args) > 2 {
		d.HelpText = cmdutil.SanitizeInfo("helptext", args[2])
	}
	if len(args) > 3 {
		d.Description = cmdutil.SanitizeInfo("description", args[3])
	}
	d.Category = config.ResolveCategory(opts.category, cfg.FileConfig()).Value
	d.TopLevel = !opts.detached

	modLog := output.ModuleLogger(d.Name)
	b, err := t.InitModule(d, opts.force)
	if err != nil {
		modLog.Error("init failed", "version", d.Version, "error", err)
		return &cmdtypes.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err, Printed: true}
	}

	install, err := b.InstallPath()
	if err != nil {
		return cmdutil.Exit(err)
	}
	entries, err := createdEntries(t.Root(), b)
	if err != nil {
		return cmdutil.Exit(err)
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("Created module %s in %s",
		cmdutil.FormatModule(d), install)))
	output.Println("")
	output.Print(output.RenderFileTree(t.Root(), entries))
	return nil
}

// createdEntries lists the paths init created, relative to root.
func createdEntries(root string, b *tree.Builder) ([]output.TreeEntry, error) {
	install, err := b.InstallPath()
	if err != nil {
		return nil, err
	}
	descriptor, err := b.DescriptorPath()
	if err != nil {
		return nil, err
	}
	link, err := b.LoaderLinkPath()
	if err != nil {
		return nil, err
	}

	entries := []output.TreeEntry{
		{Path: install, Description: "install directory", Dir: true},
		{Path: descriptor, Description: "module descriptor"},
		{Path: link, Description: "loader link"},
	}
	for i := range entries {
		rel, err := filepath.Rel(root, entries[i].Path)
		if err != nil {
			return nil, err
		}
		entries[i].Path = filepath.ToSlash(rel)
	}
	return entries, nil
}
