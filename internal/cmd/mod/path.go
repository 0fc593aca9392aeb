package mod

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/core/module"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
)

// NewPathCmd creates the path command group.
func NewPathCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "path",
		Short: "Add, remove, or show the paths of a module",
		Long:  `Manage the path directives of a module and the files they point at.`,
	}

	c.AddCommand(
		NewPathAddCmd(cfg),
		NewPathRemoveCmd(cfg),
		NewPathViewCmd(cfg),
	)

	return c
}

// pathAddOptions holds the path add flags.
type pathAddOptions struct {
	action    string
	copy      bool
	overwrite bool
}

// NewPathAddCmd creates the path add command.
func NewPathAddCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var vf cmdutil.VersionFlag
	var pf cmdutil.ParseFlags
	var opts pathAddOptions

	c := &cobra.Command{
		Use:   "add <name> <variable> <src>",
		Short: "Add or update a path of a module",
		Long: `Place src in the install directory of a module and add a directive
binding it to an environment variable.

src is linked by default; --copy copies it recursively instead.

Examples:
  # Append <install>/bin to PATH
  moduledev path add hello PATH ./build/bin

  # Prepend a copied library directory to LD_LIBRARY_PATH of version 1.0
  moduledev path add --version 1.0 --copy --action prepend hello LD_LIBRARY_PATH ./lib`,
		Args: cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			return runPathAdd(args, cfg, &vf, &pf, &opts)
		},
	}

	vf.AddTo(c)
	pf.AddTo(c)
	c.Flags().StringVar(&opts.action, "action", "append",
		"How the variable is changed: prepend or append")
	c.Flags().BoolVar(&opts.copy, "copy", false,
		"Copy the files contained in the path (default is to create a symlink)")
	c.Flags().BoolVar(&opts.overwrite, "overwrite", false,
		"Overwrite an old path if it exists")

	return c
}

func runPathAdd(args []string, cfg *cmdtypes.GlobalConfig, vf *cmdutil.VersionFlag, pf *cmdutil.ParseFlags, opts *pathAddOptions) error {
	name, variable, src := args[0], args[1], args[2]

	// setenv lines read back as pass-through commands, so only the path
	// verbs are offered.
	verb, err := module.ParseVerb(opts.action)
	if err != nil || verb == module.VerbSetenv {
		return cmdutil.Exit(oerrors.NewValidationError(
			fmt.Sprintf("unknown path action %q", opts.action), "", "valid actions: prepend, append"))
	}

	_, l, err := cmdutil.LoadModule(cfg, name, vf.Version, pf.Policy(cfg.FileConfig()))
	if err != nil {
		return err
	}

	if _, err := os.Stat(src); err != nil {
		return cmdutil.Exit(oerrors.NewNotFoundError(
			fmt.Sprintf("Source path %s does not exist", src), src, ""))
	}

	d := l.Descriptor()
	p := module.NewPathDirective(src, verb, variable)
	present, err := l.PathExists(p)
	if err != nil {
		return cmdutil.Exit(err)
	}
	switch {
	case present && !opts.overwrite:
		return cmdutil.Exit(oerrors.NewCollisionError(
			fmt.Sprintf("Path %s already exists", p.Path), "", "Use --overwrite to force."))
	case present:
		if err := l.RemovePath(p); err != nil {
			return cmdutil.Exit(err)
		}
	case d.HasPath(p):
		// Directive without files behind it.
		d.RemovePath(p)
	}

	if err := l.AddPath(src, p, !opts.copy); err != nil {
		return cmdutil.Exit(err)
	}
	if err := l.SaveDescriptor(); err != nil {
		return cmdutil.Exit(err)
	}

	action := "Linked"
	if opts.copy {
		action = "Copied"
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("%s %s into %s as %s",
		action, src, cmdutil.FormatModule(d), output.StyleDim.Render(p.String()))))
	return nil
}

// NewPathRemoveCmd creates the path remove command.
func NewPathRemoveCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var vf cmdutil.VersionFlag
	var pf cmdutil.ParseFlags

	c := &cobra.Command{
		Use:   "remove <name> <src>",
		Short: "Remove a path from a module",
		Long: `Delete the entry src names in the install directory of a module and
drop every directive pointing at it.

Only the base name of src matters.

Examples:
  moduledev path remove hello bin`,
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runPathRemove(args, cfg, &vf, &pf)
		},
	}

	vf.AddTo(c)
	pf.AddTo(c)

	return c
}

func runPathRemove(args []string, cfg *cmdtypes.GlobalConfig, vf *cmdutil.VersionFlag, pf *cmdutil.ParseFlags) error {
	name, src := args[0], args[1]

	_, l, err := cmdutil.LoadModule(cfg, name, vf.Version, pf.Policy(cfg.FileConfig()))
	if err != nil {
		return err
	}

	d := l.Descriptor()
	p := module.NewPathDirective(src, "", "")
	present, err := l.PathExists(p)
	if err != nil {
		return cmdutil.Exit(err)
	}
	switch {
	case present:
		if err := l.RemovePath(p); err != nil {
			return cmdutil.Exit(err)
		}
	case d.HasPath(p):
		d.RemovePath(p)
	default:
		return cmdutil.Exit(oerrors.NewNotFoundError(
			fmt.Sprintf("Path %s not found in module %s", p.Path, d), "", ""))
	}

	if err := l.SaveDescriptor(); err != nil {
		return cmdutil.Exit(err)
	}
	output.Println(output.FormatCheckmark(fmt.Sprintf("Removed %s from %s",
		output.StyleDim.Render(p.Path), cmdutil.FormatModule(d))))
	return nil
}

// NewPathViewCmd creates the path view command.
func NewPathViewCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var vf cmdutil.VersionFlag
	var pf cmdutil.ParseFlags
	var outputFlag string

	c := &cobra.Command{
		Use:   "view <name>",
		Short: "List the paths of a module",
		Long: `List every path directive of a module with the location it resolves to.

Output formats:
  text   one "<directive> -> <resolved>" line per path (default)
  table  aligned table`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPathView(args, cfg, &vf, &pf, outputFlag)
		},
	}

	vf.AddTo(c)
	pf.AddTo(c)
	c.Flags().StringVarP(&outputFlag, "output", "o", output.FormatText.String(),
		"Output format (text, table)")

	return c
}

func runPathView(args []string, cfg *cmdtypes.GlobalConfig, vf *cmdutil.VersionFlag, pf *cmdutil.ParseFlags, value string) error {
	format, err := parseFormat(value, output.FormatText, output.FormatTable)
	if err != nil {
		return err
	}

	_, l, err := cmdutil.LoadModule(cfg, args[0], vf.Version, pf.Policy(cfg.FileConfig()))
	if err != nil {
		return err
	}
	install, err := l.InstallPath()
	if err != nil {
		return cmdutil.Exit(err)
	}

	d := l.Descriptor()
	if format == output.FormatTable {
		output.Println(output.RenderDirectiveTable(cmdutil.DirectiveRows(d, install)))
		return nil
	}

	lines := make([]string, 0, len(d.Paths))
	for _, p := range d.Paths {
		lines = append(lines, fmt.Sprintf("%s -> %s", p, p.Resolve(install)))
	}
	if len(lines) > 0 {
		output.Println(strings.Join(lines, "\n"))
	}
	return nil
}
