package mod

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/cmdutil"
	"github.com/moduledev/cli/internal/core/module"
	"github.com/moduledev/cli/internal/core/versionkey"
	"github.com/moduledev/cli/internal/output"
)

// listOptions holds the list flags.
type listOptions struct {
	all    bool
	sorted bool
	output string
}

// listEntry is one module in YAML output.
type listEntry struct {
	Name     string `yaml:"name"`
	Version  string `yaml:"version"`
	Category string `yaml:"category,omitempty"`
}

var listFormats = []output.OutputFormat{output.FormatText, output.FormatTable, output.FormatYAML}

// NewListCmd creates the list command.
func NewListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var pf cmdutil.ParseFlags
	var opts listOptions

	c := &cobra.Command{
		Use:   "list",
		Short: "Show all available modules",
		Long: `Show the modules of the tree, one "<name> <version>" line each.

Only the latest version of each module is shown unless --all is given.
Modules come in directory order unless --sorted is given.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runList(cfg, &pf, &opts)
		},
	}

	pf.AddTo(c)
	c.Flags().BoolVar(&opts.all, "all", false,
		"Show all versions of each module (default is the latest only)")
	c.Flags().BoolVar(&opts.sorted, "sorted", false,
		"Sort by name, then by version")
	c.Flags().StringVarP(&opts.output, "output", "o", output.FormatText.String(),
		"Output format ("+output.FormatNames(listFormats...)+")")

	return c
}

func runList(cfg *cmdtypes.GlobalConfig, pf *cmdutil.ParseFlags, opts *listOptions) error {
	format, err := parseFormat(opts.output, listFormats...)
	if err != nil {
		return err
	}

	t, err := cmdutil.OpenTree(cfg)
	if err != nil {
		return err
	}

	var modules []*module.Descriptor
	it := t.ListModules(opts.all, pf.Policy(cfg.FileConfig()))
	for it.Next() {
		cmdutil.WarnDiagnostics(it.Diagnostics())
		modules = append(modules, it.Descriptor())
	}
	if err := it.Err(); err != nil {
		return cmdutil.Exit(err)
	}

	if opts.sorted {
		slices.SortStableFunc(modules, compareModules)
	}

	switch format {
	case output.FormatYAML:
		entries := make([]listEntry, 0, len(modules))
		for _, d := range modules {
			entries = append(entries, listEntry{Name: d.Name, Version: d.Version, Category: d.Category})
		}
		data, err := yaml.Marshal(entries)
		if err != nil {
			return cmdutil.Exit(fmt.Errorf("encoding module list: %w", err))
		}
		output.Print(string(data))
		return nil
	case output.FormatTable:
		rows := make([]output.ModuleRow, 0, len(modules))
		for _, d := range modules {
			rows = append(rows, output.ModuleRow{
				Name:     d.Name,
				Version:  d.Version,
				Category: d.Category,
				Status:   output.StatusValid,
			})
		}
		output.Println(output.RenderModuleTable(rows))
		return nil
	}

	lines := make([]string, 0, len(modules))
	for _, d := range modules {
		lines = append(lines, fmt.Sprintf("%s %s", d.Name, d.Version))
	}
	if len(lines) > 0 {
		output.Println(strings.Join(lines, "\n"))
	}
	return nil
}

func compareModules(a, b *module.Descriptor) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	switch {
	case versionkey.Less(a.Version, b.Version):
		return -1
	case versionkey.Less(b.Version, a.Version):
		return 1
	default:
		return 0
	}
}
