package cmdutil

import (
	"fmt"
	"strings"

	"github.com/moduledev/cli/internal/core/module"
	"github.com/moduledev/cli/internal/output"
)

var newlineReplacer = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// SanitizeInfo replaces line breaks in a one-line descriptor field with
// spaces, warning when it had to.
func SanitizeInfo(field, value string) string {
	clean := newlineReplacer.Replace(value)
	if clean != value {
		output.Warn("Newlines not allowed in "+field+", replacing with spaces", "field", field)
	}
	return clean
}

// FormatModule renders "<name> <version>" for status lines.
func FormatModule(d *module.Descriptor) string {
	return fmt.Sprintf("%s %s", output.StyleNoun.Render(d.Name), output.StyleNoun.Render(d.Version))
}

// DirectiveRows converts the path directives of d into table rows resolved
// against installPath.
func DirectiveRows(d *module.Descriptor, installPath string) []output.DirectiveRow {
	rows := make([]output.DirectiveRow, 0, len(d.Paths))
	for _, p := range d.Paths {
		rows = append(rows, output.DirectiveRow{
			Verb:     string(p.Verb),
			Variable: p.Variable,
			Path:     p.Path,
			Resolved: p.Resolve(installPath),
		})
	}
	return rows
}
