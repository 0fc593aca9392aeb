package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(ColorDimGray)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorBlue)
	tableCellStyle   = lipgloss.NewStyle().PaddingRight(1)
)

// newTable returns a bordered table with the CLI's header and cell styles.
// The rendered string has no trailing newline.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
}

// ModuleRow is one line of the module listing.
type ModuleRow struct {
	Name     string
	Version  string
	Category string
	Status   string
}

// RenderModuleTable renders the module listing with color-coded statuses.
func RenderModuleTable(rows []ModuleRow) string {
	t := newTable("NAME", "VERSION", "CATEGORY", "STATUS")
	for _, r := range rows {
		t.Row(r.Name, r.Version, r.Category, StatusStyle(r.Status).Render(r.Status))
	}
	return t.String()
}

// DirectiveRow is one path directive of a module.
type DirectiveRow struct {
	Verb     string
	Variable string
	Path     string
	Resolved string
}

// RenderDirectiveTable renders the path directives of a module next to the
// filesystem locations they resolve to.
func RenderDirectiveTable(rows []DirectiveRow) string {
	t := newTable("ACTION", "VARIABLE", "PATH", "RESOLVED")
	for _, r := range rows {
		t.Row(r.Verb, r.Variable, r.Path, StyleNoun.Render(r.Resolved))
	}
	return t.String()
}
