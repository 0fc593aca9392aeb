// Package templates provides the embedded master loader file and its
// rendering.
package templates

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed master_modulefile.tmpl
var masterModulefile string

// MasterFileSuffix is appended to the repository label to name the master
// loader file.
const MasterFileSuffix = "_modulefile"

// MasterData contains data for rendering the master loader file.
type MasterData struct {
	// Root is the absolute root of the module tree. Every loader link
	// resolves module content relative to it.
	Root string
}

var masterTemplate = template.Must(template.New("master_modulefile").Parse(masterModulefile))

// RenderMaster renders the master loader file for a tree rooted at
// data.Root.
func RenderMaster(data MasterData) ([]byte, error) {
	if data.Root == "" {
		return nil, fmt.Errorf("rendering master loader file: empty root")
	}

	var buf bytes.Buffer
	if err := masterTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing master loader template: %w", err)
	}
	return buf.Bytes(), nil
}

// MasterFileName returns the master loader file name for label.
func MasterFileName(label string) string {
	return label + MasterFileSuffix
}
