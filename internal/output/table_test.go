package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	plainColors(t)

	out := newTable("A", "B").Row("1", "2").Row("3", "4").String()
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "4")
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestRenderModuleTable(t *testing.T) {
	plainColors(t)

	out := RenderModuleTable([]ModuleRow{
		{Name: "gcc", Version: "12.1", Category: "lab", Status: StatusValid},
		{Name: "cmake", Version: "3.27", Category: "tools", Status: StatusValid},
	})
	for _, want := range []string{"NAME", "VERSION", "CATEGORY", "STATUS", "gcc", "12.1", "tools", "valid"} {
		assert.Contains(t, out, want)
	}
	// Header, both rows and the border lines.
	assert.Len(t, strings.Split(out, "\n"), 6)
}

func TestRenderDirectiveTable(t *testing.T) {
	plainColors(t)

	out := RenderDirectiveTable([]DirectiveRow{
		{Verb: "prepend-path", Variable: "PATH", Path: "$basedir/bin", Resolved: "/tree/foo/1.0/bin"},
	})
	assert.Contains(t, out, "ACTION")
	assert.Contains(t, out, "prepend-path")
	assert.Contains(t, out, "/tree/foo/1.0/bin")
}
