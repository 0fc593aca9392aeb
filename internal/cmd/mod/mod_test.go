package mod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/core/module"
	"github.com/moduledev/cli/internal/core/tree"
	"github.com/moduledev/cli/internal/output"
	"github.com/moduledev/cli/internal/testutil"
)

func TestNewCommands(t *testing.T) {
	cmds := NewCommands(&cmdtypes.GlobalConfig{})
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"setup", "init", "path", "show", "edit", "location",
		"list", "versions", "remove", "check"}, names)
}

func TestInitCmd_FlagsExist(t *testing.T) {
	cmd := NewInitCmd(&cmdtypes.GlobalConfig{})
	assert.Equal(t, "init <name> <version> [helptext] [description]", cmd.Use)

	f := cmd.Flags()
	assert.NotNil(t, f.Lookup("force"))
	assert.NotNil(t, f.Lookup("category"))
	assert.NotNil(t, f.Lookup("detached"))
}

func TestInitCmd_Args(t *testing.T) {
	cmd := NewInitCmd(&cmdtypes.GlobalConfig{})
	assert.Error(t, cmd.Args(cmd, []string{"only-name"}))
	assert.NoError(t, cmd.Args(cmd, []string{"foo", "1.0", "help", "desc"}))
	assert.Error(t, cmd.Args(cmd, []string{"foo", "1.0", "help", "desc", "extra"}))
}

func TestPathAddCmd_FlagsExist(t *testing.T) {
	cmd := NewPathAddCmd(&cmdtypes.GlobalConfig{})
	f := cmd.Flags()

	action := f.Lookup("action")
	require.NotNil(t, action)
	assert.Equal(t, "append", action.DefValue)
	assert.NotNil(t, f.Lookup("version"))
	assert.NotNil(t, f.Lookup("copy"))
	assert.NotNil(t, f.Lookup("overwrite"))
	assert.NotNil(t, f.Lookup("lenient"))
}

func TestPathCmd_Subcommands(t *testing.T) {
	cmd := NewPathCmd(&cmdtypes.GlobalConfig{})
	for _, name := range []string{"add", "remove", "view"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
}

func TestPathAdd_RejectsSetenv(t *testing.T) {
	cmd := NewPathAddCmd(&cmdtypes.GlobalConfig{})
	cmd.SetArgs([]string{"--action", "set", "foo", "PATH", "bin"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown path action")
}

func TestRemoveCmd_Alias(t *testing.T) {
	cmd := NewRemoveCmd(&cmdtypes.GlobalConfig{})
	assert.Contains(t, cmd.Aliases, "rm")
	assert.NotNil(t, cmd.Flags().Lookup("force"))
	assert.NotNil(t, cmd.Flags().Lookup("all"))
}

func TestListCmd_BadFormat(t *testing.T) {
	cmd := NewListCmd(&cmdtypes.GlobalConfig{})
	cmd.SetArgs([]string{"-o", "json"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCompareModules(t *testing.T) {
	a := module.New("a", "1.10")
	b := module.New("a", "1.2")
	c := module.New("b", "0.1")

	assert.Equal(t, 1, compareModules(a, b))
	assert.Equal(t, -1, compareModules(b, a))
	assert.Equal(t, -1, compareModules(a, c))
	assert.Equal(t, 0, compareModules(a, a))
}

func TestCreatedEntries(t *testing.T) {
	mt := testutil.SetupTree(t, "lab")

	d := module.New("foo", "1.0")
	entries, err := createdEntries(mt.Root(), tree.NewBuilder(mt, d))
	require.NoError(t, err)
	assert.Equal(t, []output.TreeEntry{
		{Path: "foo/1.0", Description: "install directory", Dir: true},
		{Path: "foo/.modulefile", Description: "module descriptor"},
		{Path: "modulefile/lab/foo/1.0", Description: "loader link"},
	}, entries)

	d = module.New("bar", "2.0")
	d.TopLevel = false
	d.Category = "tools"
	entries, err = createdEntries(mt.Root(), tree.NewBuilder(mt, d))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "bar/2.0/.modulefile", entries[1].Path)
	assert.Equal(t, "modulefile/tools/bar/2.0", entries[2].Path)
}
