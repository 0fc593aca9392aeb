package module

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/moduledev/cli/internal/errors"
)

func TestValidName(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"pkg", true},
		{"my-tool_2", true},
		{"", false},
		{"with space", false},
		{"a/b", false},
		{"dot.name", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidName(tt.name))
		})
	}
}

func TestNewDescriptor(t *testing.T) {
	d := New("pkg", "1.0")
	assert.Equal(t, "pkg", d.Name)
	assert.Equal(t, "1.0", d.Version)
	assert.Equal(t, DefaultMaintainer, d.Maintainer)
	assert.True(t, d.TopLevel)
	assert.Equal(t, "pkg-1.0", d.String())
	assert.Zero(t, d.Vars.Len())
}

func TestVars(t *testing.T) {
	var v Vars
	v.Set("B", "1")
	v.Set("A", "2")
	v.Set("B", "3")

	assert.Equal(t, []string{"B", "A"}, v.Keys())
	got, ok := v.Get("B")
	assert.True(t, ok)
	assert.Equal(t, "3", got)

	_, ok = v.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, v.Len())
}

func TestNewPathDirective(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		verb     Verb
		variable string
		want     PathDirective
	}{
		{
			name: "absolute path reduced to base name",
			path: "/opt/src/bin",
			want: PathDirective{Verb: VerbPrepend, Variable: "PATH", Path: "$basedir/bin"},
		},
		{
			name: "trailing slash ignored",
			path: "/opt/src/lib/",
			verb: VerbAppend, variable: "LD_LIBRARY_PATH",
			want: PathDirective{Verb: VerbAppend, Variable: "LD_LIBRARY_PATH", Path: "$basedir/lib"},
		},
		{
			name: "placeholder path kept verbatim",
			path: "$basedir/share/man",
			verb: VerbPrepend, variable: "MANPATH",
			want: PathDirective{Verb: VerbPrepend, Variable: "MANPATH", Path: "$basedir/share/man"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPathDirective(tt.path, tt.verb, tt.variable))
		})
	}
}

func TestPathDirectiveResolve(t *testing.T) {
	p := NewPathDirective("bin", VerbAppend, "PATH")
	assert.Equal(t, "/tree/pkg/1.0/bin", p.Resolve("/tree/pkg/1.0"))
	assert.Equal(t, "append-path PATH $basedir/bin", p.String())
}

func TestPathDirectiveSamePath(t *testing.T) {
	a := PathDirective{Verb: VerbPrepend, Variable: "PATH", Path: "$basedir/bin"}
	b := PathDirective{Verb: VerbAppend, Variable: "OTHER", Path: "$basedir/bin"}
	c := PathDirective{Verb: VerbPrepend, Variable: "PATH", Path: "$basedir/lib"}

	assert.True(t, a.SamePath(b))
	assert.False(t, a.SamePath(c))
}

func TestParseVerb(t *testing.T) {
	tests := []struct {
		action  string
		want    Verb
		wantErr bool
	}{
		{"prepend", VerbPrepend, false},
		{"append", VerbAppend, false},
		{"set", VerbSetenv, false},
		{"append-path", VerbAppend, false},
		{"remove", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			got, err := ParseVerb(tt.action)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemovePath(t *testing.T) {
	d := New("pkg", "1.0")
	d.AddPath(NewPathDirective("bin", VerbPrepend, "PATH"))
	d.AddPath(NewPathDirective("lib", VerbPrepend, "LD_LIBRARY_PATH"))
	d.AddPath(NewPathDirective("bin", VerbAppend, "EXTRA"))

	assert.True(t, d.HasPath(NewPathDirective("bin", "", "")))

	removed := d.RemovePath(NewPathDirective("bin", "", ""))
	assert.Equal(t, 2, removed)
	require.Len(t, d.Paths, 1)
	assert.Equal(t, "$basedir/lib", d.Paths[0].Path)
	assert.False(t, d.HasPath(NewPathDirective("bin", "", "")))

	assert.Zero(t, d.RemovePath(NewPathDirective("missing", "", "")))
}

func TestParse(t *testing.T) {
	input := strings.Join([]string{
		`set MAINTAINER "Jane Doe"`,
		`set HELPTEXT "Some help"`,
		`set DESCRIPTION "A tool" ignored`,
		``,
		`set FOO "bar baz"`,
		`set FOO second`,
		`prepend-path PATH $basedir/bin`,
		`   conflict other   `,
		`append-path MANPATH $basedir/man`,
		`setenv TOOL_HOME $basedir`,
	}, "\n")

	d := New("pkg", "1.0")
	res, err := Parse(strings.NewReader(input), "test.modulefile", d, ParseStrict)
	require.NoError(t, err)
	assert.Same(t, d, res.Descriptor)
	assert.Empty(t, res.Diagnostics)

	assert.Equal(t, "Jane Doe", d.Maintainer)
	assert.Equal(t, "Some help", d.HelpText)
	assert.Equal(t, "A tool", d.Description)

	assert.Equal(t, []string{"FOO"}, d.Vars.Keys())
	foo, _ := d.Vars.Get("FOO")
	assert.Equal(t, "second", foo)

	assert.Equal(t, []PathDirective{
		{Verb: VerbPrepend, Variable: "PATH", Path: "$basedir/bin"},
		{Verb: VerbAppend, Variable: "MANPATH", Path: "$basedir/man"},
	}, d.Paths)

	assert.Equal(t, []string{"conflict other", "setenv TOOL_HOME $basedir"}, d.Commands)
}

func TestParseDoesNotDeduplicateDirectives(t *testing.T) {
	input := "prepend-path PATH $basedir/bin\nprepend-path PATH $basedir/bin\n"

	res, err := Parse(strings.NewReader(input), "f", nil, ParseStrict)
	require.NoError(t, err)
	assert.Len(t, res.Descriptor.Paths, 2)
}

func TestParseMalformedLines(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		message string
	}{
		{"short set", "set ONLYKEY", "unparsable line in f: set ONLYKEY"},
		{"short prepend", "prepend-path PATH", "unparsable line in f: prepend-path PATH"},
		{"unbalanced quote", `set FOO "unterminated`, "parse error in f:"},
	}

	for _, tt := range tests {
		t.Run(tt.name+" strict", func(t *testing.T) {
			input := "set MAINTAINER before\n" + tt.line + "\nset HELPTEXT after\n"
			d := New("pkg", "1.0")

			_, err := Parse(strings.NewReader(input), "f", d, ParseStrict)
			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrParse))

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, 2, perr.Diagnostic.Line)
			assert.Contains(t, perr.Diagnostic.Message, tt.message)

			assert.Equal(t, "before", d.Maintainer)
			assert.Empty(t, d.HelpText, "parsing stops at the bad line")
		})

		t.Run(tt.name+" lenient", func(t *testing.T) {
			input := "set MAINTAINER before\n" + tt.line + "\nset HELPTEXT after\n"
			d := New("pkg", "1.0")

			res, err := Parse(strings.NewReader(input), "f", d, ParseLenient)
			require.NoError(t, err)
			require.Len(t, res.Diagnostics, 1)
			assert.Equal(t, 2, res.Diagnostics[0].Line)
			assert.Contains(t, res.Diagnostics[0].Message, tt.message)
			assert.Equal(t, "f:2: "+res.Diagnostics[0].Message, res.Diagnostics[0].String())

			assert.Equal(t, "after", d.HelpText)
			assert.Empty(t, d.Commands, "bad line is neither interpreted nor passed through")
			assert.Empty(t, d.Paths)
			assert.Zero(t, d.Vars.Len())
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DescriptorFileName)
	require.NoError(t, os.WriteFile(path, []byte("set MAINTAINER m\n"), 0o644))

	res, err := ParseFile(path, nil, ParseStrict)
	require.NoError(t, err)
	assert.Equal(t, "m", res.Descriptor.Maintainer)

	_, err = ParseFile(filepath.Join(dir, "missing"), nil, ParseStrict)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDump(t *testing.T) {
	d := New("pkg", "1.0")
	d.Maintainer = "m"
	d.HelpText = "help"
	d.Description = "desc"
	d.Vars.Set("FOO", "bar")
	d.AddPath(NewPathDirective("bin", VerbAppend, "PATH"))
	d.Commands = append(d.Commands, "conflict other")

	want := strings.Join([]string{
		`set MAINTAINER "m"`,
		`set HELPTEXT "help"`,
		`set DESCRIPTION "desc"`,
		`set FOO "bar"`,
		`append-path PATH $basedir/bin`,
		`conflict other`,
	}, "\n") + "\n"

	assert.Equal(t, want, Dump(d))
}

func TestDumpEscapesQuotes(t *testing.T) {
	d := New("pkg", "1.0")
	d.HelpText = `say "hi" \ bye`

	out := Dump(d)
	assert.Contains(t, out, `set HELPTEXT "say \"hi\" \\ bye"`)

	reloaded := New("pkg", "1.0")
	_, err := Parse(strings.NewReader(out), "f", reloaded, ParseStrict)
	require.NoError(t, err)
	assert.Equal(t, d.HelpText, reloaded.HelpText)
}

func TestRoundTrip(t *testing.T) {
	d := New("pkg", "2.1b")
	d.Maintainer = "Jane Doe"
	d.HelpText = "multi word help"
	d.Description = "with 'single' quotes"
	d.Vars.Set("ZED", "last")
	d.Vars.Set("ALPHA", "first one")
	d.AddPath(NewPathDirective("/src/bin", VerbPrepend, "PATH"))
	d.AddPath(NewPathDirective("$basedir/lib64", VerbAppend, "LD_LIBRARY_PATH"))
	d.Commands = []string{"conflict other", "module load dep/1.0"}

	first := Dump(d)

	reloaded := New("pkg", "2.1b")
	_, err := Parse(strings.NewReader(first), "f", reloaded, ParseStrict)
	require.NoError(t, err)

	assert.Equal(t, d.Vars.Keys(), reloaded.Vars.Keys())
	assert.Equal(t, d.Paths, reloaded.Paths)
	assert.Equal(t, d.Commands, reloaded.Commands)
	assert.Equal(t, first, Dump(reloaded))
}

func TestParseEmptyQuotedValue(t *testing.T) {
	input := "set HELPTEXT \"\"\nset DESCRIPTION \"\"\nset FOO \"\"\n"

	d := New("pkg", "1.0")
	d.HelpText = "stale"
	res, err := Parse(strings.NewReader(input), "f", d, ParseStrict)
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	assert.Empty(t, d.HelpText)
	assert.Empty(t, d.Description)

	foo, ok := d.Vars.Get("FOO")
	require.True(t, ok)
	assert.Empty(t, foo)
}

func TestRoundTripEmptyValues(t *testing.T) {
	d := New("pkg", "1.0")
	d.Vars.Set("FOO", "")

	first := Dump(d)
	assert.Contains(t, first, `set HELPTEXT ""`)
	assert.Contains(t, first, `set FOO ""`)

	reloaded := New("pkg", "1.0")
	res, err := Parse(strings.NewReader(first), "f", reloaded, ParseStrict)
	require.NoError(t, err)
	assert.Empty(t, res.Diagnostics)
	assert.Equal(t, []string{"FOO"}, reloaded.Vars.Keys())
	assert.Equal(t, first, Dump(reloaded))
}

func TestDirectivePathWithSpecialCharacters(t *testing.T) {
	tests := []struct {
		name   string
		source string
		line   string
	}{
		{"plain", "/src/bin", `prepend-path PATH $basedir/bin`},
		{"space", "/src/my tools", `prepend-path PATH "$basedir/my tools"`},
		{"tab", "/src/a\tb", "prepend-path PATH \"$basedir/a\tb\""},
		{"quote", `/src/say"hi`, `prepend-path PATH "$basedir/say\"hi"`},
		{"single quote", "/src/it's", `prepend-path PATH "$basedir/it's"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New("pkg", "1.0")
			p := NewPathDirective(tt.source, VerbPrepend, "PATH")
			d.AddPath(p)
			assert.Equal(t, tt.line, p.String())

			first := Dump(d)
			reloaded := New("pkg", "1.0")
			_, err := Parse(strings.NewReader(first), "f", reloaded, ParseStrict)
			require.NoError(t, err)
			require.Len(t, reloaded.Paths, 1)
			assert.Equal(t, p, reloaded.Paths[0])
			assert.True(t, reloaded.Paths[0].SamePath(p))
			assert.Equal(t, first, Dump(reloaded))
		})
	}
}
