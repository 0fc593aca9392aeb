package module

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BaseDirToken is the placeholder for a module's install directory inside
// directive paths. The master loader file defines it for every module.
const BaseDirToken = "$basedir"

// Verb is the environment mutation a directive performs.
type Verb string

const (
	// VerbPrepend prepends the path to the variable.
	VerbPrepend Verb = "prepend-path"
	// VerbAppend appends the path to the variable.
	VerbAppend Verb = "append-path"
	// VerbSetenv sets the variable to the path.
	VerbSetenv Verb = "setenv"
)

// DefaultVariable is the variable a directive targets when none is given.
const DefaultVariable = "PATH"

// ParseVerb maps a short action ("prepend", "append", "set") or a full
// directive keyword to a Verb.
func ParseVerb(action string) (Verb, error) {
	switch action {
	case "prepend", string(VerbPrepend):
		return VerbPrepend, nil
	case "append", string(VerbAppend):
		return VerbAppend, nil
	case "set", string(VerbSetenv):
		return VerbSetenv, nil
	default:
		return "", fmt.Errorf("unknown path action %q (valid: prepend, append, set)", action)
	}
}

// PathDirective is one environment-variable mutation bound to a location
// relative to the module's install directory.
type PathDirective struct {
	Verb     Verb
	Variable string
	// Path is the placeholder-relative expression, e.g. "$basedir/bin".
	Path string
}

// NewPathDirective builds a directive for path. A path that already contains
// BaseDirToken is kept verbatim; anything else is reduced to its base name
// under BaseDirToken.
func NewPathDirective(path string, verb Verb, variable string) PathDirective {
	if verb == "" {
		verb = VerbPrepend
	}
	if variable == "" {
		variable = DefaultVariable
	}
	if !strings.Contains(path, BaseDirToken) {
		path = BaseDirToken + "/" + filepath.Base(filepath.Clean(path))
	}
	return PathDirective{Verb: verb, Variable: variable, Path: path}
}

// String renders the directive as a descriptor line. The path is quoted
// when it would not read back as a single word.
func (p PathDirective) String() string {
	return fmt.Sprintf("%s %s %s", p.Verb, p.Variable, quoteWord(p.Path))
}

// Resolve substitutes basedir for BaseDirToken.
func (p PathDirective) Resolve(basedir string) string {
	return strings.ReplaceAll(p.Path, BaseDirToken, basedir)
}

// SamePath reports whether two directives refer to the same resource.
// Only the path expressions are compared.
func (p PathDirective) SamePath(other PathDirective) bool {
	return p.Path == other.Path
}
