package tree

import (
	"fmt"
	"path/filepath"

	"github.com/moduledev/cli/internal/core/module"
	"github.com/moduledev/cli/internal/core/versionkey"
	oerrors "github.com/moduledev/cli/internal/errors"
)

// Loader locates an existing module version and parses its descriptor.
type Loader struct {
	location
	name    string
	version string
}

// NewLoader returns a Loader for name at version. An empty version selects
// the latest available one; ErrNotFound is returned when there is none.
// Malformed names and versions fail with ErrValidation before the
// filesystem is touched.
func NewLoader(t *Tree, name, version string) (*Loader, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if version != "" {
		if err := validateVersion(version); err != nil {
			return nil, err
		}
	}

	l := &Loader{name: name, version: version}
	l.location = location{tree: t, ident: l}

	if version == "" {
		versions, err := l.AvailableVersions()
		if err != nil {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("no versions found for module %s", name),
				l.NameDir(), "")
		}
		latest, ok := versionkey.Max(versions)
		if !ok {
			return nil, oerrors.NewNotFoundError(
				fmt.Sprintf("no versions found for module %s", name),
				l.NameDir(), "")
		}
		l.version = latest
	}
	return l, nil
}

// Name returns the module name.
func (l *Loader) Name() string {
	return l.name
}

// Version returns the requested or resolved latest version.
func (l *Loader) Version() (string, error) {
	return l.version, nil
}

// IsTopLevel reports whether no version-level descriptor exists.
func (l *Loader) IsTopLevel() (bool, error) {
	return !exists(filepath.Join(l.NameDir(), l.version, module.DescriptorFileName)), nil
}

// CategoryName finds the category directory holding this module in the
// loader hierarchy.
func (l *Loader) CategoryName() (string, error) {
	matches, err := filepath.Glob(filepath.Join(l.tree.LoaderDir(), "*", l.name))
	if err != nil {
		return "", fmt.Errorf("searching loader hierarchy: %w", err)
	}
	if len(matches) == 0 {
		return "", oerrors.NewNotFoundError(
			fmt.Sprintf("module %s has no entry in the loader hierarchy", l.name),
			l.tree.LoaderDir(), "")
	}
	return filepath.Base(filepath.Dir(matches[0])), nil
}

// Load parses the descriptor file into a fresh descriptor and attaches it.
// Under module.ParseLenient the skipped lines are returned as diagnostics.
func (l *Loader) Load(policy module.ParsePolicy) ([]module.Diagnostic, error) {
	topLevel, err := l.IsTopLevel()
	if err != nil {
		return nil, err
	}
	category, err := l.CategoryName()
	if err != nil {
		return nil, err
	}
	path, err := l.DescriptorPath()
	if err != nil {
		return nil, err
	}

	d := module.New(l.name, l.version)
	d.TopLevel = topLevel
	d.Category = category

	res, err := module.ParseFile(path, d, policy)
	if err != nil {
		return nil, err
	}
	l.descriptor = d
	return res.Diagnostics, nil
}
