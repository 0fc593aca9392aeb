// Package tree manages a module tree on disk: a content hierarchy holding
// module install directories and descriptors next to a loader hierarchy of
// symlinks into the tree's master loader file.
//
// Layout under the root:
//
//	module/<label>_modulefile           master loader file
//	modulefile/<category>/<name>/<ver>  symlink to the master loader file
//	<name>/.modulefile                  descriptor of a top-level module
//	<name>/<ver>/                       install directory
//	<name>/<ver>/.modulefile            descriptor of a detached module
package tree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moduledev/cli/internal/core/module"
	"github.com/moduledev/cli/internal/core/versionkey"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
	"github.com/moduledev/cli/internal/templates"
)

// Reserved entries directly under the root.
const (
	ContentDirName = "module"
	LoaderDirName  = "modulefile"
)

var (
	// ErrNotSetUp is returned when the content area holds no master loader
	// file.
	ErrNotSetUp = fmt.Errorf("module tree is not set up: %w", oerrors.ErrPrecondition)

	// ErrMultipleMasterFiles is returned when the content area holds more
	// than one master loader file.
	ErrMultipleMasterFiles = fmt.Errorf("multiple master loader files: %w", oerrors.ErrPrecondition)
)

// Tree is a module tree rooted at an absolute directory.
type Tree struct {
	root string
}

// New returns a Tree rooted at root, made absolute. Nothing is created.
func New(root string) (*Tree, error) {
	if root == "" {
		return nil, oerrors.NewPreconditionError("module tree root is not set", "",
			"pass --root or set it with 'moduledev config set root <dir>'")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving tree root %s: %w", root, err)
	}
	return &Tree{root: abs}, nil
}

// Root returns the absolute root directory.
func (t *Tree) Root() string {
	return t.root
}

// ContentDir returns root/module.
func (t *Tree) ContentDir() string {
	return filepath.Join(t.root, ContentDirName)
}

// LoaderDir returns root/modulefile.
func (t *Tree) LoaderDir() string {
	return filepath.Join(t.root, LoaderDirName)
}

// MasterLoaderFile returns the single master loader file of the tree.
func (t *Tree) MasterLoaderFile() (string, error) {
	matches, err := filepath.Glob(filepath.Join(t.ContentDir(), "*"+templates.MasterFileSuffix))
	if err != nil {
		return "", fmt.Errorf("searching master loader file: %w", err)
	}
	switch len(matches) {
	case 0:
		return "", ErrNotSetUp
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = filepath.Base(m)
		}
		return "", fmt.Errorf("%w in %s: %s", ErrMultipleMasterFiles, t.ContentDir(), strings.Join(names, ", "))
	}
}

// Label returns the repository label encoded in the master loader file
// name. It is the default category of new modules.
func (t *Tree) Label() (string, error) {
	master, err := t.MasterLoaderFile()
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(filepath.Base(master), templates.MasterFileSuffix), nil
}

// IsValid reports whether the root and both hierarchies are writable
// directories and exactly one master loader file exists.
func (t *Tree) IsValid() bool {
	if !writableDir(t.root) || !writableDir(t.LoaderDir()) || !writableDir(t.ContentDir()) {
		return false
	}
	_, err := t.MasterLoaderFile()
	return err == nil
}

// CanSetup reports whether the root is an empty writable directory.
func (t *Tree) CanSetup() bool {
	return writableDir(t.root) && isEmptyDir(t.root)
}

// Setup creates both hierarchies and the master loader file
// <label>_modulefile. The root must be an empty writable directory.
func (t *Tree) Setup(label string) error {
	if !module.ValidName(label) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid repository label %q", label), "",
			"labels may contain letters, digits, '-' and '_'")
	}
	if !t.CanSetup() {
		return oerrors.NewPreconditionError(
			"module tree must be set up in an empty, writable directory", t.root, "")
	}

	content, err := templates.RenderMaster(templates.MasterData{Root: t.root})
	if err != nil {
		return err
	}
	if err := os.Mkdir(t.LoaderDir(), 0o755); err != nil {
		return fmt.Errorf("creating loader hierarchy: %w", err)
	}
	if err := os.Mkdir(t.ContentDir(), 0o755); err != nil {
		return fmt.Errorf("creating content hierarchy: %w", err)
	}
	master := filepath.Join(t.ContentDir(), templates.MasterFileName(label))
	if err := os.WriteFile(master, content, 0o644); err != nil {
		return fmt.Errorf("writing master loader file: %w", err)
	}
	output.Debug("set up module tree", "root", t.root, "master", master)
	return nil
}

func validateName(name string) error {
	if !module.ValidName(name) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid module name %q", name), "",
			"names may contain letters, digits, '-' and '_'")
	}
	return nil
}

func validateVersion(version string) error {
	if !versionkey.IsValid(version) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid version %q", version), "",
			"versions are '.' or '-' separated numbers, each optionally followed by one letter")
	}
	return nil
}

func validateIdentity(d *module.Descriptor) error {
	if err := validateName(d.Name); err != nil {
		return err
	}
	if err := validateVersion(d.Version); err != nil {
		return err
	}
	if d.Category != "" && !module.ValidName(d.Category) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid category %q", d.Category), "", "")
	}
	return nil
}

// InitModule builds d in the tree. When files already occupy its place the
// call fails with ErrCollision unless overwrite is set, in which case the
// old version is cleared first.
func (t *Tree) InitModule(d *module.Descriptor, overwrite bool) (*Builder, error) {
	if err := validateIdentity(d); err != nil {
		return nil, err
	}
	if _, err := t.MasterLoaderFile(); err != nil {
		return nil, err
	}

	b := NewBuilder(t, d)
	clean, err := b.IsClean()
	if err != nil {
		return nil, err
	}
	if !clean {
		if !overwrite {
			return nil, oerrors.NewCollisionError(
				fmt.Sprintf("files exist in the module tree where %s should be", d), t.root,
				"use --force to overwrite")
		}
		if err := b.Clear(); err != nil {
			return nil, fmt.Errorf("clearing %s: %w", d, err)
		}
	}

	if err := b.Build(); err != nil {
		return nil, fmt.Errorf("building %s: %w", d, err)
	}
	return b, nil
}

// IsModuleClean reports whether nothing is in place where d would be
// built.
func (t *Tree) IsModuleClean(d *module.Descriptor) (bool, error) {
	return NewBuilder(t, d).IsClean()
}

// ModuleExists reports whether name at version is a valid module. An empty
// version checks the latest.
func (t *Tree) ModuleExists(name, version string) bool {
	l, err := NewLoader(t, name, version)
	if err != nil {
		return false
	}
	return l.IsValid()
}

// LoadModule locates and parses name at version. An empty version loads the
// latest.
func (t *Tree) LoadModule(name, version string, policy module.ParsePolicy) (*Loader, []module.Diagnostic, error) {
	l, err := NewLoader(t, name, version)
	if err != nil {
		return nil, nil, err
	}
	if !l.IsValid() {
		return nil, nil, oerrors.NewNotFoundError(
			fmt.Sprintf("module %s-%s does not appear to be a valid module", name, l.version),
			t.root, "")
	}
	diags, err := l.Load(policy)
	if err != nil {
		return nil, diags, err
	}
	return l, diags, nil
}

// ModuleNames lists the module name directories under the root in
// directory order.
func (t *Tree) ModuleNames() ([]string, error) {
	entries, err := os.ReadDir(t.root)
	if err != nil {
		return nil, fmt.Errorf("listing module tree: %w", err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if name == ContentDirName || name == LoaderDirName || !e.IsDir() || !module.ValidName(name) {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// AvailableVersions lists the entries under root/<name> that are valid
// versions, in directory order.
func (t *Tree) AvailableVersions(name string) ([]string, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(filepath.Join(t.root, name))
	if err != nil {
		return nil, fmt.Errorf("listing versions of %s: %w", name, err)
	}

	var versions []string
	for _, e := range entries {
		if versionkey.IsValid(e.Name()) {
			versions = append(versions, e.Name())
		}
	}
	return versions, nil
}

// ListModules returns an iterator over the latest version of every module,
// or over every version when allVersions is set.
func (t *Tree) ListModules(allVersions bool, policy module.ParsePolicy) *ModuleIterator {
	it := &ModuleIterator{tree: t, allVersions: allVersions, policy: policy}
	if !t.IsValid() {
		it.err = fmt.Errorf("listing modules: %w", ErrNotSetUp)
		if _, err := t.MasterLoaderFile(); errors.Is(err, ErrMultipleMasterFiles) {
			it.err = fmt.Errorf("listing modules: %w", err)
		}
		it.done = true
		return it
	}
	names, err := t.ModuleNames()
	if err != nil {
		it.err = err
		it.done = true
		return it
	}
	it.names = names
	return it
}
