package tree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/moduledev/cli/internal/core/module"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
)

// Identity is what a module location must know about itself. Builder takes
// the answers from an in-memory descriptor; Loader discovers them on disk.
type Identity interface {
	CategoryName() (string, error)
	IsTopLevel() (bool, error)
	Name() string
	Version() (string, error)
}

// location holds the path and IO logic shared by Builder and Loader. Every
// method goes through ident, so the two variants differ only in how they
// answer Identity.
type location struct {
	tree       *Tree
	ident      Identity
	descriptor *module.Descriptor
}

// Descriptor returns the attached descriptor, or nil before Load.
func (l *location) Descriptor() *module.Descriptor {
	return l.descriptor
}

// NameDir returns root/<name>.
func (l *location) NameDir() string {
	return filepath.Join(l.tree.Root(), l.ident.Name())
}

// AvailableVersions lists the valid versions under the name directory.
func (l *location) AvailableVersions() ([]string, error) {
	return l.tree.AvailableVersions(l.ident.Name())
}

// InstallPath returns root/<name>/<version>.
func (l *location) InstallPath() (string, error) {
	version, err := l.ident.Version()
	if err != nil {
		return "", err
	}
	return filepath.Join(l.NameDir(), version), nil
}

// DescriptorPath returns the name-level descriptor for top-level modules
// and the version-level one for detached modules.
func (l *location) DescriptorPath() (string, error) {
	topLevel, err := l.ident.IsTopLevel()
	if err != nil {
		return "", err
	}
	if topLevel {
		return filepath.Join(l.NameDir(), module.DescriptorFileName), nil
	}
	install, err := l.InstallPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(install, module.DescriptorFileName), nil
}

// LoaderBaseDir returns root/modulefile/<category>/<name>.
func (l *location) LoaderBaseDir() (string, error) {
	category, err := l.ident.CategoryName()
	if err != nil {
		return "", err
	}
	return filepath.Join(l.tree.LoaderDir(), category, l.ident.Name()), nil
}

// LoaderLinkPath returns root/modulefile/<category>/<name>/<version>, the
// symlink to the master loader file.
func (l *location) LoaderLinkPath() (string, error) {
	base, err := l.LoaderBaseDir()
	if err != nil {
		return "", err
	}
	version, err := l.ident.Version()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, version), nil
}

// IsClean reports whether neither the install directory nor the loader link
// exists yet.
func (l *location) IsClean() (bool, error) {
	install, err := l.InstallPath()
	if err != nil {
		return false, err
	}
	link, err := l.LoaderLinkPath()
	if err != nil {
		return false, err
	}
	return !exists(install) && !exists(link), nil
}

// IsValid reports whether the module is fully in place: writable name and
// install directories, a descriptor file, and a loader link pointing at the
// tree's master loader file.
func (l *location) IsValid() bool {
	if !writableDir(l.NameDir()) {
		return false
	}
	install, err := l.InstallPath()
	if err != nil || !writableDir(install) {
		return false
	}
	descriptor, err := l.DescriptorPath()
	if err != nil || !exists(descriptor) {
		return false
	}
	link, err := l.LoaderLinkPath()
	if err != nil {
		return false
	}
	target, err := os.Readlink(link)
	if err != nil {
		return false
	}
	master, err := l.tree.MasterLoaderFile()
	if err != nil {
		return false
	}
	return target == master
}

// PathExists reports whether p resolves to an existing entry in the install
// directory.
func (l *location) PathExists(p module.PathDirective) (bool, error) {
	install, err := l.InstallPath()
	if err != nil {
		return false, err
	}
	return exists(p.Resolve(install)), nil
}

// AddPath places source at the location p resolves to, as a symlink when
// asLink is set and as a recursive copy otherwise, then appends p to the
// descriptor. The descriptor is not saved.
func (l *location) AddPath(source string, p module.PathDirective, asLink bool) error {
	if l.descriptor == nil {
		return oerrors.Wrap(oerrors.ErrState, "adding path to a module with no descriptor")
	}
	install, err := l.InstallPath()
	if err != nil {
		return err
	}
	src, err := filepath.Abs(source)
	if err != nil {
		return fmt.Errorf("resolving source %s: %w", source, err)
	}
	dest := p.Resolve(install)

	if asLink {
		if err := os.Symlink(src, dest); err != nil {
			return fmt.Errorf("linking %s: %w", source, err)
		}
		output.Debug("linked path", "source", src, "dest", dest)
	} else {
		if err := copyTree(src, dest); err != nil {
			return fmt.Errorf("copying %s: %w", source, err)
		}
		output.Debug("copied path", "source", src, "dest", dest)
	}

	l.descriptor.AddPath(p)
	return nil
}

// RemovePath deletes the entry p resolves to and drops every directive with
// the same path from the descriptor. The descriptor is not saved.
func (l *location) RemovePath(p module.PathDirective) error {
	if l.descriptor == nil {
		return oerrors.Wrap(oerrors.ErrState, "removing path from a module with no descriptor")
	}
	install, err := l.InstallPath()
	if err != nil {
		return err
	}
	target := p.Resolve(install)
	if err := removeEntry(target); err != nil {
		return fmt.Errorf("removing %s: %w", p.Path, err)
	}
	output.Debug("removed path", "path", target)

	l.descriptor.RemovePath(p)
	return nil
}

// SaveDescriptor overwrites the descriptor file with the attached
// descriptor.
func (l *location) SaveDescriptor() error {
	if l.descriptor == nil {
		return oerrors.Wrap(oerrors.ErrState, "cannot save a module with no descriptor")
	}
	path, err := l.DescriptorPath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(module.Dump(l.descriptor)), 0o644); err != nil {
		return fmt.Errorf("writing descriptor: %w", err)
	}
	output.Debug("wrote descriptor", "path", path)
	return nil
}

// Clear removes the loader link and the install directory. Missing entries
// are ignored. When no versions remain, the name directories of both
// hierarchies are removed as well.
func (l *location) Clear() error {
	install, err := l.InstallPath()
	if err != nil {
		return err
	}
	link, err := l.LoaderLinkPath()
	if err != nil {
		return err
	}
	loaderBase, err := l.LoaderBaseDir()
	if err != nil {
		return err
	}

	if exists(link) {
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("removing loader link: %w", err)
		}
		output.Debug("removed loader link", "path", link)
	}
	if err := os.RemoveAll(install); err != nil {
		output.Debug("could not remove install directory", "path", install, "err", err)
	}

	remaining, err := l.AvailableVersions()
	if ignoreNotExist(err) != nil {
		return err
	}
	if len(remaining) > 0 {
		output.Debug("cleared module version", "path", install)
		return nil
	}

	if err := os.RemoveAll(l.NameDir()); err != nil {
		return fmt.Errorf("removing module directory: %w", err)
	}
	if err := os.RemoveAll(loaderBase); err != nil {
		return fmt.Errorf("removing loader directory: %w", err)
	}
	output.Debug("cleared module", "name", l.ident.Name())
	return nil
}
