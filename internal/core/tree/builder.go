package tree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/moduledev/cli/internal/core/module"
	"github.com/moduledev/cli/internal/output"
)

// Builder creates a module version on disk from an in-memory descriptor.
type Builder struct {
	location
}

// NewBuilder returns a Builder placing d in t.
func NewBuilder(t *Tree, d *module.Descriptor) *Builder {
	b := &Builder{}
	b.location = location{tree: t, ident: b, descriptor: d}
	return b
}

// Name returns the descriptor's name.
func (b *Builder) Name() string {
	return b.descriptor.Name
}

// Version returns the descriptor's version.
func (b *Builder) Version() (string, error) {
	return b.descriptor.Version, nil
}

// IsTopLevel returns the descriptor's top-level flag.
func (b *Builder) IsTopLevel() (bool, error) {
	return b.descriptor.TopLevel, nil
}

// CategoryName returns the descriptor's category, falling back to the tree
// label.
func (b *Builder) CategoryName() (string, error) {
	if b.descriptor.Category != "" {
		return b.descriptor.Category, nil
	}
	return b.tree.Label()
}

// Build creates the loader link, the install directory and the descriptor
// file. Callers check IsClean first.
func (b *Builder) Build() error {
	master, err := b.tree.MasterLoaderFile()
	if err != nil {
		return err
	}
	link, err := b.LoaderLinkPath()
	if err != nil {
		return err
	}
	install, err := b.InstallPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(link), 0o755); err != nil {
		return fmt.Errorf("creating loader directory: %w", err)
	}
	if err := os.Symlink(master, link); err != nil {
		return fmt.Errorf("creating loader link: %w", err)
	}
	output.Debug("created loader link", "link", link, "target", master)

	if err := os.MkdirAll(install, 0o755); err != nil {
		return fmt.Errorf("creating install directory: %w", err)
	}
	output.Debug("created install directory", "path", install)

	return b.SaveDescriptor()
}
