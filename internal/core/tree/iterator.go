package tree

import (
	"fmt"
	"path/filepath"

	"github.com/moduledev/cli/internal/core/module"
	oerrors "github.com/moduledev/cli/internal/errors"
)

// ModuleIterator walks the modules of a tree, loading one descriptor per
// step. It is single pass; call ListModules again to restart.
//
//	it := t.ListModules(false, module.ParseStrict)
//	for it.Next() {
//		d := it.Descriptor()
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type ModuleIterator struct {
	tree        *Tree
	allVersions bool
	policy      module.ParsePolicy

	names    []string
	versions []string // pending versions of names[0] when allVersions is set

	current     *module.Descriptor
	diagnostics []module.Diagnostic
	err         error
	done        bool
}

// Next loads the next descriptor. It returns false when the walk is over or
// has failed; Err tells which. A name directory without any valid version
// fails the walk with ErrNotFound in both modes.
func (it *ModuleIterator) Next() bool {
	if it.done {
		return false
	}
	it.current = nil
	it.diagnostics = nil

	for {
		if len(it.versions) > 0 {
			name := it.names[0]
			version := it.versions[0]
			it.versions = it.versions[1:]
			if len(it.versions) == 0 {
				it.names = it.names[1:]
			}
			return it.load(name, version)
		}

		if len(it.names) == 0 {
			it.done = true
			return false
		}

		name := it.names[0]
		if !it.allVersions {
			it.names = it.names[1:]
			return it.load(name, "")
		}

		versions, err := it.tree.AvailableVersions(name)
		if err != nil {
			return it.fail(err)
		}
		if len(versions) == 0 {
			return it.fail(oerrors.NewNotFoundError(
				fmt.Sprintf("no versions found for module %s", name),
				filepath.Join(it.tree.Root(), name), ""))
		}
		it.versions = versions
	}
}

func (it *ModuleIterator) load(name, version string) bool {
	l, diags, err := it.tree.LoadModule(name, version, it.policy)
	if err != nil {
		return it.fail(fmt.Errorf("loading %s: %w", name, err))
	}
	it.current = l.Descriptor()
	it.diagnostics = diags
	return true
}

func (it *ModuleIterator) fail(err error) bool {
	it.err = err
	it.done = true
	return false
}

// Descriptor returns the descriptor loaded by the last successful Next.
func (it *ModuleIterator) Descriptor() *module.Descriptor {
	return it.current
}

// Diagnostics returns the lenient-parse diagnostics of the current
// descriptor.
func (it *ModuleIterator) Diagnostics() []module.Diagnostic {
	return it.diagnostics
}

// Err returns the error that stopped the walk, if any.
func (it *ModuleIterator) Err() error {
	return it.err
}
