package cmdutil

import (
	"errors"
	"fmt"

	"github.com/moduledev/cli/internal/cmdtypes"
	"github.com/moduledev/cli/internal/core/module"
	"github.com/moduledev/cli/internal/core/tree"
	oerrors "github.com/moduledev/cli/internal/errors"
	"github.com/moduledev/cli/internal/output"
)

// Exit wraps err into an ExitError carrying the code its sentinel maps to.
// A nil err stays nil, and an ExitError is returned unchanged.
func Exit(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *cmdtypes.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	return &cmdtypes.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
}

// NewTree returns the tree at the resolved root without checking it is set
// up. The setup command uses it directly.
func NewTree(cfg *cmdtypes.GlobalConfig) (*tree.Tree, error) {
	t, err := tree.New(cfg.Root.Value)
	if err != nil {
		return nil, Exit(err)
	}
	output.Debug("module tree", "root", t.Root(), "source", cfg.Root.Source)
	return t, nil
}

// OpenTree returns the tree at the resolved root and fails unless it is set
// up.
func OpenTree(cfg *cmdtypes.GlobalConfig) (*tree.Tree, error) {
	t, err := NewTree(cfg)
	if err != nil {
		return nil, err
	}
	if !t.IsValid() {
		if _, masterErr := t.MasterLoaderFile(); errors.Is(masterErr, tree.ErrMultipleMasterFiles) {
			return nil, Exit(masterErr)
		}
		return nil, Exit(oerrors.NewPreconditionError(
			"Module tree not set up. Run moduledev setup first.", t.Root(), ""))
	}
	return t, nil
}

// LoadModule opens the tree and loads name at version (empty for latest).
// Lenient-parse diagnostics are logged as warnings.
func LoadModule(cfg *cmdtypes.GlobalConfig, name, version string, policy module.ParsePolicy) (*tree.Tree, *tree.Loader, error) {
	t, err := OpenTree(cfg)
	if err != nil {
		return nil, nil, err
	}

	l, diags, err := t.LoadModule(name, version, policy)
	WarnDiagnostics(diags)
	if err != nil {
		if errors.Is(err, oerrors.ErrNotFound) {
			return nil, nil, Exit(oerrors.NewNotFoundError(
				fmt.Sprintf("Module %s does not exist", ModuleRef(name, version)), t.Root(), ""))
		}
		return nil, nil, Exit(err)
	}
	return t, l, nil
}

// WarnDiagnostics logs each skipped descriptor line.
func WarnDiagnostics(diags []module.Diagnostic) {
	for _, d := range diags {
		output.Warn("skipped descriptor line", "file", d.File, "line", d.Line, "reason", d.Message)
	}
}

// ModuleRef renders "<name>-<version>", or just name when version is empty.
func ModuleRef(name, version string) string {
	if version == "" {
		return name
	}
	return name + "-" + version
}
