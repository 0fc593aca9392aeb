// Package testutil provides test helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/moduledev/cli/internal/core/tree"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// SetupTree creates a module tree labelled label in a fresh temporary
// directory.
func SetupTree(t *testing.T, label string) *tree.Tree {
	t.Helper()
	mt, err := tree.New(filepath.Join(t.TempDir(), "tree"))
	if err != nil {
		t.Fatalf("failed to create tree: %v", err)
	}
	if err := os.Mkdir(mt.Root(), 0o755); err != nil {
		t.Fatalf("failed to create tree root: %v", err)
	}
	if err := mt.Setup(label); err != nil {
		t.Fatalf("failed to set up tree: %v", err)
	}
	return mt
}

// MakeBinDir creates a source directory holding bin/tool and returns the
// path of bin.
func MakeBinDir(t *testing.T) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), "src")
	WriteFile(t, src, filepath.Join("bin", "tool"), "#!/bin/sh\necho tool\n")
	return filepath.Join(src, "bin")
}
