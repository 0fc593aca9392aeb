// Package module holds the in-memory form of a module version's descriptor
// file (".modulefile"): metadata, path directives and pass-through lines,
// together with its parser and serializer.
package module

import (
	"fmt"
	"regexp"
)

// DescriptorFileName is the descriptor file name inside a module directory.
const DescriptorFileName = ".modulefile"

// DefaultMaintainer is used when a descriptor is created without one.
const DefaultMaintainer = "no_maintainer"

// Reserved variable names mapped to Descriptor fields.
const (
	varMaintainer  = "MAINTAINER"
	varHelpText    = "HELPTEXT"
	varDescription = "DESCRIPTION"
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidName reports whether name is a valid module or repository name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Descriptor is the metadata and directive record of one module version.
type Descriptor struct {
	Name        string
	Version     string
	Maintainer  string
	HelpText    string
	Description string

	// Category is the loader-hierarchy directory; empty means the
	// repository label of the owning tree.
	Category string

	// TopLevel places the descriptor at the name level, shared by all
	// versions, instead of inside the version directory.
	TopLevel bool

	// Vars holds extra "set" variables in insertion order.
	Vars Vars

	// Paths holds the path directives in insertion order.
	Paths []PathDirective

	// Commands holds lines passed through uninterpreted.
	Commands []string
}

// New creates a top-level descriptor with the default maintainer.
func New(name, version string) *Descriptor {
	return &Descriptor{
		Name:       name,
		Version:    version,
		Maintainer: DefaultMaintainer,
		TopLevel:   true,
	}
}

// String returns "<name>-<version>".
func (d *Descriptor) String() string {
	return fmt.Sprintf("%s-%s", d.Name, d.Version)
}

// AddPath appends a directive.
func (d *Descriptor) AddPath(p PathDirective) {
	d.Paths = append(d.Paths, p)
}

// RemovePath drops every directive whose path matches p's and returns how
// many were removed.
func (d *Descriptor) RemovePath(p PathDirective) int {
	kept := d.Paths[:0]
	for _, existing := range d.Paths {
		if !existing.SamePath(p) {
			kept = append(kept, existing)
		}
	}
	removed := len(d.Paths) - len(kept)
	d.Paths = kept
	return removed
}

// HasPath reports whether a directive with p's path is present.
func (d *Descriptor) HasPath(p PathDirective) bool {
	for _, existing := range d.Paths {
		if existing.SamePath(p) {
			return true
		}
	}
	return false
}

// Vars is an insertion-ordered string map. Setting an existing key replaces
// its value and keeps its position. The zero value is ready to use.
type Vars struct {
	keys   []string
	values map[string]string
}

// Set stores value under key.
func (v *Vars) Set(key, value string) {
	if v.values == nil {
		v.values = make(map[string]string)
	}
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = value
}

// Get returns the value for key.
func (v *Vars) Get(key string) (string, bool) {
	val, ok := v.values[key]
	return val, ok
}

// Keys returns the keys in insertion order.
func (v *Vars) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Len returns the number of entries.
func (v *Vars) Len() int {
	return len(v.keys)
}
