package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/moduledev/cli/internal/errors"
)

// Store is the persisted key/value view behind 'config get' and
// 'config set'.
type Store struct {
	path string
	cfg  *Config
}

// OpenStore loads the store at path. A missing file opens an empty store.
func OpenStore(path string) (*Store, error) {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: ExpandTilde(path), cfg: cfg}, nil
}

// Path returns the file the store saves to.
func (s *Store) Path() string {
	return s.path
}

// Config returns the stored settings without defaults applied.
func (s *Store) Config() *Config {
	return s.cfg
}

func checkKey(key string) error {
	if !slices.Contains(Settings, key) {
		return oerrors.NewValidationError(
			fmt.Sprintf("unknown setting %q", key), "",
			"known settings: "+strings.Join(Settings, ", "))
	}
	return nil
}

// Get returns the value of key. The boolean is false when the setting is
// unset.
func (s *Store) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}

	var value string
	switch key {
	case KeyRoot:
		value = s.cfg.Root
	case KeyMaintainer:
		value = s.cfg.Maintainer
	case KeyEditor:
		value = s.cfg.Editor
	case KeyCategory:
		value = s.cfg.Category
	case KeyLenient:
		if !s.cfg.Lenient {
			return "", false, nil
		}
		value = strconv.FormatBool(s.cfg.Lenient)
	}
	return value, value != "", nil
}

// Set stores value under key. The change is kept in memory until Save.
func (s *Store) Set(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	switch key {
	case KeyRoot:
		s.cfg.Root = value
	case KeyMaintainer:
		s.cfg.Maintainer = value
	case KeyEditor:
		s.cfg.Editor = value
	case KeyCategory:
		s.cfg.Category = value
	case KeyLenient:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return oerrors.NewValidationError(
				fmt.Sprintf("invalid value %q for %s", value, key), "",
				"use true or false")
		}
		s.cfg.Lenient = b
	}
	return nil
}

// Dump renders key's value, or the whole store as YAML when key is empty.
// An empty store dumps as the empty string.
func (s *Store) Dump(key string) (string, error) {
	if key != "" {
		value, _, err := s.Get(key)
		return value, err
	}
	if s.cfg.IsZero() {
		return "", nil
	}
	out, err := yaml.Marshal(s.cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// Save writes the store to its file, creating parent directories.
func (s *Store) Save() error {
	out, err := yaml.Marshal(s.cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return saveError(s.path, err)
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return saveError(s.path, err)
	}
	return nil
}

func saveError(path string, err error) error {
	if os.IsPermission(err) {
		return &oerrors.DetailError{
			Type:     "permission denied",
			Message:  "cannot write configuration file",
			Location: path,
			Hint:     "set MODULEDEV_CONFIG or --config to a writable location",
			Cause:    oerrors.ErrPermission,
		}
	}
	return fmt.Errorf("writing config file %s: %w", path, err)
}
