package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name           string
		cfg            Config
		editorEnv      string
		wantMaintainer string
		wantEditor     string
	}{
		{
			name:           "empty config",
			wantMaintainer: DefaultMaintainer,
			wantEditor:     DefaultEditor,
		},
		{
			name:           "editor from environment",
			editorEnv:      "nano",
			wantMaintainer: DefaultMaintainer,
			wantEditor:     "nano",
		},
		{
			name:           "configured values win",
			cfg:            Config{Maintainer: "Jane", Editor: "emacs"},
			editorEnv:      "nano",
			wantMaintainer: "Jane",
			wantEditor:     "emacs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.WithDefaults(tt.editorEnv)
			assert.Equal(t, tt.wantMaintainer, got.Maintainer)
			assert.Equal(t, tt.wantEditor, got.Editor)
		})
	}
}

func TestWithDefaultsDoesNotMutate(t *testing.T) {
	cfg := &Config{}
	_ = cfg.WithDefaults("")
	assert.True(t, cfg.IsZero())
}
