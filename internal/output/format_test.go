package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOutputFormat(t *testing.T) {
	allowed := []OutputFormat{FormatText, FormatTable, FormatYAML}

	tests := []struct {
		input string
		want  OutputFormat
		valid bool
	}{
		{"text", FormatText, true},
		{"TABLE", FormatTable, true},
		{"yaml", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"json", OutputFormat("json"), false},
		{"", OutputFormat(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, valid := ParseOutputFormat(tt.input, allowed...)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestParseOutputFormat_Restricted(t *testing.T) {
	_, valid := ParseOutputFormat("yaml", FormatText, FormatTable)
	assert.False(t, valid)
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, "text, table", FormatNames(FormatText, FormatTable))
	assert.Equal(t, "text", FormatText.String())
}
