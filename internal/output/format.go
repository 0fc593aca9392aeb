package output

import "strings"

// OutputFormat specifies the output format of the listing commands.
type OutputFormat string

const (
	// FormatText outputs one plain line per entry.
	FormatText OutputFormat = "text"

	// FormatTable outputs an aligned table.
	FormatTable OutputFormat = "table"

	// FormatYAML outputs a YAML document.
	FormatYAML OutputFormat = "yaml"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// ParseOutputFormat parses a string into an OutputFormat. The boolean is
// false when s names no format in allowed.
func ParseOutputFormat(s string, allowed ...OutputFormat) (OutputFormat, bool) {
	f := OutputFormat(strings.ToLower(s))
	if f == "yml" {
		f = FormatYAML
	}
	for _, a := range allowed {
		if f == a {
			return f, true
		}
	}
	return f, false
}

// FormatNames joins formats for help and error text.
func FormatNames(formats ...OutputFormat) string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
