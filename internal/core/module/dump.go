package module

import (
	"fmt"
	"strings"
)

var quoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// wordSpecials are the characters that keep an unquoted word from reading
// back as itself.
const wordSpecials = " \t\n\"'\\"

// quote wraps value in double quotes, escaping backslashes and quotes so the
// POSIX tokenizer in Parse reads back the original text.
func quote(value string) string {
	return `"` + quoteEscaper.Replace(value) + `"`
}

// quoteWord returns value unchanged when it reads back as one word, and
// quoted otherwise.
func quoteWord(value string) string {
	if value != "" && !strings.ContainsAny(value, wordSpecials) {
		return value
	}
	return quote(value)
}

// Dump serializes d in descriptor file form: the three reserved variables,
// extra variables, path directives, then pass-through lines.
func Dump(d *Descriptor) string {
	var b strings.Builder

	fmt.Fprintf(&b, "set %s %s\n", varMaintainer, quote(d.Maintainer))
	fmt.Fprintf(&b, "set %s %s\n", varHelpText, quote(d.HelpText))
	fmt.Fprintf(&b, "set %s %s\n", varDescription, quote(d.Description))

	for _, key := range d.Vars.Keys() {
		value, _ := d.Vars.Get(key)
		fmt.Fprintf(&b, "set %s %s\n", key, quote(value))
	}

	for _, p := range d.Paths {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}

	for _, cmd := range d.Commands {
		b.WriteString(cmd)
		b.WriteByte('\n')
	}

	return b.String()
}
