package module

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"

	oerrors "github.com/moduledev/cli/internal/errors"
)

// ParsePolicy controls what Parse does with a malformed line.
type ParsePolicy int

const (
	// ParseStrict aborts on the first malformed line.
	ParseStrict ParsePolicy = iota
	// ParseLenient records a diagnostic, skips the line and keeps going.
	ParseLenient
)

// maxLineSize bounds a single descriptor line.
const maxLineSize = 1024 * 1024

// Diagnostic describes one line the parser could not interpret.
type Diagnostic struct {
	File    string
	Line    int
	Text    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s", d.File, d.Line, d.Message)
}

// ParseError is returned by Parse under ParseStrict.
type ParseError struct {
	Diagnostic Diagnostic
}

func (e *ParseError) Error() string {
	return e.Diagnostic.String()
}

// Unwrap lets errors.Is match ErrParse.
func (e *ParseError) Unwrap() error {
	return oerrors.ErrParse
}

// ParseResult carries the populated descriptor and any diagnostics
// collected under ParseLenient.
type ParseResult struct {
	Descriptor  *Descriptor
	Diagnostics []Diagnostic
}

// Parse reads descriptor lines from r into into. filename is used only in
// diagnostics. A nil into parses into a fresh, nameless descriptor.
//
// Recognized lines are "set VAR VALUE", "prepend-path VAR PATH" and
// "append-path VAR PATH". Every other non-blank line is kept as a
// pass-through command.
func Parse(r io.Reader, filename string, into *Descriptor, policy ParsePolicy) (*ParseResult, error) {
	if into == nil {
		into = &Descriptor{Maintainer: DefaultMaintainer, TopLevel: true}
	}
	result := &ParseResult{Descriptor: into}

	report := func(lineNo int, text, msg string) error {
		diag := Diagnostic{File: filename, Line: lineNo, Text: text, Message: msg}
		if policy == ParseStrict {
			return &ParseError{Diagnostic: diag}
		}
		result.Diagnostics = append(result.Diagnostics, diag)
		return nil
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields, err := shellquote.Split(line)
		if err != nil {
			if rerr := report(lineNo, line, fmt.Sprintf("parse error in %s: %v", filename, err)); rerr != nil {
				return result, rerr
			}
			continue
		}
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "set":
			if len(fields) < 3 {
				if rerr := report(lineNo, line, fmt.Sprintf("unparsable line in %s: %s", filename, line)); rerr != nil {
					return result, rerr
				}
				continue
			}
			into.setVar(fields[1], fields[2])

		case string(VerbPrepend), string(VerbAppend):
			if len(fields) < 3 {
				if rerr := report(lineNo, line, fmt.Sprintf("unparsable line in %s: %s", filename, line)); rerr != nil {
					return result, rerr
				}
				continue
			}
			into.Paths = append(into.Paths, PathDirective{
				Verb:     Verb(fields[0]),
				Variable: fields[1],
				Path:     fields[2],
			})

		default:
			into.Commands = append(into.Commands, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("reading %s: %w", filename, err)
	}

	return result, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string, into *Descriptor, policy ParsePolicy) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening descriptor: %w", err)
	}
	defer f.Close()

	return Parse(f, path, into, policy)
}

func (d *Descriptor) setVar(key, value string) {
	switch key {
	case varMaintainer:
		d.Maintainer = value
	case varHelpText:
		d.HelpText = value
	case varDescription:
		d.Description = value
	default:
		d.Vars.Set(key, value)
	}
}
