// Package versionkey tokenizes, validates and orders module version strings.
//
// A version is a sequence of components separated by "." or "-". Each
// component is a non-negative integer, a single letter, or an integer followed
// by one letter ("5", "a", "5a"). The trailing letter of a component becomes
// its own token, so "1.2.0b" tokenizes to [1 2 0 b] and orders after "1.2.0a".
package versionkey

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidVersion is returned when a version token is neither an integer
// nor a single letter.
var ErrInvalidVersion = errors.New("invalid version")

// Key is the comparable form of a version: integers keep their value and
// letters map to their code point.
type Key []int

// Tokenize splits a version into its tokens.
func Tokenize(version string) []string {
	pieces := strings.Split(strings.ReplaceAll(version, "-", "."), ".")

	tokens := make([]string, 0, len(pieces))
	for _, p := range pieces {
		last, size := utf8.DecodeLastRuneInString(p)
		if utf8.RuneCountInString(p) > 1 && unicode.IsLetter(last) {
			tokens = append(tokens, p[:len(p)-size], p[len(p)-size:])
			continue
		}
		tokens = append(tokens, p)
	}
	return tokens
}

// tokenKey maps a single token to its ordering value.
func tokenKey(token string) (int, error) {
	if token != "" && strings.TrimLeft(token, "0123456789") == "" {
		n, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("%w: token %q: %w", ErrInvalidVersion, token, err)
		}
		return n, nil
	}
	if r, size := utf8.DecodeRuneInString(token); size == len(token) && unicode.IsLetter(r) {
		return int(r), nil
	}
	return 0, fmt.Errorf("%w: token %q is neither a number nor a single letter", ErrInvalidVersion, token)
}

// KeyOf returns the ordering key for a version.
func KeyOf(version string) (Key, error) {
	tokens := Tokenize(version)
	key := make(Key, 0, len(tokens))
	for _, t := range tokens {
		v, err := tokenKey(t)
		if err != nil {
			return nil, fmt.Errorf("version %q: %w", version, err)
		}
		key = append(key, v)
	}
	return key, nil
}

// IsValid reports whether every token of the version maps to a key.
func IsValid(version string) bool {
	_, err := KeyOf(version)
	return err == nil
}

// Compare orders two keys lexicographically; a strict prefix sorts first.
func Compare(a, b Key) int {
	return slices.Compare(a, b)
}

// Less reports whether version a orders before version b. Invalid versions
// order before valid ones.
func Less(a, b string) bool {
	ka, errA := KeyOf(a)
	kb, errB := KeyOf(b)
	switch {
	case errA != nil && errB != nil:
		return a < b
	case errA != nil:
		return true
	case errB != nil:
		return false
	}
	return Compare(ka, kb) < 0
}

// Max returns the greatest valid version. The boolean is false when no
// version in the input is valid.
func Max(versions []string) (string, bool) {
	var (
		best    string
		bestKey Key
		found   bool
	)
	for _, v := range versions {
		k, err := KeyOf(v)
		if err != nil {
			continue
		}
		if !found || Compare(k, bestKey) > 0 {
			best, bestKey, found = v, k, true
		}
	}
	return best, found
}

// Sort orders versions ascending in place.
func Sort(versions []string) {
	slices.SortStableFunc(versions, func(a, b string) int {
		switch {
		case Less(a, b):
			return -1
		case Less(b, a):
			return 1
		default:
			return 0
		}
	})
}
