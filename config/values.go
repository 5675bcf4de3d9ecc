package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMalformedLine is returned when a configuration line
// has no "=" separator.
var ErrMalformedLine = errors.New(
	"configuration line must be KEY=VALUE",
)

// Values is an immutable configuration mapping. The zero
// value is an empty mapping.
type Values struct {
	m map[string]string
}

// New copies m into a Values.
func New(m map[string]string) Values {
	cp := make(map[string]string, len(m))
	for key, val := range m {
		cp[key] = val
	}

	return Values{m: cp}
}

// Lookup returns the value stored for key and whether it
// is present.
func (va Values) Lookup(key string) (string, bool) {
	val, ok := va.m[key]

	return val, ok
}

// Len returns the number of keys.
func (va Values) Len() int {
	return len(va.m)
}

// Keys returns the keys in lexical order.
func (va Values) Keys() []string {
	keys := make([]string, 0, len(va.m))
	for key := range va.m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Map returns a copy of the mapping.
func (va Values) Map() map[string]string {
	return New(va.m).m
}

// Parse reads a newline separated list of KEY=VALUE
// entries. Each line is split at its first "=", so values
// may contain "=" themselves. Later duplicates win. An
// empty string yields an empty mapping.
func Parse(s string) (Values, error) {
	const errCtx = "parsing configuration"

	m := make(map[string]string)

	for idx, line := range splitLines(s) {
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return Values{}, fmt.Errorf(
				"%s: line %d: %w, got %q",
				errCtx, idx+1, ErrMalformedLine, line,
			)
		}

		m[key] = val
	}

	return Values{m: m}, nil
}

// splitLines splits s on "\n", "\r\n" and a lone "\r". A
// single trailing terminator does not produce an empty
// last line; interior empty lines are kept.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")

	return strings.Split(s, "\n")
}
