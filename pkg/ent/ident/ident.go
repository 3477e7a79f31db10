// Package ident normalizes printer identifiers found in the project tables.
// Identifiers come either as scheme-prefixed shorthands (`isni:0000 0001`,
// `viaf:12345`) or as already dereferenceable URIs.
package ident

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrBlank is returned for tokens that are empty after whitespace removal.
	ErrBlank = errors.New("blank identifier")

	// ErrMalformedIdentifier is returned when a token carries no known scheme
	// and is not a URI either. It is not fatal, callers decide what to do
	// with the value.
	ErrMalformedIdentifier = errors.New("malformed identifier")
)

// Scheme describes a shorthand prefix and the URI prefix it expands to.
type Scheme struct {
	// Prefix is a shorthand prefix, for example `isni:`.
	Prefix string

	// URI is the canonical URI prefix, for example `http://isni.org/isni/`.
	URI string
}

// Schemes are the recognized shorthand prefixes.
var Schemes = []Scheme{
	{Prefix: "isni:", URI: "http://isni.org/isni/"},
	{Prefix: "viaf:", URI: "http://viaf.org/viaf/"},
}

// Normalize removes all whitespace from a raw identifier and expands
// a recognized scheme prefix into its URI form. Anything else is returned
// without whitespace but otherwise unchanged. Normalize is idempotent.
func Normalize(raw string) string {
	res := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	for _, s := range Schemes {
		if strings.HasPrefix(res, s.Prefix) {
			return s.URI + res[len(s.Prefix):]
		}
	}
	return res
}

// Parse normalizes a raw identifier and reports whether the result is
// usable as a query key. The normalized value is returned even together
// with ErrMalformedIdentifier.
func Parse(raw string) (string, error) {
	res := Normalize(raw)
	if res == "" {
		return "", ErrBlank
	}
	if !IsURI(res) {
		return res, fmt.Errorf("%w: %q", ErrMalformedIdentifier, raw)
	}
	return res, nil
}

// IsURI checks if an identifier is an http(s) URI.
func IsURI(id string) bool {
	return strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://")
}

// Pair keeps a raw identifier together with its normalized form.
type Pair struct {
	Raw       string
	Canonical string
}

// Table converts raw identifiers into pairs. Blank tokens are dropped,
// the first occurrence of a raw token wins, and input order is preserved.
func Table(raws []string) []Pair {
	seen := make(map[string]struct{}, len(raws))
	res := make([]Pair, 0, len(raws))
	for _, raw := range raws {
		if raw == "" {
			continue
		}
		if _, ok := seen[raw]; ok {
			continue
		}
		seen[raw] = struct{}{}
		res = append(res, Pair{Raw: raw, Canonical: Normalize(raw)})
	}
	return res
}
