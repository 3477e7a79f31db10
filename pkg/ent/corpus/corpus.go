// Package corpus extracts what the printer profiles need from the TEI
// files of the Mazarinades and indexes them by publisher identifier.
package corpus

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/antonomaz/imprimeurs/pkg/ent/ident"
)

// ErrNoID is returned when a document has no `xml:id` on its root.
var ErrNoID = errors.New("document has no xml:id")

// Author of a Mazarinade.
type Author struct {
	// Ref is an identifier of the author, can be empty.
	Ref string

	// Name is the text of the author element.
	Name string
}

// Entry is a Mazarinade as seen from the printer profiles.
type Entry struct {
	// ID is the `xml:id` of the document.
	ID string

	// Path is the file the entry was read from.
	Path string

	// Publishers are `@ref` values of the publishers.
	Publishers []string

	// Title is the main title.
	Title string

	// Authors of the document.
	Authors []Author

	// Pages is the number of pages as written in the document.
	Pages string

	// Decorations is the number of printer's marks.
	Decorations int

	// Settlement of the holding institution.
	Settlement string

	// Institution holding the document.
	Institution string

	// Links point to digitizations.
	Links []string
}

// Corresp returns the correspondence key of the entry, the name of its
// source file derived from the `xml:id`.
func (e Entry) Corresp() string {
	if e.ID != "" {
		return e.ID + ".xml"
	}
	return filepath.Base(e.Path)
}

// Repository describes the holding institution, `Paris, Bibliothèque
// Mazarine` for example.
func (e Entry) Repository() string {
	var parts []string
	for _, v := range []string{e.Settlement, e.Institution} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

// Link returns the first digitization link.
func (e Entry) Link() string {
	if len(e.Links) == 0 {
		return ""
	}
	return e.Links[0]
}

// Index finds entries by publisher identifier. Identifiers are compared
// after normalization, so `isni:0000 0001` finds a document referencing
// `http://isni.org/isni/00000001`.
type Index struct {
	entries []Entry
	byID    map[string][]int
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{byID: make(map[string][]int)}
}

// Add registers an entry under all its publishers. An entry is listed
// once per identifier even if it repeats the publisher.
func (ix *Index) Add(e Entry) {
	pos := len(ix.entries)
	ix.entries = append(ix.entries, e)
	seen := make(map[string]struct{})
	for _, p := range e.Publishers {
		id := ident.Normalize(p)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ix.byID[id] = append(ix.byID[id], pos)
	}
}

// Lookup returns entries published by the identifier, in the order
// they were added.
func (ix *Index) Lookup(id string) []Entry {
	id = ident.Normalize(id)
	if id == "" {
		return nil
	}
	idxs := ix.byID[id]
	if len(idxs) == 0 {
		return nil
	}
	res := make([]Entry, len(idxs))
	for i, v := range idxs {
		res[i] = ix.entries[v]
	}
	return res
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// Entries returns all entries in the order they were added.
func (ix *Index) Entries() []Entry {
	return ix.entries
}
