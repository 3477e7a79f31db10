// Package entity merges SPARQL bindings about a person into one record.
package entity

import "errors"

// ErrMissingField is returned when a binding lacks a required variable.
var ErrMissingField = errors.New("binding misses a required field")

// Names of the projected query variables.
const (
	VarPerson = "person"
	VarName   = "nom"
	VarSameAs = "ident"
	VarBnf    = "bnf"
	VarAlt    = "autreNom"
	VarBirth  = "naissance"
	VarDeath  = "mort"
	VarGender = "genre"
	VarInfo   = "infos"
	VarNote   = "infos2"
)

// Vars is the ordered projection requested from the knowledge graph.
var Vars = []string{
	VarPerson, VarSameAs, VarBnf, VarName, VarAlt,
	VarBirth, VarDeath, VarGender, VarInfo, VarNote,
}

// Term is a value of one variable in a binding.
type Term struct {
	// Type is `uri`, `literal` or `bnode`.
	Type string `json:"type"`

	// Value is the lexical form of the term.
	Value string `json:"value"`

	// Lang is an optional language tag of a literal.
	Lang string `json:"xml:lang,omitempty"`
}

// Binding is one row of a SPARQL result set. Variables absent from the
// row are absent from the map.
type Binding map[string]Term

// Get returns the value of a variable and whether it was bound.
func (b Binding) Get(v string) (string, bool) {
	t, ok := b[v]
	if !ok {
		return "", false
	}
	return t.Value, true
}

// Record is a person aggregated from all bindings that describe it.
type Record struct {
	// Source is the identifier URI used for the query.
	Source string

	// PersonURI is the IdRef URI of the person.
	PersonURI string

	// Name is the preferred form of the name.
	Name string

	// SameAs contains other identifiers of the person.
	SameAs []string

	// BnfID is the FRBNF identifier.
	BnfID string

	// AltNames are alternate forms of the name.
	AltNames []string

	// Birth is the date of birth as given by the source.
	Birth string

	// Death is the date of death as given by the source.
	Death string

	// Gender of the person.
	Gender string

	// Info contains biographical information (rdau:P60492).
	Info []string

	// Notes contains general notes (skos:note).
	Notes []string
}
