// Package row maps an aggregated person record onto the fixed-width
// enriched table. Every column is described once in Columns, so the
// presence of one optional field never influences another.
package row

import (
	"github.com/antonomaz/imprimeurs/pkg/ent/entity"
)

// Kind tells how a column value is rendered.
type Kind int

const (
	// Single columns hold one value.
	Single Kind = iota
	// List columns hold an ordered list of values.
	List
)

// Null is written for columns without a value.
const Null = ""

// Column describes one output column.
type Column struct {
	// Name is the header of the column.
	Name string

	// Kind is the rendering kind of the column.
	Kind Kind

	// Values extracts the values of the column from a record. An empty
	// result means the field is absent.
	Values func(entity.Record) []string
}

func single(f func(entity.Record) string) func(entity.Record) []string {
	return func(r entity.Record) []string {
		v := f(r)
		if v == "" {
			return nil
		}
		return []string{v}
	}
}

// Columns is the ordered table of output columns.
var Columns = []Column{
	{Name: "Nom", Kind: Single, Values: single(func(r entity.Record) string { return r.Name })},
	{Name: "Lien_IdRef", Kind: Single, Values: single(func(r entity.Record) string { return r.PersonURI })},
	{Name: "Identifiants", Kind: List, Values: func(r entity.Record) []string { return r.SameAs }},
	{Name: "Identifiant_BnF", Kind: Single, Values: single(func(r entity.Record) string { return r.BnfID })},
	{Name: "Autres_formes_du_Nom", Kind: List, Values: func(r entity.Record) []string { return r.AltNames }},
	{Name: "Naissance", Kind: Single, Values: single(func(r entity.Record) string { return r.Birth })},
	{Name: "Mort", Kind: Single, Values: single(func(r entity.Record) string { return r.Death })},
	{Name: "Genre", Kind: Single, Values: single(func(r entity.Record) string { return r.Gender })},
	{Name: "Informations", Kind: List, Values: func(r entity.Record) []string { return r.Info }},
	{Name: "Autres_Informations", Kind: List, Values: func(r entity.Record) []string { return r.Notes }},
}

// Header returns names of the columns.
func Header() []string {
	res := make([]string, len(Columns))
	for i, c := range Columns {
		res[i] = c.Name
	}
	return res
}

// Cell is a value of one column. A cell without values is null.
type Cell struct {
	Kind   Kind
	Values []string
}

// IsNull checks if the cell has no value.
func (c Cell) IsNull() bool {
	return len(c.Values) == 0
}

// String renders the cell for a tab-separated file.
func (c Cell) String() string {
	if c.IsNull() {
		return Null
	}
	if c.Kind == List {
		return FormatList(c.Values)
	}
	return c.Values[0]
}

// Row is one line of the enriched table.
type Row []Cell

// New builds a row from a record walking Columns once.
func New(rec entity.Record) Row {
	res := make(Row, len(Columns))
	for i, c := range Columns {
		res[i] = Cell{Kind: c.Kind, Values: c.Values(rec)}
	}
	return res
}

// Strings renders all cells.
func (r Row) Strings() []string {
	res := make([]string, len(r))
	for i := range r {
		res[i] = r[i].String()
	}
	return res
}

// Get returns a cell by its column name.
func (r Row) Get(name string) (Cell, bool) {
	for i, c := range Columns {
		if c.Name == name && i < len(r) {
			return r[i], true
		}
	}
	return Cell{}, false
}
