package entity

import (
	"fmt"
	"strings"
)

// Exclusions is a set of preferred names whose notes are never collected.
type Exclusions map[string]struct{}

// NewExclusions creates Exclusions from a list of names.
func NewExclusions(names ...string) Exclusions {
	res := make(Exclusions, len(names))
	for _, v := range names {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		res[v] = struct{}{}
	}
	return res
}

// Has checks if a name is excluded.
func (e Exclusions) Has(name string) bool {
	_, ok := e[name]
	return ok
}

// Group splits bindings by the person they describe. Groups keep the
// order in which persons first appear. Bindings without a person go
// to a group of their own at the position they appear, so that
// Aggregate can report them.
func Group(bs []Binding) [][]Binding {
	var res [][]Binding
	idx := make(map[string]int)
	for _, b := range bs {
		p, ok := b.Get(VarPerson)
		if !ok {
			res = append(res, []Binding{b})
			continue
		}
		if i, ok := idx[p]; ok {
			res[i] = append(res[i], b)
			continue
		}
		idx[p] = len(res)
		res = append(res, []Binding{b})
	}
	return res
}

// Aggregate merges bindings of one person into a Record. The person and
// the name come from the first binding. Multi-valued fields are
// de-duplicated in first-seen order, single-valued fields take the first
// bound value. Notes are dropped for the whole person if any of its
// names is excluded.
func Aggregate(source string, bs []Binding, excl Exclusions) (Record, error) {
	res := Record{Source: source}
	if len(bs) == 0 {
		return res, fmt.Errorf("%w: no bindings", ErrMissingField)
	}

	var ok bool
	if res.PersonURI, ok = bs[0].Get(VarPerson); !ok {
		return res, fmt.Errorf("%w: %s", ErrMissingField, VarPerson)
	}
	if res.Name, ok = bs[0].Get(VarName); !ok {
		return res, fmt.Errorf("%w: %s", ErrMissingField, VarName)
	}

	keepNotes := !excluded(res.Name, bs, excl)
	sameAs := newList()
	alt := newList()
	info := newList()
	notes := newList()
	for _, b := range bs {
		sameAs.add(b, VarSameAs)
		alt.add(b, VarAlt)
		info.add(b, VarInfo)
		if keepNotes {
			notes.add(b, VarNote)
		}
		first(&res.BnfID, b, VarBnf)
		first(&res.Birth, b, VarBirth)
		first(&res.Death, b, VarDeath)
		first(&res.Gender, b, VarGender)
	}
	res.SameAs = sameAs.vals
	res.AltNames = alt.vals
	res.Info = info.vals
	res.Notes = notes.vals
	return res, nil
}

// excluded checks the name of the person and every name its bindings
// carry, so the result does not depend on the order of bindings.
func excluded(name string, bs []Binding, excl Exclusions) bool {
	if excl.Has(name) {
		return true
	}
	for _, b := range bs {
		if v, ok := b.Get(VarName); ok && excl.Has(v) {
			return true
		}
	}
	return false
}

func first(dst *string, b Binding, v string) {
	if *dst != "" {
		return
	}
	if val, ok := b.Get(v); ok {
		*dst = val
	}
}

// list collects unique values in insertion order.
type list struct {
	seen map[string]struct{}
	vals []string
}

func newList() *list {
	return &list{seen: make(map[string]struct{})}
}

func (l *list) add(b Binding, v string) {
	val, ok := b.Get(v)
	if !ok {
		return
	}
	if _, ok := l.seen[val]; ok {
		return
	}
	l.seen[val] = struct{}{}
	l.vals = append(l.vals, val)
}
