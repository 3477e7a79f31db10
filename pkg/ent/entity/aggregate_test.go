package entity_test

import (
	"errors"
	"testing"

	"github.com/antonomaz/imprimeurs/pkg/ent/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const person = "https://www.idref.fr/123/id"

func bind(kv ...string) entity.Binding {
	res := entity.Binding{}
	for i := 0; i+1 < len(kv); i += 2 {
		res[kv[i]] = entity.Term{Type: "literal", Value: kv[i+1]}
	}
	return res
}

func TestAggregateDedup(t *testing.T) {
	assert := assert.New(t)
	bs := []entity.Binding{
		bind("person", person, "nom", "Vivenay, Nicolas", "autreNom", "A"),
		bind("person", person, "nom", "Vivenay, Nicolas", "autreNom", "B"),
		bind("person", person, "nom", "Vivenay, Nicolas", "autreNom", "A"),
		bind("person", person, "nom", "Vivenay, Nicolas", "autreNom", "C"),
	}
	rec, err := entity.Aggregate("http://isni.org/isni/1", bs, nil)
	require.Nil(t, err)
	assert.Equal([]string{"A", "B", "C"}, rec.AltNames)
	assert.Equal(person, rec.PersonURI)
	assert.Equal("Vivenay, Nicolas", rec.Name)
	assert.Equal("http://isni.org/isni/1", rec.Source)
	assert.Nil(rec.Info)
}

func TestAggregateSingletons(t *testing.T) {
	assert := assert.New(t)
	bs := []entity.Binding{
		bind("person", person, "nom", "X", "ident", "http://viaf.org/viaf/1"),
		bind("person", person, "nom", "X", "naissance", "1600", "genre", "masculin"),
		bind("person", person, "nom", "X", "naissance", "1601", "mort", "1660",
			"bnf", "FRBNF123", "ident", "http://viaf.org/viaf/1"),
	}
	rec, err := entity.Aggregate("", bs, nil)
	require.Nil(t, err)
	assert.Equal("1600", rec.Birth)
	assert.Equal("1660", rec.Death)
	assert.Equal("masculin", rec.Gender)
	assert.Equal("FRBNF123", rec.BnfID)
	assert.Equal([]string{"http://viaf.org/viaf/1"}, rec.SameAs)
}

func TestAggregateExclusion(t *testing.T) {
	assert := assert.New(t)
	excl := entity.NewExclusions("Cotinet, Arnoul", " ")
	assert.True(excl.Has("Cotinet, Arnoul"))
	assert.False(excl.Has(""))

	orders := [][]entity.Binding{
		{
			bind("person", person, "nom", "Cotinet, Arnoul", "infos2", "n1"),
			bind("person", person, "nom", "Cotinet, Arnoul", "infos2", "n2", "infos", "i1"),
		},
		{
			bind("person", person, "nom", "Cotinet, Arnoul", "infos2", "n2", "infos", "i1"),
			bind("person", person, "nom", "Cotinet, Arnoul", "infos2", "n1"),
		},
	}
	for _, bs := range orders {
		rec, err := entity.Aggregate("", bs, excl)
		require.Nil(t, err)
		assert.Nil(rec.Notes)
		assert.Equal([]string{"i1"}, rec.Info)
	}

	rec, err := entity.Aggregate("", []entity.Binding{
		bind("person", person, "nom", "Other", "infos2", "n1"),
	}, excl)
	require.Nil(t, err)
	assert.Equal([]string{"n1"}, rec.Notes)
}

func TestAggregateExclusionNameVariants(t *testing.T) {
	assert := assert.New(t)
	excl := entity.NewExclusions("Cotinet, Arnoul")
	a := bind("person", person, "nom", "Cotinet, Arnoul", "infos2", "n1")
	b := bind("person", person, "nom", "Cotinet, Arnould", "infos2", "n2")

	for _, bs := range [][]entity.Binding{{a, b}, {b, a}} {
		rec, err := entity.Aggregate("", bs, excl)
		require.Nil(t, err)
		assert.Nil(rec.Notes)
	}
}

func TestAggregateMissing(t *testing.T) {
	assert := assert.New(t)
	_, err := entity.Aggregate("", []entity.Binding{bind("nom", "X")}, nil)
	assert.True(errors.Is(err, entity.ErrMissingField))

	_, err = entity.Aggregate("", []entity.Binding{bind("person", person)}, nil)
	assert.True(errors.Is(err, entity.ErrMissingField))

	_, err = entity.Aggregate("", nil, nil)
	assert.True(errors.Is(err, entity.ErrMissingField))
}

func TestGroup(t *testing.T) {
	assert := assert.New(t)
	bs := []entity.Binding{
		bind("person", "p1", "autreNom", "a"),
		bind("person", "p2"),
		bind("nom", "orphan"),
		bind("person", "p1", "autreNom", "b"),
	}
	gs := entity.Group(bs)
	assert.Len(gs, 3)
	assert.Len(gs[0], 2)
	assert.Len(gs[1], 1)
	v, _ := gs[2][0].Get("nom")
	assert.Equal("orphan", v)
}
