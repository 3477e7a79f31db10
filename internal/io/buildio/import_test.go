package buildio

import (
	"testing"

	"github.com/antonomaz/imprimeurs/pkg/ent/corpus"
	"github.com/antonomaz/imprimeurs/pkg/ent/profile"
	"github.com/gnames/gnuuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrinters(t *testing.T) {
	assert := assert.New(t)
	ps := []profile.Profile{
		{Surname: "Sassier", Forename: "Guillaume", Ident: "isni:0000 0001",
			AltNames: "['A', 'B']", Bio: "'Libraire'"},
		{Surname: "Sassier", Forename: "Guillaume"},
	}
	res := newPrinters(ps)
	require.Len(t, res, 2)
	assert.Equal("IL_SassierGuillaume", res[0].Key)
	assert.Equal(gnuuid.New("IL_SassierGuillaume").String(), res[0].ID)
	assert.Equal("http://isni.org/isni/00000001", res[0].IdentURI)
	assert.Equal("A\nB", res[0].AltNames)
	assert.Equal("Libraire", res[0].Bio)
	assert.Equal("IL_SassierGuillaume_2", res[1].Key)
	assert.NotEqual(res[0].ID, res[1].ID)
}

func TestNewPrintersKeyCollision(t *testing.T) {
	assert := assert.New(t)
	res := newPrinters([]profile.Profile{
		{Surname: "Sassier", Forename: "Guillaume_2"},
		{Surname: "Sassier", Forename: "Guillaume"},
		{Surname: "Sassier", Forename: "Guillaume"},
	})
	require.Len(t, res, 3)
	assert.Equal("IL_SassierGuillaume_2", res[0].Key)
	assert.Equal("IL_SassierGuillaume", res[1].Key)
	assert.Equal("IL_SassierGuillaume_3", res[2].Key)
}

func TestMazarinadesAndPublications(t *testing.T) {
	assert := assert.New(t)
	ix := corpus.NewIndex()
	ix.Add(corpus.Entry{ID: "D1", Publishers: []string{"isni:00000001"}, Decorations: 2})
	ix.Add(corpus.Entry{ID: "D1", Path: "copy/D1.xml", Publishers: []string{"isni:00000001"}})
	ix.Add(corpus.Entry{Path: "dir/D2.xml", Publishers: []string{"viaf:2"}})

	mazs := newMazarinades(ix.Entries())
	require.Len(t, mazs, 2)
	assert.Equal("D1", mazs[0].ID)
	assert.Equal(2, mazs[0].Decorations)
	assert.Equal("D2", mazs[1].ID)

	printers := newPrinters([]profile.Profile{
		{Surname: "A", Ident: "isni:0000 0001"},
		{Surname: "B", Ident: "viaf:2"},
		{Surname: "C"},
	})
	pubs := newPublications(printers, ix)
	require.Len(t, pubs, 2)
	assert.Equal(printers[0].ID, pubs[0].PrinterID)
	assert.Equal("D1", pubs[0].MazarinadeID)
	assert.Equal(printers[1].ID, pubs[1].PrinterID)
	assert.Equal("D2", pubs[1].MazarinadeID)
}
