package profile_test

import (
	"errors"
	"testing"

	"github.com/antonomaz/imprimeurs/pkg/ent/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowData() []string {
	return []string{
		"Ménard", "Pérégrine (veuve)", "['Menard, P.', 'Veuve Ménard']",
		"1610", "", "féminin", "Paris", "Rue Saint-Jacques", "près Saint-Benoît",
		"Au Pélican", "Note Antonomaz", "['Imprimeur-libraire à Paris']",
		"https://www.idref.fr/1/id", "", "isni:0000 0001", "viaf:1,,bnf:2",
	}
}

func TestFromRow(t *testing.T) {
	assert := assert.New(t)
	p, err := profile.FromRow(rowData())
	require.Nil(t, err)
	assert.Equal("Ménard", p.Surname)
	assert.Equal("Ménard, Pérégrine (veuve)", p.FullName())
	assert.Equal("IL_MenardPeregrineveuve", p.Key())
	assert.Equal([]string{"Menard, P.", "Veuve Ménard"}, p.AltNameList())
	assert.Equal("Imprimeur-libraire à Paris", p.BioText())
	assert.Equal([]string{"viaf:1", "", "bnf:2"}, p.OtherIDList())
	assert.Equal("isni:0000 0001", p.Ident)
	assert.True(p.HasAddress())
	assert.Equal("Rue Saint-Jacques ; près Saint-Benoît", p.Address())
}

func TestBioText(t *testing.T) {
	p := profile.Profile{Bio: "'Libraire juré'"}
	assert.Equal(t, "Libraire juré", p.BioText())
}

func TestFromRowShort(t *testing.T) {
	_, err := profile.FromRow([]string{"a", "b"})
	assert.True(t, errors.Is(err, profile.ErrShortRow))
}

func TestKey(t *testing.T) {
	assert := assert.New(t)
	tests := []struct{ surname, forename, key string }{
		{"L'Anglois", "Jean-Baptiste", "IL_LAngloisJeanBaptiste"},
		{"Côté", "François", "IL_CoteFrancois"},
		{"Le Gentil", "Ch.", "IL_LeGentilCh"},
		{"D’Houry", "Éloi", "IL_DHouryEloi"},
		{"Martin/Le Roy", "Jean", "IL_MartinLeRoyJean"},
	}
	for _, v := range tests {
		p := profile.Profile{Surname: v.surname, Forename: v.forename}
		assert.Equal(v.key, p.Key())
	}
}

func TestKeysUnique(t *testing.T) {
	assert := assert.New(t)
	keys := profile.NewKeys()
	assert.Equal("IL_X_2", keys.Unique("IL_X_2"))
	assert.Equal("IL_X", keys.Unique("IL_X"))
	assert.Equal("IL_X_3", keys.Unique("IL_X"))
	assert.Equal("IL_X_4", keys.Unique("IL_X"))
	assert.Equal("IL_X_2_2", keys.Unique("IL_X_2"))
}

func TestAddress(t *testing.T) {
	assert := assert.New(t)
	p := profile.Profile{Indication: "près le Palais"}
	assert.True(p.HasAddress())
	assert.Equal("près le Palais", p.Address())
	p = profile.Profile{Street: "Rue X"}
	assert.Equal("Rue X", p.Address())
	p = profile.Profile{City: "Paris"}
	assert.False(p.HasAddress())
}
