package tableio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/antonomaz/imprimeurs/internal/io/tableio"
	"github.com/antonomaz/imprimeurs/pkg/ent/row"
	"github.com/antonomaz/imprimeurs/pkg/ent/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profiles = `Nom,Prenom,Autres,Naissance,Mort,Genre,Ville,Rue,Indication,Enseigne,Note,Bio,IdRef,Remarques,ISNI,Autres_ID
Sassier,Guillaume,"['Sassier, G.']",1605,,masculin,Paris,rue des Amandiers,,,,,,,isni:0000000071345608,
Short,Row
Vivenay,Nicolas,,,,,Paris,,,,,,,,,"viaf:1,bnf:2"
`

func TestProfiles(t *testing.T) {
	assert := assert.New(t)
	path := filepath.Join(t.TempDir(), "joined.csv")
	require.NoError(t, os.WriteFile(path, []byte(profiles), 0644))

	ps, skips, err := tableio.Profiles(path)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal("Sassier", ps[0].Surname)
	assert.Equal([]string{"Sassier, G."}, ps[0].AltNameList())
	assert.Equal("isni:0000000071345608", ps[0].Ident)
	assert.Equal([]string{"viaf:1", "bnf:2"}, ps[1].OtherIDList())

	require.Len(t, skips, 1)
	assert.Equal("line 3", skips[0].Key)
	assert.Equal(summary.ReasonShortRow, skips[0].Reason)
}

func TestProfilesMultilineField(t *testing.T) {
	content := `Nom,Prenom,Autres,Naissance,Mort,Genre,Ville,Rue,Indication,Enseigne,Note,Bio,IdRef,Remarques,ISNI,Autres_ID
Sassier,Guillaume,,,,,Paris,,,,"Libraire
juré
de l'Université",,,,,
Short,Row
`
	path := filepath.Join(t.TempDir(), "joined.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	ps, skips, err := tableio.Profiles(path)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, "Libraire\njuré\nde l'Université", ps[0].Note)
	require.Len(t, skips, 1)
	assert.Equal(t, "line 5", skips[0].Key)
}

func TestEnriched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enriched.tsv")
	content := strings.Join(row.Header(), "\t") + "\n" +
		"Sassier, Guillaume\thttps://www.idref.fr/1/id\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rows, err := tableio.Enriched(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0], len(row.Columns))
	assert.Equal(t, "https://www.idref.fr/1/id", rows[0][1])

	bad := filepath.Join(dir, "bad.tsv")
	require.NoError(t, os.WriteFile(bad, []byte("a\tb\n"), 0644))
	_, err = tableio.Enriched(bad)
	assert.ErrorIs(t, err, tableio.ErrHeader)
}
