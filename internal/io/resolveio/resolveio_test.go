package resolveio_test

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/antonomaz/imprimeurs/internal/ent/lookup"
	"github.com/antonomaz/imprimeurs/internal/io/resolveio"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/entity"
	"github.com/antonomaz/imprimeurs/pkg/ent/row"
	"github.com/antonomaz/imprimeurs/pkg/ent/summary"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// fakeLookup answers from a table and sleeps a random time, so workers
// finish out of order.
type fakeLookup struct {
	mu    sync.Mutex
	calls []string
	data  map[string][]entity.Binding
	fail  map[string]error
	delay time.Duration
}

func (f *fakeLookup) Lookup(ctx context.Context, uri string) ([]entity.Binding, error) {
	f.mu.Lock()
	f.calls = append(f.calls, uri)
	f.mu.Unlock()
	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, lookup.NewError(uri, ctx.Err())
		case <-time.After(rand.N(f.delay)):
		}
	}
	if err, ok := f.fail[uri]; ok {
		return nil, lookup.NewError(uri, err)
	}
	return f.data[uri], nil
}

func person(n int, extra ...string) entity.Binding {
	b := entity.Binding{
		entity.VarPerson: {Type: "uri", Value: fmt.Sprintf("https://www.idref.fr/%d/id", n)},
		entity.VarName:   {Type: "literal", Value: fmt.Sprintf("Printer %02d", n)},
	}
	for i := 0; i+1 < len(extra); i += 2 {
		b[extra[i]] = entity.Term{Type: "literal", Value: extra[i+1]}
	}
	return b
}

func writeIDs(t *testing.T, dir string, ids ...string) {
	var sb strings.Builder
	sb.WriteString("Nom\tPrenom\tISNI\n")
	for i, v := range ids {
		fmt.Fprintf(&sb, "Name%d\tFirst%d\t%s\n", i, i, v)
	}
	err := os.WriteFile(filepath.Join(dir, "Liste_IL_MAZ.tsv"), []byte(sb.String()), 0644)
	require.NoError(t, err)
}

func readTSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestResolveOrder(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()
	fl := &fakeLookup{data: map[string][]entity.Binding{}, delay: 5 * time.Millisecond}
	var ids []string
	for i := range 30 {
		id := fmt.Sprintf("isni:0000 %04d", i)
		ids = append(ids, id)
		uri := fmt.Sprintf("http://isni.org/isni/0000%04d", i)
		fl.data[uri] = []entity.Binding{person(i)}
	}
	writeIDs(t, dir, ids...)

	cfg := config.New(config.OptWorkDir(dir), config.OptJobsNum(8))
	sum, err := resolveio.New(cfg, fl).Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, sum.Processed)
	assert.Equal(t, 30, sum.Written)

	rows := readTSV(t, filepath.Join(dir, "base_imprimeurs_sparql.tsv"))
	require.Len(t, rows, 31)
	assert.Equal(t, row.Header(), rows[0])
	for i, v := range rows[1:] {
		assert.Equal(t, fmt.Sprintf("Printer %02d", i), v[0])
		assert.Len(t, v, len(row.Columns))
	}
}

func TestResolveFailures(t *testing.T) {
	defer goleak.VerifyNone(t)
	assert := assert.New(t)
	dir := t.TempDir()
	writeIDs(t, dir,
		"isni:1",
		"",
		"viaf:2",
		"isni:3",
		"ark:/12148/cb1",
		"isni:4",
		"isni:5",
	)
	noName := entity.Binding{entity.VarPerson: {Value: "https://www.idref.fr/4/id"}}
	fl := &fakeLookup{
		data: map[string][]entity.Binding{
			"http://isni.org/isni/1": {
				person(1, entity.VarAlt, "A"),
				person(1, entity.VarAlt, "B"),
				person(1, entity.VarAlt, "A"),
			},
			"http://isni.org/isni/4": {noName},
			"http://isni.org/isni/5": {person(5), person(6, entity.VarBirth, "1610")},
		},
		fail: map[string]error{
			"http://viaf.org/viaf/2": errors.New("connection refused"),
		},
	}
	cfg := config.New(config.OptWorkDir(dir), config.OptJobsNum(2))
	sum, err := resolveio.New(cfg, fl).Resolve(context.Background())
	require.NoError(t, err)

	assert.Equal(6, sum.Processed)
	assert.Equal(3, sum.Written)
	assert.Equal(1, sum.Empty)
	assert.Equal(map[string]int{
		summary.ReasonLookup:       1,
		summary.ReasonMalformed:    1,
		summary.ReasonMissingField: 1,
	}, sum.Reasons())
	assert.Len(fl.calls, 5)

	rows := readTSV(t, filepath.Join(dir, "base_imprimeurs_sparql.tsv"))
	require.Len(t, rows, 4)
	assert.Equal("Printer 01", rows[1][0])
	assert.Equal("['A', 'B']", rows[1][4])
	assert.Equal(row.Null, rows[1][5])
	assert.Equal("Printer 05", rows[2][0])
	assert.Equal("Printer 06", rows[3][0])
	assert.Equal("1610", rows[3][5])
}

func TestResolveCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	dir := t.TempDir()
	var ids []string
	for i := range 20 {
		ids = append(ids, fmt.Sprintf("isni:%d", i))
	}
	writeIDs(t, dir, ids...)
	fl := &fakeLookup{delay: time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	cfg := config.New(config.OptWorkDir(dir), config.OptJobsNum(4))
	_, err := resolveio.New(cfg, fl).Resolve(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResolveMissingInput(t *testing.T) {
	cfg := config.New(config.OptWorkDir(t.TempDir()))
	_, err := resolveio.New(cfg, &fakeLookup{}).Resolve(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNegativeIDColumn(t *testing.T) {
	dir := t.TempDir()
	writeIDs(t, dir, "isni:0001")
	cfg := config.New(config.OptWorkDir(dir), config.OptIDColumn(-1))
	r := resolveio.New(cfg, &fakeLookup{})

	_, err := r.Resolve(context.Background())
	assert.ErrorIs(t, err, resolveio.ErrIDColumn)
	assert.ErrorIs(t, r.ListIDs(), resolveio.ErrIDColumn)
}

func TestParquet(t *testing.T) {
	dir := t.TempDir()
	writeIDs(t, dir, "isni:1")
	fl := &fakeLookup{data: map[string][]entity.Binding{
		"http://isni.org/isni/1": {person(1, entity.VarSameAs, "http://viaf.org/viaf/1")},
	}}
	cfg := config.New(
		config.OptWorkDir(dir),
		config.OptParquetFile("enriched.parquet"),
	)
	_, err := resolveio.New(cfg, fl).Resolve(context.Background())
	require.NoError(t, err)

	recs, err := parquet.ReadFile[resolveio.Record](filepath.Join(dir, "enriched.parquet"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Printer 01", recs[0].Name)
	assert.Equal(t, []string{"http://viaf.org/viaf/1"}, recs[0].SameAs)
	assert.Equal(t, "", recs[0].Birth)
}

func TestListIDs(t *testing.T) {
	dir := t.TempDir()
	writeIDs(t, dir, "isni:0000 0001", "", "viaf:2", "isni:0000 0001", "http://x.org/3")
	cfg := config.New(config.OptWorkDir(dir))
	require.NoError(t, resolveio.New(cfg, &fakeLookup{}).ListIDs())

	rows := readTSV(t, filepath.Join(dir, "Liste_IL_MAZ2.tsv"))
	assert.Equal(t, [][]string{
		{"ISNI", "Identifiants"},
		{"isni:0000 0001", "http://isni.org/isni/00000001"},
		{"viaf:2", "http://viaf.org/viaf/2"},
		{"http://x.org/3", "http://x.org/3"},
	}, rows)
}
