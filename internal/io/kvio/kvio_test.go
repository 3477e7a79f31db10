package kvio_test

import (
	"path/filepath"
	"testing"

	"github.com/antonomaz/imprimeurs/internal/ent/kv"
	"github.com/antonomaz/imprimeurs/internal/io/kvio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyVal(t *testing.T) {
	assert := assert.New(t)
	dir := filepath.Join(t.TempDir(), "cache")
	store, err := kvio.New(dir)
	require.NoError(t, err)

	_, err = store.GetValue([]byte("k"))
	assert.ErrorIs(err, kvio.ErrNotOpen)

	require.NoError(t, store.Open())
	val, err := store.GetValue([]byte("k"))
	assert.NoError(err)
	assert.Nil(val)

	err = store.SetValue(kv.Record{Key: []byte("k"), Value: []byte("v")})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = kvio.New(dir)
	require.NoError(t, err)
	require.NoError(t, store.Open())
	defer store.Close()
	val, err = store.GetValue([]byte("k"))
	assert.NoError(err)
	assert.Equal([]byte("v"), val)
}
