package kvio

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/antonomaz/imprimeurs/internal/ent/kv"
	"github.com/dgraph-io/badger/v2"
	"github.com/gnames/gnsys"
)

// ErrNotOpen is returned when the store is used before Open.
var ErrNotOpen = errors.New("key-value store is not open")

type kvio struct {
	dir string
	mu  sync.RWMutex
	kv  *badger.DB
}

// New returns a new instance of a key-value store kept in dir. Existing
// data is preserved.
func New(dir string) (kv.KeyVal, error) {
	res := kvio{
		dir: dir,
	}

	err := gnsys.MakeDir(dir)
	if err != nil {
		slog.Error("Cannot create directory", "error", err, "dir", dir)
		return nil, err
	}

	return &res, nil
}

// Open opens a key-value store.
func (k *kvio) Open() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.kv != nil {
		slog.Warn("key-value store is already open")
		return nil
	}
	options := badger.DefaultOptions(k.dir)
	options.Logger = nil

	bdb, err := badger.Open(options)
	if err != nil {
		return err
	}
	k.kv = bdb
	return nil
}

// Close closes a key-value store.
func (k *kvio) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.kv == nil {
		slog.Warn("key-value store is nil")
		return nil
	}
	err := k.kv.Close()
	k.kv = nil
	return err
}

// GetValue returns a value for a given key.
func (k *kvio) GetValue(key []byte) ([]byte, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.kv == nil {
		return nil, ErrNotOpen
	}
	txn := k.kv.NewTransaction(false)
	defer txn.Discard()
	val, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return val.ValueCopy(nil)
}

// SetValue saves a key-value pair.
func (k *kvio) SetValue(rec kv.Record) error {
	k.mu.RLock()
	defer k.mu.RUnlock()
	if k.kv == nil {
		return ErrNotOpen
	}
	return k.kv.Update(func(txn *badger.Txn) error {
		return txn.Set(rec.Key, rec.Value)
	})
}
