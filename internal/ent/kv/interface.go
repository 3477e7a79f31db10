package kv

// KeyVal is a persistent key-value store.
type KeyVal interface {
	// Open opens a key-value store.
	Open() error

	// Close closes a key-value store.
	Close() error

	// GetValue returns a value for a key. A missing key returns nil
	// value and no error.
	GetValue(key []byte) ([]byte, error)

	// SetValue saves a key-value pair.
	SetValue(rec Record) error
}

// Record is an entry of the store.
type Record struct {
	Key   []byte
	Value []byte
}
