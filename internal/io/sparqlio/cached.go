package sparqlio

import (
	"context"
	"log/slog"

	"github.com/antonomaz/imprimeurs/internal/ent/kv"
	"github.com/antonomaz/imprimeurs/internal/ent/lookup"
	"github.com/antonomaz/imprimeurs/pkg/ent/entity"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnuuid"
)

// cacheEntry wraps bindings so that an empty result is stored as a value.
type cacheEntry struct {
	Bindings []entity.Binding
}

type cached struct {
	lookup.Lookuper
	kv  kv.KeyVal
	enc gnfmt.Encoder
}

// NewCached keeps successful results of l in the store. Empty results are
// cached as well, failures are not. The store must be open.
func NewCached(l lookup.Lookuper, store kv.KeyVal) lookup.Lookuper {
	res := cached{
		Lookuper: l,
		kv:       store,
		enc:      gnfmt.GNgob{},
	}
	return &res
}

func (c *cached) Lookup(
	ctx context.Context,
	uri string,
) ([]entity.Binding, error) {
	key := []byte(gnuuid.New(uri).String())
	val, err := c.kv.GetValue(key)
	if err != nil {
		slog.Warn("Cannot read lookup cache", "error", err, "uri", uri)
	}
	if len(val) > 0 {
		var ce cacheEntry
		err = c.enc.Decode(val, &ce)
		if err == nil {
			return ce.Bindings, nil
		}
		slog.Warn("Cannot decode cached lookup", "error", err, "uri", uri)
	}

	res, err := c.Lookuper.Lookup(ctx, uri)
	if err != nil {
		return nil, err
	}

	val, err = c.enc.Encode(cacheEntry{Bindings: res})
	if err == nil {
		err = c.kv.SetValue(kv.Record{Key: key, Value: val})
	}
	if err != nil {
		slog.Warn("Cannot cache lookup", "error", err, "uri", uri)
	}
	return res, nil
}
