// Package tableio reads the project tables produced by hand or by earlier
// runs.
package tableio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/antonomaz/imprimeurs/pkg/ent/profile"
	"github.com/antonomaz/imprimeurs/pkg/ent/row"
	"github.com/antonomaz/imprimeurs/pkg/ent/summary"
)

// ErrHeader is returned when a table has an unexpected header.
var ErrHeader = errors.New("unexpected table header")

// Profiles reads the comma-separated table of printer profiles. Rows that
// are too short are reported as skipped.
func Profiles(path string) ([]profile.Profile, []summary.Skip, error) {
	var res []profile.Profile
	var skips []summary.Skip
	err := read(path, ',', func(r []string, line int) error {
		p, err := profile.FromRow(r)
		if err != nil {
			key := fmt.Sprintf("line %d", line)
			slog.Warn("Cannot read profile", "error", err, "line", line)
			skips = append(skips, summary.Skip{
				Key:    key,
				Reason: summary.ReasonShortRow,
				Err:    err.Error(),
			})
			return nil
		}
		res = append(res, p)
		return nil
	}, nil)
	return res, skips, err
}

// Enriched reads the table written by the resolver. Each row has all
// columns of row.Header.
func Enriched(path string) ([][]string, error) {
	var res [][]string
	hdr := row.Header()
	err := read(path, '\t', func(r []string, _ int) error {
		for len(r) < len(hdr) {
			r = append(r, row.Null)
		}
		res = append(res, r)
		return nil
	}, func(h []string) error {
		if len(h) < len(hdr) || h[0] != hdr[0] {
			return fmt.Errorf("%w in %s: %v", ErrHeader, path, h)
		}
		return nil
	})
	return res, err
}

func read(
	path string,
	comma rune,
	fn func(rec []string, line int) error,
	header func([]string) error,
) error {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("Cannot open table", "error", err, "path", path)
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	h, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		slog.Error("Cannot read table header", "error", err, "path", path)
		return err
	}
	if header != nil {
		if err = header(h); err != nil {
			return err
		}
	}

	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			slog.Error("Cannot read table", "error", err, "path", path)
			return err
		}
		line, _ := r.FieldPos(0)
		if err = fn(rec, line); err != nil {
			return err
		}
	}
}
