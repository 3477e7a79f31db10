package resolveio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/antonomaz/imprimeurs/pkg/ent/ident"
	"github.com/dustin/go-humanize"
)

// ErrIDColumn is returned when the identifier column is negative.
var ErrIDColumn = errors.New("invalid identifier column")

// ListIDs writes raw identifiers and their canonical form.
func (r *resolveio) ListIDs() error {
	raws, err := r.readIDs()
	if err != nil {
		return err
	}
	pairs := ident.Table(raws)

	path := r.cfg.Path(r.cfg.IDsTableFile)
	f, err := os.Create(path)
	if err != nil {
		slog.Error("Cannot create identifiers table", "error", err, "path", path)
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'
	if err = w.Write([]string{"ISNI", "Identifiants"}); err != nil {
		return err
	}
	for _, v := range pairs {
		if err = w.Write([]string{v.Raw, v.Canonical}); err != nil {
			slog.Error("Cannot write identifiers table", "error", err)
			return err
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return err
	}
	slog.Info("Identifiers table is created",
		"path", path, "identifiers", humanize.Comma(int64(len(pairs))))
	return f.Sync()
}

// readIDs returns the identifier column of the printers list, blanks
// included, header excluded.
func (r *resolveio) readIDs() ([]string, error) {
	if r.cfg.IDColumn < 0 {
		err := fmt.Errorf("%w: %d", ErrIDColumn, r.cfg.IDColumn)
		slog.Error("Cannot read identifiers list", "error", err)
		return nil, err
	}
	path := r.cfg.Path(r.cfg.IDsFile)
	f, err := os.Open(path)
	if err != nil {
		slog.Error("Cannot open identifiers list", "error", err, "path", path)
		return nil, err
	}
	defer f.Close()

	rd := csv.NewReader(f)
	rd.Comma = '\t'
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true

	// skip header
	_, err = rd.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		slog.Error("Cannot read header of identifiers list", "error", err)
		return nil, err
	}

	var res []string
	for {
		row, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Error("Cannot read identifiers list", "error", err, "path", path)
			return nil, err
		}
		var raw string
		if r.cfg.IDColumn < len(row) {
			raw = row[r.cfg.IDColumn]
		}
		res = append(res, raw)
	}
	return res, nil
}
