// Package corpusio finds the Mazarinades on disk and indexes them by
// publisher.
package corpusio

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/antonomaz/imprimeurs/internal/str"
	"github.com/antonomaz/imprimeurs/pkg/ent/corpus"
	"github.com/dustin/go-humanize"
)

// Scan walks dir recursively and parses every `.xml` file. Files that
// cannot be parsed are logged and left out. Only a failure to read dir
// itself is returned.
func Scan(dir string) (*corpus.Index, error) {
	ix := corpus.NewIndex()
	var failed int

	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			slog.Warn("Cannot read corpus path", "error", err, "path", path)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".xml") {
			return nil
		}

		e, err := parseFile(path)
		switch {
		case errors.Is(err, corpus.ErrNoID):
			slog.Warn("Mazarinade without xml:id, using file name",
				"path", path, "title", str.ShortTitle(e.Title))
		case err != nil:
			slog.Warn("Cannot parse Mazarinade", "error", err, "path", path)
			failed++
			return nil
		}
		ix.Add(e)
		return nil
	}

	if err := filepath.WalkDir(dir, walk); err != nil {
		slog.Error("Cannot scan corpus", "error", err, "dir", dir)
		return nil, err
	}

	slog.Info("Corpus is indexed",
		"documents", humanize.Comma(int64(ix.Len())),
		"failed", humanize.Comma(int64(failed)),
	)
	return ix, nil
}

func parseFile(path string) (corpus.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return corpus.Entry{}, err
	}
	defer f.Close()

	e, err := corpus.Parse(f)
	e.Path = path
	return e, err
}
