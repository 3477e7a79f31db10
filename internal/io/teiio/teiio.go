package teiio

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/antonomaz/imprimeurs/internal/ent/transform"
	"github.com/antonomaz/imprimeurs/internal/io/corpusio"
	"github.com/antonomaz/imprimeurs/internal/io/tableio"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/profile"
	"github.com/antonomaz/imprimeurs/pkg/ent/summary"
	"github.com/antonomaz/imprimeurs/pkg/ent/tei"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnsys"
)

type teiio struct {
	cfg config.Config
	asm tei.Assembler
}

// New creates a Transformer.
func New(cfg config.Config) transform.Transformer {
	res := teiio{
		cfg: cfg,
		asm: cfg.Assembler(),
	}
	return &res
}

// Transform writes `<key>.xml` for every profile. Profiles sharing a key
// get a numeric suffix, so no document is overwritten.
func (t *teiio) Transform() (*summary.Summary, error) {
	ps, skips, err := tableio.Profiles(t.cfg.Path(t.cfg.ProfilesFile))
	if err != nil {
		return nil, err
	}
	sum := &summary.Summary{
		Processed: len(ps) + len(skips),
		Skipped:   skips,
	}

	ix, err := corpusio.Scan(t.cfg.Path(t.cfg.CorpusDir))
	if err != nil {
		return nil, err
	}

	dir := t.cfg.Path(t.cfg.TEIDir)
	if err = gnsys.MakeDir(dir); err != nil {
		slog.Error("Cannot create output directory", "error", err, "dir", dir)
		return nil, err
	}

	keys := profile.NewKeys()
	for _, p := range ps {
		doc := t.asm.Assemble(p, ix.Lookup(p.Ident))
		if key := keys.Unique(doc.ID); key != doc.ID {
			slog.Warn("Duplicate profile key", "key", doc.ID, "name", p.FullName())
			doc.ID = key
		}
		if len(doc.SubDocuments()) == 0 {
			sum.Empty++
		}
		if err = write(filepath.Join(dir, doc.ID+".xml"), doc); err != nil {
			return nil, err
		}
		sum.Written++
	}

	slog.Info("Profile documents are created",
		"dir", dir, "documents", humanize.Comma(int64(sum.Written)))
	return sum, nil
}

func write(path string, doc tei.Corpus) error {
	f, err := os.Create(path)
	if err != nil {
		slog.Error("Cannot create profile document", "error", err, "path", path)
		return err
	}
	defer f.Close()

	if err = doc.Encode(f); err != nil {
		slog.Error("Cannot write profile document", "error", err, "path", path)
		return err
	}
	return f.Sync()
}
