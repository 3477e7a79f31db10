package buildio

import (
	"log/slog"
	"strings"

	"github.com/antonomaz/imprimeurs/internal/io/corpusio"
	"github.com/antonomaz/imprimeurs/internal/io/tableio"
	"github.com/antonomaz/imprimeurs/pkg/ent/corpus"
	"github.com/antonomaz/imprimeurs/pkg/ent/ident"
	"github.com/antonomaz/imprimeurs/pkg/ent/model"
	"github.com/antonomaz/imprimeurs/pkg/ent/profile"
	"github.com/antonomaz/imprimeurs/pkg/ent/row"
	"github.com/gnames/gnuuid"
)

func (b *buildio) importPrinters() ([]model.Printer, error) {
	slog.Info("Importing printers")
	ps, skips, err := tableio.Profiles(b.cfg.Path(b.cfg.ProfilesFile))
	if err != nil {
		return nil, err
	}
	if len(skips) > 0 {
		slog.Warn("Some profiles were skipped", "count", len(skips))
	}

	printers := newPrinters(ps)
	columns := []string{
		"id", "key", "surname", "forename", "alt_names", "birth", "death",
		"gender", "city", "street", "indication", "sign", "note", "bio",
		"id_ref", "ident", "ident_uri", "other_ids",
	}
	rows := make([][]any, len(printers))
	for i, p := range printers {
		rows[i] = []any{
			p.ID, p.Key, p.Surname, p.Forename, p.AltNames, p.Birth, p.Death,
			p.Gender, p.City, p.Street, p.Indication, p.Sign, p.Note, p.Bio,
			p.IdRef, p.Ident, p.IdentURI, p.OtherIDs,
		}
	}
	return printers, b.insertBatches("printers", columns, rows)
}

// newPrinters converts profiles to printers. Duplicate keys get a numeric
// suffix the same way profile documents do.
func newPrinters(ps []profile.Profile) []model.Printer {
	keys := profile.NewKeys()
	res := make([]model.Printer, len(ps))
	for i, p := range ps {
		key := keys.Unique(p.Key())
		res[i] = model.Printer{
			ID:         gnuuid.New(key).String(),
			Key:        key,
			Surname:    p.Surname,
			Forename:   p.Forename,
			AltNames:   strings.Join(p.AltNameList(), "\n"),
			Birth:      p.Birth,
			Death:      p.Death,
			Gender:     p.Gender,
			City:       p.City,
			Street:     p.Street,
			Indication: p.Indication,
			Sign:       p.Sign,
			Note:       p.Note,
			Bio:        p.BioText(),
			IdRef:      p.IdRef,
			Ident:      p.Ident,
			IdentURI:   ident.Normalize(p.Ident),
			OtherIDs:   p.OtherIDs,
		}
	}
	return res
}

func (b *buildio) importAuthorities() error {
	slog.Info("Importing authorities")
	recs, err := tableio.Enriched(b.cfg.Path(b.cfg.EnrichedFile))
	if err != nil {
		return err
	}
	columns := []string{
		"name", "id_ref", "same_as", "bnf_id", "alt_names", "birth", "death",
		"gender", "info", "notes",
	}
	rows := make([][]any, len(recs))
	for i, r := range recs {
		vals := make([]any, len(row.Columns))
		for j := range row.Columns {
			vals[j] = r[j]
		}
		rows[i] = vals
	}
	return b.insertBatches("authorities", columns, rows)
}

func (b *buildio) importCorpus(printers []model.Printer) error {
	slog.Info("Importing Mazarinades")
	ix, err := corpusio.Scan(b.cfg.Path(b.cfg.CorpusDir))
	if err != nil {
		return err
	}

	mazs := newMazarinades(ix.Entries())
	columns := []string{
		"id", "title", "pages", "decorations", "repository", "link", "path",
	}
	rows := make([][]any, len(mazs))
	for i, m := range mazs {
		rows[i] = []any{
			m.ID, m.Title, m.Pages, m.Decorations, m.Repository, m.Link, m.Path,
		}
	}
	if err = b.insertBatches("mazarinades", columns, rows); err != nil {
		return err
	}

	pubs := newPublications(printers, ix)
	rows = make([][]any, len(pubs))
	for i, p := range pubs {
		rows[i] = []any{p.PrinterID, p.MazarinadeID}
	}
	return b.insertBatches(
		"publications", []string{"printer_id", "mazarinade_id"}, rows,
	)
}

// newMazarinades keeps the first entry of every document ID.
func newMazarinades(es []corpus.Entry) []model.Mazarinade {
	seen := make(map[string]struct{})
	res := make([]model.Mazarinade, 0, len(es))
	for _, e := range es {
		id := mazID(e)
		if _, ok := seen[id]; ok {
			slog.Warn("Duplicate Mazarinade", "id", id, "path", e.Path)
			continue
		}
		seen[id] = struct{}{}
		res = append(res, model.Mazarinade{
			ID:          id,
			Title:       e.Title,
			Pages:       e.Pages,
			Decorations: e.Decorations,
			Repository:  e.Repository(),
			Link:        e.Link(),
			Path:        e.Path,
		})
	}
	return res
}

func newPublications(printers []model.Printer, ix *corpus.Index) []model.Publication {
	seen := make(map[model.Publication]struct{})
	var res []model.Publication
	for _, p := range printers {
		for _, e := range ix.Lookup(p.IdentURI) {
			pub := model.Publication{PrinterID: p.ID, MazarinadeID: mazID(e)}
			if _, ok := seen[pub]; ok {
				continue
			}
			seen[pub] = struct{}{}
			res = append(res, pub)
		}
	}
	return res
}

func mazID(e corpus.Entry) string {
	return strings.TrimSuffix(e.Corresp(), ".xml")
}
