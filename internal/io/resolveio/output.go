package resolveio

import (
	"encoding/csv"
	"log/slog"
	"os"

	"github.com/antonomaz/imprimeurs/pkg/ent/entity"
	"github.com/antonomaz/imprimeurs/pkg/ent/row"
	"github.com/parquet-go/parquet-go"
)

// Record is a row of the Parquet copy of the enriched table.
type Record struct {
	Name     string   `parquet:"nom"`
	IdRef    string   `parquet:"lien_idref"`
	SameAs   []string `parquet:"identifiants,list"`
	BnfID    string   `parquet:"identifiant_bnf,optional"`
	AltNames []string `parquet:"autres_formes_du_nom,list"`
	Birth    string   `parquet:"naissance,optional"`
	Death    string   `parquet:"mort,optional"`
	Gender   string   `parquet:"genre,optional"`
	Info     []string `parquet:"informations,list"`
	Notes    []string `parquet:"autres_informations,list"`
}

func newRecord(rec entity.Record) Record {
	return Record{
		Name:     rec.Name,
		IdRef:    rec.PersonURI,
		SameAs:   rec.SameAs,
		BnfID:    rec.BnfID,
		AltNames: rec.AltNames,
		Birth:    rec.Birth,
		Death:    rec.Death,
		Gender:   rec.Gender,
		Info:     rec.Info,
		Notes:    rec.Notes,
	}
}

// output owns the enriched table for the duration of a run.
type output struct {
	path    string
	f       *os.File
	w       *csv.Writer
	parquet string
	recs    []Record
}

func (r *resolveio) newOutput() (*output, error) {
	res := output{
		path:    r.cfg.Path(r.cfg.EnrichedFile),
		parquet: r.cfg.Path(r.cfg.ParquetFile),
	}
	f, err := os.Create(res.path)
	if err != nil {
		slog.Error("Cannot create enriched table", "error", err, "path", res.path)
		return nil, err
	}
	res.f = f
	res.w = csv.NewWriter(f)
	res.w.Comma = '\t'
	if err = res.w.Write(row.Header()); err != nil {
		f.Close()
		return nil, err
	}
	return &res, nil
}

func (o *output) write(rec entity.Record) error {
	if o.parquet != "" {
		o.recs = append(o.recs, newRecord(rec))
	}
	return o.w.Write(row.New(rec).Strings())
}

// finish flushes the table and writes the Parquet copy.
func (o *output) finish() error {
	o.w.Flush()
	if err := o.w.Error(); err != nil {
		slog.Error("Cannot write enriched table", "error", err, "path", o.path)
		return err
	}
	if err := o.f.Sync(); err != nil {
		return err
	}
	slog.Info("Enriched table is created", "path", o.path)

	if o.parquet == "" {
		return nil
	}
	if err := parquet.WriteFile(o.parquet, o.recs); err != nil {
		slog.Error("Cannot write Parquet file", "error", err, "path", o.parquet)
		return err
	}
	slog.Info("Parquet copy is created", "path", o.parquet)
	return nil
}

func (o *output) close() {
	if o.f == nil {
		return
	}
	_ = o.f.Close()
	o.f = nil
}
