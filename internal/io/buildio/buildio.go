package buildio

import (
	"log/slog"

	"github.com/antonomaz/imprimeurs/internal/ent/build"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/model"
	"github.com/antonomaz/imprimeurs/pkg/io/modelio"
	"github.com/jackc/pgx/v5/pgxpool"
)

// buildio is a struct that implements build.Builder interface.
type buildio struct {
	db  *pgxpool.Pool
	cfg config.Config
}

// New returns a new instance of Builder. It connects to the database and
// recreates the schema.
func New(cfg config.Config) (build.Builder, error) {
	var err error
	var db *pgxpool.Pool
	res := buildio{
		cfg: cfg,
	}
	db, err = pgxConn(cfg)
	if err != nil {
		slog.Error("Cannot connect to database", "error", err)
		return nil, err
	}
	res.db = db
	err = res.resetDB()
	if err != nil {
		slog.Error("Cannot reset database", "error", err)
		return nil, err
	}
	err = res.migrate()
	if err != nil {
		slog.Error("Cannot migrate database", "error", err)
		return nil, err
	}
	return &res, nil
}

// Build loads profiles, resolved authorities and the corpus into
// PostgreSQL.
func (b *buildio) Build() error {
	var err error
	defer b.db.Close()

	printers, err := b.importPrinters()
	if err != nil {
		slog.Error("Cannot import printers", "error", err)
		return err
	}
	if err = b.importAuthorities(); err != nil {
		slog.Error("Cannot import authorities", "error", err)
		return err
	}
	if err = b.importCorpus(printers); err != nil {
		slog.Error("Cannot import Mazarinades", "error", err)
		return err
	}
	return nil
}

func (b *buildio) migrate() error {
	grm, err := gormConn(b.cfg)
	if err != nil {
		return err
	}
	defer grm.Close()

	slog.Info("Running initial database migrations")
	m := modelio.New(grm)
	err = m.Migrate()
	if err != nil {
		slog.Error("Cannot migrate database", "error", err)
		return err
	}
	if err = model.SetCollation(b.db); err != nil {
		return err
	}
	slog.Info("Database migrations completed")
	return nil
}
