package buildio

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/jackc/pgx/v5"
)

// resetDB resets the database to a clean state.
func (b *buildio) resetDB() error {
	var err error
	var rows pgx.Rows
	slog.Info("Resetting database")
	qs := []string{
		"DROP SCHEMA IF EXISTS public CASCADE",
		"CREATE SCHEMA public",
		"GRANT ALL ON SCHEMA public TO postgres",
		fmt.Sprintf("GRANT ALL ON SCHEMA public TO %s", pgx.Identifier{b.cfg.PgUser}.Sanitize()),
		"COMMENT ON SCHEMA public IS 'standard public schema'",
	}
	for i := range qs {
		rows, err = b.db.Query(context.Background(), qs[i])
		if err != nil {
			slog.Error("Cannot reset database", "error", err, "query", qs[i])
			return err
		}
		rows.Close()
	}

	slog.Info("Database did reset successfully")
	return nil
}

func (b *buildio) insertRows(tbl string, columns []string, rows [][]any) (int64, error) {
	copyCount, err := b.db.CopyFrom(
		context.Background(),
		pgx.Identifier{tbl},
		columns,
		pgx.CopyFromRows(rows),
	)

	return int64(copyCount), err
}

// insertBatches copies rows in chunks of BatchSize.
func (b *buildio) insertBatches(tbl string, columns []string, rows [][]any) error {
	size := b.cfg.BatchSize
	if size < 1 {
		size = len(rows)
	}
	var total int64
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		n, err := b.insertRows(tbl, columns, rows[start:end])
		if err != nil {
			slog.Error("Cannot insert rows", "error", err, "table", tbl)
			return err
		}
		total += n
	}
	slog.Info("Uploaded table", "table", tbl, "rows", humanize.Comma(total))
	return nil
}
