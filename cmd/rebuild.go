package cmd

import (
	"log/slog"

	"github.com/antonomaz/imprimeurs/internal/io/buildio"
	imprimeurs "github.com/antonomaz/imprimeurs/pkg"
	"github.com/spf13/cobra"
)

// rebuildCmd represents the rebuild command
var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Loads printers, IdRef data and Mazarinades to PostgreSQL",
	Long: `Recreates the PostgreSQL database from the joined table of printers,
the enriched table and the corpus of Mazarinades. All existing tables
are dropped first.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := newConfig()
		imp := imprimeurs.New(cfg)
		b, err := buildio.New(cfg)
		if err != nil {
			slog.Error("Cannot create Builder", "error", err)
			return err
		}
		err = imp.Build(b)
		if err != nil {
			slog.Error("Cannot populate database", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
}
