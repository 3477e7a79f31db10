package cmd

import (
	"log/slog"

	"github.com/antonomaz/imprimeurs/internal/io/teiio"
	imprimeurs "github.com/antonomaz/imprimeurs/pkg"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/spf13/cobra"
)

// teiCmd represents the tei command
var teiCmd = &cobra.Command{
	Use:   "tei",
	Short: "Creates TEI profiles of printers",
	Long: `Reads the joined table of printers and the TEI files of the
Mazarinades, and writes one teiCorpus document per printer. Every
Mazarinade published by the printer becomes a sub-document.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cmdOpts []config.Option
		cmdOpts = append(cmdOpts, stringFlag(cmd, "input", config.OptProfilesFile)...)
		cmdOpts = append(cmdOpts, stringFlag(cmd, "corpus", config.OptCorpusDir)...)
		cmdOpts = append(cmdOpts, stringFlag(cmd, "output", config.OptTEIDir)...)
		cfg := newConfig(cmdOpts...)

		imp := imprimeurs.New(cfg)
		t := teiio.New(cfg)
		_, err := imp.Transform(t)
		if err != nil {
			slog.Error("Cannot create TEI profiles", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(teiCmd)

	teiCmd.Flags().StringP("input", "i", "", "joined table of printers (CSV)")
	teiCmd.Flags().StringP("corpus", "c", "", "directory of Mazarinades")
	teiCmd.Flags().StringP("output", "o", "", "directory for profiles")
}
