package cmd

import (
	"log/slog"

	"github.com/antonomaz/imprimeurs/internal/io/resolveio"
	imprimeurs "github.com/antonomaz/imprimeurs/pkg"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/spf13/cobra"
)

// idsCmd represents the ids command
var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "Lists printer identifiers with their canonical URIs",
	Long: `Reads the list of printers and writes a tab-separated table of raw
identifiers next to their canonical form (isni:... or viaf:...).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cmdOpts []config.Option
		cmdOpts = append(cmdOpts, stringFlag(cmd, "input", config.OptIDsFile)...)
		cmdOpts = append(cmdOpts, stringFlag(cmd, "output", config.OptIDsTableFile)...)
		cfg := newConfig(cmdOpts...)

		imp := imprimeurs.New(cfg)
		r := resolveio.New(cfg, nil)
		err := imp.ListIDs(r)
		if err != nil {
			slog.Error("Cannot list identifiers", "error", err)
			return err
		}
		slog.Info("Identifiers are listed", "path", cfg.Path(cfg.IDsTableFile))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(idsCmd)

	idsCmd.Flags().StringP("input", "i", "", "list of printers (TSV)")
	idsCmd.Flags().StringP("output", "o", "", "table of identifiers (TSV)")
}
