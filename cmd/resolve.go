package cmd

import (
	"log/slog"

	"github.com/antonomaz/imprimeurs/internal/ent/lookup"
	"github.com/antonomaz/imprimeurs/internal/io/kvio"
	"github.com/antonomaz/imprimeurs/internal/io/resolveio"
	"github.com/antonomaz/imprimeurs/internal/io/sparqlio"
	imprimeurs "github.com/antonomaz/imprimeurs/pkg"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/spf13/cobra"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Enriches printer identifiers with data from IdRef",
	Long: `Queries the IdRef SPARQL endpoint for every identifier of the list of
printers and writes one row per person found. Results of queries are
cached on disk unless --no-cache is given.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cmdOpts []config.Option
		cmdOpts = append(cmdOpts, stringFlag(cmd, "input", config.OptIDsFile)...)
		cmdOpts = append(cmdOpts, stringFlag(cmd, "output", config.OptEnrichedFile)...)
		cmdOpts = append(cmdOpts, stringFlag(cmd, "parquet", config.OptParquetFile)...)
		cmdOpts = append(cmdOpts, stringFlag(cmd, "endpoint", config.OptEndpoint)...)
		if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache {
			cmdOpts = append(cmdOpts, config.OptNoCache(true))
		}
		cfg := newConfig(cmdOpts...)

		var l lookup.Lookuper = sparqlio.New(cfg)
		if !cfg.NoCache {
			store, err := kvio.New(cfg.CacheDir)
			if err != nil {
				slog.Error("Cannot create lookup cache", "error", err)
				return err
			}
			if err = store.Open(); err != nil {
				slog.Error("Cannot open lookup cache", "error", err)
				return err
			}
			defer store.Close()
			l = sparqlio.NewCached(l, store)
		}

		imp := imprimeurs.New(cfg)
		r := resolveio.New(cfg, l)
		_, err := imp.Resolve(cmd.Context(), r)
		if err != nil {
			slog.Error("Cannot resolve identifiers", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringP("input", "i", "", "list of printers (TSV)")
	resolveCmd.Flags().StringP("output", "o", "", "enriched table (TSV)")
	resolveCmd.Flags().StringP("parquet", "p", "", "Parquet copy of the enriched table")
	resolveCmd.Flags().StringP("endpoint", "e", "", "URL of the SPARQL endpoint")
	resolveCmd.Flags().BoolP("no-cache", "n", false, "do not use cached lookups")
}
