package cmd

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	imprimeurs "github.com/antonomaz/imprimeurs/pkg"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/tei"
	"github.com/charmbracelet/fang"
	"github.com/gnames/gnsys"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

//go:embed imprimeurs.yaml
var configText string

var (
	opts []config.Option
)

type cityData struct {
	Name string
	Ref  string
}

type cfgData struct {
	WorkDir        string
	CacheDir       string
	IDsFile        string
	IDColumn       *int
	IDsTableFile   string
	EnrichedFile   string
	ParquetFile    string
	ProfilesFile   string
	CorpusDir      string
	TEIDir         string
	Endpoint       string
	RequestTimeout time.Duration
	JobsNum        int
	NoteExclusions []string
	Cities         []cityData
	EditorID       string
	EditorRef      string
	EditorName     string
	EditorResp     string
	ChangeDate     string
	Placeholder    *bool
	PgHost         string
	PgUser         string
	PgPass         string
	PgDB           string
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "imprimeurs",
	Short: "Prepares data about printers of the Mazarinades",
	Long: `Imprimeurs prepares the data of the printers and booksellers
(imprimeurs-libraires) of the Mazarinades for the Antonomaz project.

It normalizes printer identifiers, enriches them from IdRef, writes one
TEI profile per printer that lists the Mazarinades they published, and
loads everything to PostgreSQL.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s (build %s)", imprimeurs.Version, imprimeurs.Build)),
		fang.WithNotifySignal(os.Interrupt, os.Kill),
	); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().IntP("jobs", "j", 0, "number of concurrent lookups")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "log only warnings and errors")
	rootCmd.PersistentFlags().StringP("workdir", "w", "", "directory of input and output files")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	var err error
	var homeDir, cfgDir string
	configFile := "imprimeurs"

	initLogger()

	// .env is optional
	_ = godotenv.Load()

	// Find home directory.
	homeDir, err = os.UserHomeDir()
	if err != nil {
		slog.Error("Cannot find home dir", "error", err)
		os.Exit(1)
	}
	cfgDir = filepath.Join(homeDir, ".config")

	// Search config in home directory with name "imprimeurs" (without extension).
	viper.AddConfigPath(cfgDir)
	viper.SetConfigName(configFile)
	viper.SetEnvPrefix("IMPRIMEURS")
	viper.AutomaticEnv()

	configPath := filepath.Join(cfgDir, fmt.Sprintf("%s.yaml", configFile))
	touchConfigFile(configPath)

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		slog.Error("Config file imprimeurs.yaml not found", "error", err)
		os.Exit(1)
	}
	opts = getOpts()
	opts = append(opts, rootFlags()...)
}

func initLogger() {
	lvl := slog.LevelInfo
	if quiet, _ := rootCmd.PersistentFlags().GetBool("quiet"); quiet {
		lvl = slog.LevelWarn
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(handler))
}

// getOpts imports data from the configuration file. Some of the settings can
// be overriden by command line flags.
func getOpts() []config.Option {
	var res []config.Option
	cfg := cfgData{}
	err := viper.Unmarshal(&cfg)
	if err != nil {
		slog.Error("Cannot unmarshal config file", "error", err)
	}

	if cfg.WorkDir != "" {
		res = append(res, config.OptWorkDir(cfg.WorkDir))
	}
	if cfg.CacheDir != "" {
		res = append(res, config.OptCacheDir(cfg.CacheDir))
	}
	if cfg.IDsFile != "" {
		res = append(res, config.OptIDsFile(cfg.IDsFile))
	}
	if cfg.IDColumn != nil {
		res = append(res, config.OptIDColumn(*cfg.IDColumn))
	}
	if cfg.IDsTableFile != "" {
		res = append(res, config.OptIDsTableFile(cfg.IDsTableFile))
	}
	if cfg.EnrichedFile != "" {
		res = append(res, config.OptEnrichedFile(cfg.EnrichedFile))
	}
	if cfg.ParquetFile != "" {
		res = append(res, config.OptParquetFile(cfg.ParquetFile))
	}
	if cfg.ProfilesFile != "" {
		res = append(res, config.OptProfilesFile(cfg.ProfilesFile))
	}
	if cfg.CorpusDir != "" {
		res = append(res, config.OptCorpusDir(cfg.CorpusDir))
	}
	if cfg.TEIDir != "" {
		res = append(res, config.OptTEIDir(cfg.TEIDir))
	}
	if cfg.Endpoint != "" {
		res = append(res, config.OptEndpoint(cfg.Endpoint))
	}
	if cfg.RequestTimeout > 0 {
		res = append(res, config.OptRequestTimeout(cfg.RequestTimeout))
	}
	if cfg.JobsNum != 0 {
		res = append(res, config.OptJobsNum(cfg.JobsNum))
	}
	if len(cfg.NoteExclusions) > 0 {
		res = append(res, config.OptNoteExclusions(cfg.NoteExclusions))
	}
	if len(cfg.Cities) > 0 {
		cities := make(map[string]string, len(cfg.Cities))
		for _, v := range cfg.Cities {
			cities[v.Name] = v.Ref
		}
		res = append(res, config.OptCities(cities))
	}
	if cfg.EditorID != "" {
		res = append(res, config.OptEditor(tei.Editor{
			ID:   cfg.EditorID,
			Ref:  cfg.EditorRef,
			Name: cfg.EditorName,
			Resp: cfg.EditorResp,
		}))
	}
	if cfg.ChangeDate != "" {
		res = append(res, config.OptChangeDate(cfg.ChangeDate))
	}
	if cfg.Placeholder != nil {
		res = append(res, config.OptPlaceholder(*cfg.Placeholder))
	}
	if cfg.PgHost != "" {
		res = append(res, config.OptPgHost(cfg.PgHost))
	}
	if cfg.PgUser != "" {
		res = append(res, config.OptPgUser(cfg.PgUser))
	}
	if cfg.PgPass != "" {
		res = append(res, config.OptPgPass(cfg.PgPass))
	}
	if cfg.PgDB != "" {
		res = append(res, config.OptPgDB(cfg.PgDB))
	}
	return res
}

// rootFlags converts persistent flags into options.
func rootFlags() []config.Option {
	var res []config.Option
	flags := rootCmd.PersistentFlags()
	if jobs, _ := flags.GetInt("jobs"); jobs > 0 {
		res = append(res, config.OptJobsNum(jobs))
	}
	if dir, _ := flags.GetString("workdir"); dir != "" {
		res = append(res, config.OptWorkDir(dir))
	}
	return res
}

// stringFlag adds an option if a string flag of cmd is set.
func stringFlag(
	cmd *cobra.Command,
	name string,
	opt func(string) config.Option,
) []config.Option {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return nil
	}
	return []config.Option{opt(s)}
}

// newConfig creates configuration from the file, persistent flags and
// the given command options, in that order.
func newConfig(cmdOpts ...config.Option) config.Config {
	all := append([]config.Option{}, opts...)
	all = append(all, cmdOpts...)
	return config.New(all...)
}

// touchConfigFile checks if config file exists, and if not, it gets created.
func touchConfigFile(configPath string) {
	fileExists, _ := gnsys.FileExists(configPath)
	if fileExists {
		return
	}

	slog.Info("Creating config file", "path", configPath)
	createConfig(configPath)
}

// createConfig creates config file.
func createConfig(path string) {
	err := gnsys.MakeDir(filepath.Dir(path))
	if err != nil {
		slog.Error("Cannot create config dir", "error", err)
		os.Exit(1)
	}

	err = os.WriteFile(path, []byte(configText), 0644)
	if err != nil {
		slog.Error("Cannot write to config file", "error", err)
		os.Exit(1)
	}
}
