package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/antonomaz/imprimeurs/pkg/ent/tei"
)

// Config is a struct that holds configuration parameters for the package.
type Config struct {
	// WorkDir is a directory where input and output files are kept.
	WorkDir string

	// CacheDir is a directory for the key-value store of lookup results.
	CacheDir string

	// IDsFile is the tab-separated list of printers with identifiers.
	IDsFile string

	// IDColumn is the zero-based column of identifiers in IDsFile.
	IDColumn int

	// IDsTableFile receives the table of raw and canonical identifiers.
	IDsTableFile string

	// EnrichedFile receives the rows built from lookup results.
	EnrichedFile string

	// ParquetFile, if not empty, receives a copy of the enriched rows in
	// Parquet format.
	ParquetFile string

	// ProfilesFile is the comma-separated table of printer profiles.
	ProfilesFile string

	// CorpusDir is the directory with TEI files of the Mazarinades.
	CorpusDir string

	// TEIDir receives generated profile documents.
	TEIDir string

	// Endpoint is the URL of the SPARQL service.
	Endpoint string

	// RequestTimeout limits one lookup round-trip.
	RequestTimeout time.Duration

	// NoCache disables the lookup cache.
	NoCache bool

	// JobsNum is a number of concurrent lookups.
	JobsNum int

	// NoteExclusions are names whose notes are ignored.
	NoteExclusions []string

	// Cities map city names to GeoNames references.
	Cities map[string]string

	// Editor is responsible for generated documents.
	Editor tei.Editor

	// ChangeDate is the date of the revision of generated documents.
	ChangeDate string

	// Placeholder adds an empty sub-document to profiles without
	// Mazarinades.
	Placeholder bool

	// PgHost is a host name for PostgreSQL.
	PgHost string

	// PgUser is a user name for PostgreSQL.
	PgUser string

	// PgPass is a password for PostgreSQL.
	PgPass string

	// PgDB is a database name for PostgreSQL.
	PgDB string

	// BatchSize is a number of records to be saved in one transaction.
	BatchSize int
}

// Option type allows to change settings for Config.
type Option func(*Config)

// OptWorkDir sets a directory of input and output files.
func OptWorkDir(d string) Option {
	return func(cfg *Config) {
		cfg.WorkDir = d
	}
}

// OptCacheDir sets a directory for cached lookups.
func OptCacheDir(d string) Option {
	return func(cfg *Config) {
		cfg.CacheDir = d
	}
}

// OptIDsFile sets the list of identifiers.
func OptIDsFile(s string) Option {
	return func(cfg *Config) {
		cfg.IDsFile = s
	}
}

// OptIDColumn sets the column of identifiers.
func OptIDColumn(i int) Option {
	return func(cfg *Config) {
		cfg.IDColumn = i
	}
}

// OptIDsTableFile sets the output of the identifiers table.
func OptIDsTableFile(s string) Option {
	return func(cfg *Config) {
		cfg.IDsTableFile = s
	}
}

// OptEnrichedFile sets the output of resolved identifiers.
func OptEnrichedFile(s string) Option {
	return func(cfg *Config) {
		cfg.EnrichedFile = s
	}
}

// OptParquetFile sets the Parquet copy of resolved identifiers.
func OptParquetFile(s string) Option {
	return func(cfg *Config) {
		cfg.ParquetFile = s
	}
}

// OptProfilesFile sets the table of printer profiles.
func OptProfilesFile(s string) Option {
	return func(cfg *Config) {
		cfg.ProfilesFile = s
	}
}

// OptCorpusDir sets the directory of the Mazarinades.
func OptCorpusDir(d string) Option {
	return func(cfg *Config) {
		cfg.CorpusDir = d
	}
}

// OptTEIDir sets the output directory of profile documents.
func OptTEIDir(d string) Option {
	return func(cfg *Config) {
		cfg.TEIDir = d
	}
}

// OptEndpoint sets the SPARQL endpoint.
func OptEndpoint(s string) Option {
	return func(cfg *Config) {
		cfg.Endpoint = s
	}
}

// OptRequestTimeout sets the timeout of one lookup.
func OptRequestTimeout(d time.Duration) Option {
	return func(cfg *Config) {
		cfg.RequestTimeout = d
	}
}

// OptNoCache disables the lookup cache.
func OptNoCache(b bool) Option {
	return func(cfg *Config) {
		cfg.NoCache = b
	}
}

// OptJobsNum sets parallelism number for concurrent goroutines.
func OptJobsNum(j int) Option {
	return func(cfg *Config) {
		cfg.JobsNum = j
	}
}

// OptNoteExclusions sets names whose notes are ignored.
func OptNoteExclusions(names []string) Option {
	return func(cfg *Config) {
		cfg.NoteExclusions = names
	}
}

// OptCities sets the GeoNames table of cities.
func OptCities(m map[string]string) Option {
	return func(cfg *Config) {
		cfg.Cities = m
	}
}

// OptEditor sets the editor of profile documents.
func OptEditor(e tei.Editor) Option {
	return func(cfg *Config) {
		cfg.Editor = e
	}
}

// OptChangeDate sets the revision date of profile documents.
func OptChangeDate(s string) Option {
	return func(cfg *Config) {
		cfg.ChangeDate = s
	}
}

// OptPlaceholder toggles placeholder sub-documents.
func OptPlaceholder(b bool) Option {
	return func(cfg *Config) {
		cfg.Placeholder = b
	}
}

// OptPgHost sets host name for PostgreSQL
func OptPgHost(h string) Option {
	return func(cfg *Config) {
		cfg.PgHost = h
	}
}

// OptPgUser sets user for PostgreSQL
func OptPgUser(u string) Option {
	return func(cfg *Config) {
		cfg.PgUser = u
	}
}

// OptPgPass sets password for PostgreSQL
func OptPgPass(p string) Option {
	return func(cfg *Config) {
		cfg.PgPass = p
	}
}

// OptPgDB sets database name for PostgreSQL
func OptPgDB(d string) Option {
	return func(cfg *Config) {
		cfg.PgDB = d
	}
}

// Path returns a file path relative to WorkDir. Absolute paths are
// returned as is.
func (cfg Config) Path(file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(cfg.WorkDir, file)
}

// Assembler returns a profile document assembler for the configuration.
func (cfg Config) Assembler() tei.Assembler {
	res := tei.DefaultAssembler()
	res.Cities = cfg.Cities
	res.Editor = cfg.Editor
	res.ChangeDate = cfg.ChangeDate
	res.Placeholder = cfg.Placeholder
	return res
}

func New(opts ...Option) Config {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	cacheDir = filepath.Join(cacheDir, "imprimeurs", "sparql")

	def := tei.DefaultAssembler()
	res := Config{
		WorkDir:        ".",
		CacheDir:       cacheDir,
		IDsFile:        "Liste_IL_MAZ.tsv",
		IDColumn:       2,
		IDsTableFile:   "Liste_IL_MAZ2.tsv",
		EnrichedFile:   "base_imprimeurs_sparql.tsv",
		ProfilesFile:   "base_imprimeurs_joined.csv",
		CorpusDir:      "Mazarinades",
		TEIDir:         "imprimeurs_tei",
		Endpoint:       "https://data.idref.fr/sparql",
		RequestTimeout: 30 * time.Second,
		JobsNum:        4,
		NoteExclusions: []string{"Cotinet, Arnoul"},
		Cities:         def.Cities,
		Editor:         def.Editor,
		ChangeDate:     def.ChangeDate,
		Placeholder:    def.Placeholder,
		PgHost:         "0.0.0.0",
		PgUser:         "postgres",
		PgPass:         "postgres",
		PgDB:           "imprimeurs",
		BatchSize:      50_000,
	}

	for _, opt := range opts {
		opt(&res)
	}

	if res.JobsNum < 1 {
		res.JobsNum = 1
	}

	return res
}
