package imprimeurs

import (
	"context"

	"github.com/antonomaz/imprimeurs/internal/ent/build"
	"github.com/antonomaz/imprimeurs/internal/ent/resolve"
	"github.com/antonomaz/imprimeurs/internal/ent/transform"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/summary"
)

// Imprimeurs prepares the data about printers of the Mazarinades.
type Imprimeurs interface {
	// ListIDs writes the table of printer identifiers and their URIs.
	ListIDs(resolve.Resolver) error

	// Resolve queries IdRef for every printer identifier and writes the
	// enriched table.
	Resolve(context.Context, resolve.Resolver) (*summary.Summary, error)

	// Transform creates TEI profile documents.
	Transform(transform.Transformer) (*summary.Summary, error)

	// Build loads the data to PostgreSQL.
	Build(build.Builder) error

	// GetConfig returns the configuration.
	GetConfig() config.Config
}
