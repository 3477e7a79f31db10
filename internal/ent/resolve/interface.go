package resolve

import (
	"context"

	"github.com/antonomaz/imprimeurs/pkg/ent/summary"
)

// Resolver turns the list of printer identifiers into the enriched table.
type Resolver interface {
	// ListIDs writes the table of raw identifiers and their canonical URIs.
	ListIDs() error

	// Resolve looks up every identifier and writes one row per person
	// found. Failures of single identifiers are reported in the summary,
	// only file and context errors are returned.
	Resolve(ctx context.Context) (*summary.Summary, error)
}
