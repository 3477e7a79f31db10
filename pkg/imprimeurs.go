package imprimeurs

import (
	"context"

	"github.com/antonomaz/imprimeurs/internal/ent/build"
	"github.com/antonomaz/imprimeurs/internal/ent/resolve"
	"github.com/antonomaz/imprimeurs/internal/ent/transform"
	"github.com/antonomaz/imprimeurs/pkg/config"
	"github.com/antonomaz/imprimeurs/pkg/ent/summary"
)

// imprimeurs is an implementation of Imprimeurs interface.
type imprimeurs struct {
	cfg config.Config
}

// New creates a new instance of Imprimeurs.
func New(
	cfg config.Config,
) Imprimeurs {
	res := imprimeurs{
		cfg: cfg}
	return &res
}

// ListIDs writes the table of printer identifiers.
func (im *imprimeurs) ListIDs(r resolve.Resolver) error {
	return r.ListIDs()
}

// Resolve writes the enriched table and logs the summary of the run.
func (im *imprimeurs) Resolve(
	ctx context.Context,
	r resolve.Resolver,
) (*summary.Summary, error) {
	sum, err := r.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	sum.Log("Identifiers are resolved")
	return sum, nil
}

// Transform writes profile documents and logs the summary of the run.
func (im *imprimeurs) Transform(
	t transform.Transformer,
) (*summary.Summary, error) {
	sum, err := t.Transform()
	if err != nil {
		return nil, err
	}
	sum.Log("Profiles are transformed")
	return sum, nil
}

// Build loads the data to PostgreSQL.
func (im *imprimeurs) Build(b build.Builder) error {
	return b.Build()
}

// GetConfig returns the configuration.
func (im *imprimeurs) GetConfig() config.Config {
	return im.cfg
}
