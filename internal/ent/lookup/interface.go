package lookup

import (
	"context"

	"github.com/antonomaz/imprimeurs/pkg/ent/entity"
)

// Lookuper finds bindings of people that cross-reference an identifier.
type Lookuper interface {
	// Lookup returns bindings for an identifier URI. An identifier unknown
	// to the service returns no bindings and no error.
	Lookup(ctx context.Context, uri string) ([]entity.Binding, error)
}
