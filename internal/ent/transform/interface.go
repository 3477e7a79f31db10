package transform

import "github.com/antonomaz/imprimeurs/pkg/ent/summary"

// Transformer creates one TEI document per printer profile.
type Transformer interface {
	// Transform reads profiles, cross-references them with the corpus and
	// writes the documents.
	Transform() (*summary.Summary, error)
}
