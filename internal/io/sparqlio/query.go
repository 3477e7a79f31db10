package sparqlio

import (
	"errors"
	"fmt"
	"strings"

	"github.com/antonomaz/imprimeurs/pkg/ent/ident"
)

// ErrUnsafeURI is returned for identifiers that cannot be placed inside
// an IRI reference of a query.
var ErrUnsafeURI = errors.New("identifier is not a safe IRI")

const queryTmpl = `PREFIX foaf: <http://xmlns.com/foaf/0.1/>
PREFIX bio: <http://purl.org/vocab/bio/0.1/>
PREFIX rdau: <http://rdaregistry.info/Elements/u/>
PREFIX owl: <http://www.w3.org/2002/07/owl#>
PREFIX bnf-onto: <http://data.bnf.fr/ontology/bnf-onto/>
PREFIX skos: <http://www.w3.org/2004/02/skos/core#>
SELECT DISTINCT %s
WHERE {
  ?person ?num <%s>.
  ?person a foaf:Person;
  foaf:name ?nom.
  OPTIONAL {?person skos:altLabel ?autreNom}
  OPTIONAL {?person owl:sameAs ?ident}
  OPTIONAL {?person bnf-onto:FRBNF ?bnf}
  OPTIONAL {?person bio:event [a bio:Birth ; bio:date ?naissance]}
  OPTIONAL {?person bio:event [a bio:Death ; bio:date ?mort]}
  OPTIONAL {?person foaf:gender ?genre}
  OPTIONAL {?person rdau:P60492 ?infos}
  OPTIONAL {?person skos:note ?infos2}
}`

// Query renders the query that finds people cross-referencing uri.
func Query(uri string, vars []string) (string, error) {
	if err := checkURI(uri); err != nil {
		return "", err
	}
	proj := make([]string, len(vars))
	for i := range vars {
		proj[i] = "?" + vars[i]
	}
	return fmt.Sprintf(queryTmpl, strings.Join(proj, " "), uri), nil
}

func checkURI(uri string) error {
	if !ident.IsURI(uri) {
		return fmt.Errorf("%w: %q", ErrUnsafeURI, uri)
	}
	for _, r := range uri {
		if r <= ' ' || strings.ContainsRune("<>\"{}|\\^`", r) {
			return fmt.Errorf("%w: %q", ErrUnsafeURI, uri)
		}
	}
	return nil
}
