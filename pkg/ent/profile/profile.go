// Package profile reads printer records from the joined printers table.
package profile

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/antonomaz/imprimeurs/internal/str"
	"github.com/antonomaz/imprimeurs/pkg/ent/row"
)

// ErrShortRow is returned when a row has fewer columns than a profile needs.
var ErrShortRow = errors.New("row has too few columns")

// KeyPrefix starts every profile key.
const KeyPrefix = "IL_"

// Positions of the fields in the joined table.
const (
	surnameF = iota
	forenameF
	altNamesF
	birthF
	deathF
	genderF
	cityF
	streetF
	indicationF
	signF
	noteF
	bioF
	idrefF
	remarksF
	identF
	otherIDsF

	// FieldsNum is the number of columns of the joined table.
	FieldsNum
)

// Profile is one printer of the joined table.
type Profile struct {
	// Surname of the printer.
	Surname string

	// Forename of the printer.
	Forename string

	// AltNames keeps alternate names as a list literal.
	AltNames string

	// Birth date, empty if unknown.
	Birth string

	// Death date, empty if unknown.
	Death string

	// Gender of the printer.
	Gender string

	// City of the shop.
	City string

	// Street of the shop.
	Street string

	// Indication is a free-form precision of the address.
	Indication string

	// Sign is the shop sign ("enseigne").
	Sign string

	// Note is a biographical note written by the project.
	Note string

	// Bio is biographical information from IdRef.
	Bio string

	// IdRef is the IdRef link of the printer.
	IdRef string

	// Remarks are other IdRef notes.
	Remarks string

	// Ident is the ISNI or VIAF identifier in shorthand form.
	Ident string

	// OtherIDs is a comma-separated list of other identifiers.
	OtherIDs string
}

// FromRow creates a Profile from a row of the joined table.
func FromRow(r []string) (Profile, error) {
	if len(r) < FieldsNum {
		return Profile{}, fmt.Errorf("%w: %d of %d", ErrShortRow, len(r), FieldsNum)
	}
	f := func(i int) string { return strings.TrimSpace(r[i]) }
	res := Profile{
		Surname:    f(surnameF),
		Forename:   f(forenameF),
		AltNames:   f(altNamesF),
		Birth:      f(birthF),
		Death:      f(deathF),
		Gender:     f(genderF),
		City:       f(cityF),
		Street:     f(streetF),
		Indication: f(indicationF),
		Sign:       f(signF),
		Note:       f(noteF),
		Bio:        f(bioF),
		IdRef:      f(idrefF),
		Remarks:    f(remarksF),
		Ident:      f(identF),
		OtherIDs:   f(otherIDsF),
	}
	return res, nil
}

// FullName returns the standard form of the name, `Surname, Forename`.
func (p Profile) FullName() string {
	return p.Surname + ", " + p.Forename
}

// Key returns a stable ASCII key built from the name. It is used as
// `xml:id` of the profile document and as the file name.
func (p Profile) Key() string {
	return KeyPrefix + fold(p.Surname+p.Forename)
}

// AltNameList returns alternate names as a list.
func (p Profile) AltNameList() []string {
	return row.ParseList(p.AltNames)
}

// BioText returns IdRef information without list decoration or
// surrounding quotes.
func (p Profile) BioText() string {
	res := strings.Join(row.ParseList(p.Bio), " ")
	res = strings.TrimPrefix(res, "'")
	return strings.TrimSuffix(res, "'")
}

// OtherIDList splits other identifiers. Empty items are kept, so that
// their position is not lost.
func (p Profile) OtherIDList() []string {
	if p.OtherIDs == "" {
		return nil
	}
	res := strings.Split(p.OtherIDs, ",")
	for i := range res {
		res[i] = strings.TrimSpace(res[i])
	}
	return res
}

// HasAddress checks if the profile knows a street-level address.
func (p Profile) HasAddress() bool {
	return p.Street != "" || p.Indication != ""
}

// Address combines street and indication.
func (p Profile) Address() string {
	switch {
	case p.Street != "" && p.Indication != "":
		return p.Street + " ; " + p.Indication
	case p.Street != "":
		return p.Street
	default:
		return p.Indication
	}
}

var dropped = strings.NewReplacer(
	" ", "", "(", "", ")", "", "'", "", "’", "", "-", "", ",", "", ".", "",
	"/", "", "\\", "",
)

func fold(s string) string {
	return dropped.Replace(str.Fold(s))
}

// Keys hands out profile keys that are unique within one run.
type Keys struct {
	used map[string]struct{}
}

// NewKeys creates an empty set of keys.
func NewKeys() *Keys {
	return &Keys{used: make(map[string]struct{})}
}

// Unique returns key if it is still free, otherwise the first free
// `key_N` with N starting at 2. The returned key is marked as used.
func (k *Keys) Unique(key string) string {
	res := key
	for n := 2; ; n++ {
		if _, ok := k.used[res]; !ok {
			break
		}
		res = key + "_" + strconv.Itoa(n)
	}
	k.used[res] = struct{}{}
	return res
}
