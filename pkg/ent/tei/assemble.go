package tei

import (
	"strconv"

	"github.com/antonomaz/imprimeurs/pkg/ent/corpus"
	"github.com/antonomaz/imprimeurs/pkg/ent/profile"
)

const (
	certHigh = "high"
	certLow  = "low"

	birthUnknown = "1600"
	deathUnknown = "1700"

	occupation = "Imprimeur-libraire"
	country    = "France"

	projectName = "Antonomaz"
	projectRef  = "https://github.com/Antonomaz"
	licenceURL  = "https://creativecommons.org/licenses/by/4.0"
)

// Editor is the person responsible for the profile documents.
type Editor struct {
	// ID is the `xml:id` of the responsibility statement, referenced by
	// revision changes.
	ID string

	// Ref is an identifier of the editor (ORCID).
	Ref string

	// Name of the editor.
	Name string

	// Resp describes the responsibility.
	Resp string
}

// Assembler builds profile documents.
type Assembler struct {
	// Cities maps city names to GeoNames references.
	Cities map[string]string

	// Editor of the documents.
	Editor Editor

	// ChangeDate is the date of the revision that created the documents.
	ChangeDate string

	// ChangeText describes that revision.
	ChangeText string

	// Placeholder adds a neutral sub-document when no Mazarinade matches,
	// so every corpus has at least one TEI element.
	Placeholder bool
}

// Assemble creates a profile document from a profile and the Mazarinades
// published by the printer. Every entry produces exactly one
// sub-document, in the given order.
func (a Assembler) Assemble(p profile.Profile, entries []corpus.Entry) Corpus {
	res := Corpus{
		ID:     p.Key(),
		Header: a.header(p),
	}
	for _, e := range entries {
		res.Docs = append(res.Docs, document(e))
	}
	if len(res.Docs) == 0 && a.Placeholder {
		res.Docs = append(res.Docs, placeholder())
	}
	return res
}

func (a Assembler) header(p profile.Profile) Header {
	ref := p.Ident
	if ref == "" {
		ref = UnknownPerson
	}
	return Header{
		FileDesc: FileDesc{
			TitleStmt: TitleStmt{
				Title: Title{
					Type:     "standard",
					Ref:      ref,
					Forename: p.Forename,
					Surname:  p.Surname,
				},
			},
			EditionStmt: EditionStmt{
				RespStmt: RespStmt{
					ID:   a.Editor.ID,
					Ref:  a.Editor.Ref,
					Name: a.Editor.Name,
					Resp: a.Editor.Resp,
				},
			},
			PublicationStmt: publication(true),
			ListBibl:        bibls(p),
		},
		ProfileDesc: ProfileDesc{Person: a.person(p)},
		RevisionDesc: RevisionDesc{
			Changes: []Change{
				{When: a.ChangeDate, Who: "#" + a.Editor.ID, Text: a.ChangeText},
			},
		},
	}
}

func bibls(p profile.Profile) []Bibl {
	ids := p.OtherIDList()
	if len(ids) == 0 {
		ids = []string{""}
	}
	res := make([]Bibl, 0, len(ids)+1)
	for _, v := range ids {
		if v == "" {
			v = NoCorresp
		}
		res = append(res, Bibl{Source: v})
	}
	if p.IdRef != "" {
		res = append(res, Bibl{Source: p.IdRef})
	}
	return res
}

func (a Assembler) person(p profile.Profile) Person {
	res := Person{
		PersNames:  []PersName{{Type: "standard", Name: p.FullName()}},
		Sex:        p.Gender,
		Birth:      date(p.Birth, birthUnknown),
		Death:      date(p.Death, deathUnknown),
		Occupation: occupation,
		Residence:  a.residence(p),
		Events:     events(p),
	}
	for _, v := range p.AltNameList() {
		res.PersNames = append(res.PersNames, PersName{Type: "alternative", Name: v})
	}
	return res
}

func date(when, unknown string) Date {
	if when == "" {
		return Date{When: unknown, Cert: certLow}
	}
	return Date{When: when, Cert: certHigh}
}

// residence is certain only when both a street-level address and a city
// are known.
func (a Assembler) residence(p profile.Profile) Residence {
	res := Residence{
		Cert: certLow,
		Address: Address{
			ObjectName: p.Sign,
			Street:     p.Address(),
			Settlement: Settlement{Ref: UnknownPlace, Name: p.City},
			Country:    country,
		},
	}
	if ref, ok := a.Cities[p.City]; ok && p.City != "" {
		res.Address.Settlement.Ref = ref
	}
	if p.HasAddress() && p.City != "" {
		res.Cert = certHigh
	}
	return res
}

// events keep the IdRef and the project notes as separate entries.
func events(p profile.Profile) []Event {
	bio := Event{Label: Label{Type: "bio"}}
	if txt := p.BioText(); txt != "" {
		bio.Label.Source = "IdRef"
		bio.Label.Text = txt
	}
	res := []Event{bio}
	if p.Note != "" {
		res = append(res, Event{Label: Label{
			Type:   "bio",
			Source: projectName,
			Text:   p.Note,
		}})
	}
	return res
}

func publication(withID bool) PublicationStmt {
	res := PublicationStmt{
		Publisher: Publisher{Ref: projectRef, Name: projectName},
		Availability: Availability{
			Status:  "restricted",
			N:       "cc-by",
			Licence: Licence{Target: licenceURL},
		},
	}
	if withID {
		res.Publisher.ID = projectName
	}
	return res
}

func document(e corpus.Entry) Document {
	pages := e.Pages
	if pages == "" {
		pages = "0"
	}
	link := e.Link()
	if link == "" {
		link = "None"
	}
	res := Document{
		Corresp: e.Corresp(),
		FileDesc: DocFileDesc{
			Title: e.Title,
			Measures: []Measure{
				{Unit: "pages", Quantity: pages},
				{Unit: "decoration", Quantity: strconv.Itoa(e.Decorations)},
			},
			PublicationStmt: publication(false),
			MsDesc: MsDesc{
				Repository: e.Repository(),
				Idno:       Idno{Source: link},
			},
		},
	}
	for _, v := range e.Authors {
		ref := v.Ref
		if ref == "" {
			ref = UnknownPerson
		}
		res.FileDesc.Authors = append(res.FileDesc.Authors, Author{Ref: ref, Name: v.Name})
	}
	return res
}

func placeholder() Document {
	return Document{
		Corresp: NoCorresp,
		FileDesc: DocFileDesc{
			Authors:         []Author{{Ref: UnknownPerson}},
			Measures:        []Measure{{Unit: "pages", Quantity: "0"}},
			PublicationStmt: publication(false),
			MsDesc: MsDesc{
				Repository: "Sans lieu",
				Idno:       Idno{Source: "None"},
			},
		},
	}
}
