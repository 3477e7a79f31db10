// Package tei describes printer profile documents in TEI and builds them
// from profiles and the Mazarinades that name the printer as publisher.
package tei

import (
	"encoding/xml"
	"fmt"
	"io"
)

const (
	// Namespace of TEI elements.
	Namespace = "http://www.tei-c.org/ns/1.0"

	// UnknownPlace is a GeoNames reference for missing or unmapped cities.
	UnknownPlace = "geonames:0000"

	// UnknownPerson is an ISNI reference for people without identifier.
	UnknownPerson = "isni:0000"

	// NoCorresp marks a placeholder sub-document.
	NoCorresp = "none"
)

// Corpus is the root of a profile document. It holds the printer in its
// header and one TEI element per Mazarinade the printer published.
type Corpus struct {
	XMLName xml.Name   `xml:"http://www.tei-c.org/ns/1.0 teiCorpus"`
	ID      string     `xml:"http://www.w3.org/XML/1998/namespace id,attr"`
	Header  Header     `xml:"teiHeader"`
	Docs    []Document `xml:"TEI"`
}

// SubDocuments returns the sub-documents that correspond to a Mazarinade,
// leaving out the placeholder.
func (c Corpus) SubDocuments() []Document {
	var res []Document
	for _, v := range c.Docs {
		if v.Corresp != NoCorresp {
			res = append(res, v)
		}
	}
	return res
}

// Encode writes the document with an XML declaration, indented.
func (c Corpus) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("cannot encode %s: %w", c.ID, err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Header of the profile document.
type Header struct {
	FileDesc     FileDesc     `xml:"fileDesc"`
	ProfileDesc  ProfileDesc  `xml:"profileDesc"`
	RevisionDesc RevisionDesc `xml:"revisionDesc"`
}

type FileDesc struct {
	TitleStmt       TitleStmt       `xml:"titleStmt"`
	EditionStmt     EditionStmt     `xml:"editionStmt"`
	PublicationStmt PublicationStmt `xml:"publicationStmt"`
	ListBibl        []Bibl          `xml:"sourceDesc>listBibl>bibl"`
}

type TitleStmt struct {
	Title Title `xml:"title"`
}

// Title carries the standard name and the identifier of the printer.
type Title struct {
	Type     string `xml:"type,attr"`
	Ref      string `xml:"ref,attr"`
	Forename string `xml:"forename"`
	Surname  string `xml:"surname"`
}

type EditionStmt struct {
	Edition  string   `xml:"edition"`
	RespStmt RespStmt `xml:"respStmt"`
}

type RespStmt struct {
	ID   string `xml:"http://www.w3.org/XML/1998/namespace id,attr"`
	Ref  string `xml:"ref,attr"`
	Name string `xml:"name"`
	Resp string `xml:"resp"`
}

type PublicationStmt struct {
	Publisher    Publisher    `xml:"publisher"`
	Availability Availability `xml:"availability"`
}

type Publisher struct {
	Ref  string `xml:"ref,attr"`
	ID   string `xml:"http://www.w3.org/XML/1998/namespace id,attr,omitempty"`
	Name string `xml:",chardata"`
}

type Availability struct {
	Status  string  `xml:"status,attr"`
	N       string  `xml:"n,attr"`
	Licence Licence `xml:"licence"`
}

type Licence struct {
	Target string `xml:"target,attr"`
}

type Bibl struct {
	Source string `xml:"source,attr"`
}

type ProfileDesc struct {
	Person Person `xml:"particDesc>listPerson>person"`
}

// Person gathers what is known about the life of the printer.
type Person struct {
	PersNames  []PersName `xml:"persName"`
	Sex        string     `xml:"sex"`
	Birth      Date       `xml:"birth"`
	Death      Date       `xml:"death"`
	Occupation string     `xml:"occupation"`
	Residence  Residence  `xml:"residence"`
	Events     []Event    `xml:"listEvent>event"`
}

type PersName struct {
	Type string `xml:"type,attr"`
	Name string `xml:",chardata"`
}

// Date with a confidence marker.
type Date struct {
	When string `xml:"when,attr"`
	Cert string `xml:"cert,attr"`
}

type Residence struct {
	Cert    string  `xml:"cert,attr"`
	Address Address `xml:"address"`
}

type Address struct {
	ObjectName string     `xml:"objectName"`
	Street     string     `xml:"street"`
	Settlement Settlement `xml:"settlement"`
	Country    string     `xml:"country"`
}

type Settlement struct {
	Ref  string `xml:"ref,attr,omitempty"`
	Name string `xml:",chardata"`
}

type Event struct {
	Label Label `xml:"label"`
}

type Label struct {
	Type   string `xml:"type,attr"`
	Source string `xml:"source,attr,omitempty"`
	Text   string `xml:",chardata"`
}

type RevisionDesc struct {
	Changes []Change `xml:"listChange>change"`
}

type Change struct {
	When string `xml:"when,attr"`
	Who  string `xml:"who,attr"`
	Text string `xml:",chardata"`
}

// Document is a Mazarinade inside a profile document. Corresp points to
// the file of the Mazarinade.
type Document struct {
	Corresp  string      `xml:"corresp,attr"`
	FileDesc DocFileDesc `xml:"teiHeader>fileDesc"`
	Div      string      `xml:"text>body>div"`
}

type DocFileDesc struct {
	Title           string          `xml:"titleStmt>title"`
	Authors         []Author        `xml:"titleStmt>author"`
	Measures        []Measure       `xml:"extent>measure"`
	PublicationStmt PublicationStmt `xml:"publicationStmt"`
	MsDesc          MsDesc          `xml:"sourceDesc>msDesc"`
}

type Author struct {
	Ref  string `xml:"ref,attr"`
	Name string `xml:",chardata"`
}

type Measure struct {
	Unit     string `xml:"unit,attr"`
	Quantity string `xml:"quantity,attr"`
}

type MsDesc struct {
	Repository string `xml:"msIdentifier>repository"`
	Idno       Idno   `xml:"msIdentifier>idno"`
	DecoNote   string `xml:"physDesc>decoDesc>decoNote"`
}

type Idno struct {
	Source string `xml:"source,attr"`
}
