package corpus

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antonomaz/imprimeurs/internal/str"
)

const xmlNS = "http://www.w3.org/XML/1998/namespace"

// Parse reads one Mazarinade TEI document. Elements are matched by local
// name, so documents with or without the TEI namespace are accepted.
// If the root has no `xml:id`, the entry is returned together with ErrNoID.
func Parse(r io.Reader) (Entry, error) {
	p := parser{}
	d := xml.NewDecoder(r)
	d.Strict = true
	d.Entity = xml.HTMLEntity

	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return p.entry, fmt.Errorf("cannot parse TEI: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			p.start(t)
		case xml.EndElement:
			p.end()
		case xml.CharData:
			if p.capt != nil {
				p.capt.sb.Write(t)
			}
		}
	}

	if p.entry.ID == "" {
		return p.entry, ErrNoID
	}
	return p.entry, nil
}

type capture struct {
	depth int
	sb    strings.Builder
	done  func(string)
}

type parser struct {
	stack  []string
	entry  Entry
	capt   *capture
	titles []string
	root   bool
}

func (p *parser) start(t xml.StartElement) {
	p.stack = append(p.stack, t.Name.Local)
	name := t.Name.Local

	if !p.root {
		p.root = true
		if name == "TEI" {
			p.entry.ID = strings.ReplaceAll(attr(t, xmlNS, "id"), " ", "")
		}
		return
	}

	switch {
	case name == "publisher" && p.under("teiHeader", "sourceDesc", "bibl"):
		if ref := attr(t, "", "ref"); ref != "" {
			p.entry.Publishers = append(p.entry.Publishers, ref)
		}
	case name == "title" && p.parent() == "titleStmt" && p.under("teiHeader") &&
		attr(t, "", "type") == "main":
		p.capture(func(s string) {
			if s != "" {
				p.titles = append(p.titles, s)
				p.entry.Title = strings.Join(p.titles, " ")
			}
		})
	case name == "author" && p.under("teiHeader", "sourceDesc", "bibl"):
		ref := attr(t, "", "ref")
		p.capture(func(s string) {
			p.entry.Authors = append(p.entry.Authors, Author{Ref: ref, Name: s})
		})
	case name == "measure" && p.parent() == "extent" && p.ancestor(2) == "bibl" &&
		p.under("sourceDesc"):
		if p.entry.Pages == "" {
			p.entry.Pages = str.Squeeze(attr(t, "", "quantity"))
		}
	case name == "ref" && p.parent() == "bibl" && p.under("teiHeader", "sourceDesc"):
		if target := attr(t, "", "target"); target != "" {
			p.entry.Links = append(p.entry.Links, target)
		}
	case name == "figure" && attr(t, "", "type") == "decoration" &&
		p.under("text", "body", "p"):
		p.entry.Decorations++
	case name == "settlement" && p.parent() == "msIdentifier" &&
		p.under("sourceDesc", "msDesc"):
		p.capture(func(s string) { p.entry.Settlement = s })
	case name == "institution" && p.parent() == "msIdentifier" &&
		p.under("sourceDesc", "msDesc"):
		p.capture(func(s string) { p.entry.Institution = s })
	}
}

func (p *parser) end() {
	if p.capt != nil && len(p.stack) == p.capt.depth {
		p.capt.done(str.Squeeze(p.capt.sb.String()))
		p.capt = nil
	}
	if len(p.stack) > 0 {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// capture collects the text of the current element, nested elements
// included. Captures do not nest.
func (p *parser) capture(done func(string)) {
	if p.capt != nil {
		return
	}
	p.capt = &capture{depth: len(p.stack), done: done}
}

func (p *parser) parent() string {
	return p.ancestor(1)
}

// ancestor returns the name of the n-th ancestor of the current element.
func (p *parser) ancestor(n int) string {
	i := len(p.stack) - 1 - n
	if i < 0 {
		return ""
	}
	return p.stack[i]
}

// under checks that the ancestors of the current element contain names
// in the given order, not necessarily adjacent.
func (p *parser) under(names ...string) bool {
	j := 0
	for _, v := range p.stack[:len(p.stack)-1] {
		if j < len(names) && v == names[j] {
			j++
		}
	}
	return j == len(names)
}

func attr(t xml.StartElement, space, local string) string {
	for _, a := range t.Attr {
		if a.Name.Local != local {
			continue
		}
		if space == "" && a.Name.Space == "" {
			return a.Value
		}
		if space != "" && (a.Name.Space == space || a.Name.Space == "xml") {
			return a.Value
		}
	}
	return ""
}
