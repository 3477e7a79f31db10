package model

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Model creates the database schema.
type Model interface {
	// Migrate creates tables in the database.
	Migrate() error
}

// Printer is an imprimeur-libraire from the joined profiles table.
type Printer struct {
	// ID is UUID v5 generated from Key.
	ID string `gorm:"type:uuid;primary_key;auto_increment:false"`

	// Key is the `xml:id` of the profile document.
	Key string `gorm:"type:varchar(255);not null;index:printer_key"`

	// Surname of the printer.
	Surname string `gorm:"type:varchar(255);not null"`

	// Forename of the printer.
	Forename string `gorm:"type:varchar(255)"`

	// AltNames are alternate forms of the name, one per line.
	AltNames string

	// Birth date as given in the table.
	Birth string `gorm:"type:varchar(50)"`

	// Death date as given in the table.
	Death string `gorm:"type:varchar(50)"`

	// Gender of the printer.
	Gender string `gorm:"type:varchar(50)"`

	// City of the shop.
	City string `gorm:"type:varchar(100)"`

	// Street of the shop.
	Street string `gorm:"type:varchar(255)"`

	// Indication precises the address.
	Indication string

	// Sign of the shop.
	Sign string `gorm:"type:varchar(255)"`

	// Note written by the project.
	Note string

	// Bio from IdRef.
	Bio string

	// IdRef link.
	IdRef string `gorm:"type:varchar(255)"`

	// Ident is the ISNI or VIAF identifier as written in the table.
	Ident string `gorm:"type:varchar(255)"`

	// IdentURI is the canonical form of Ident.
	IdentURI string `gorm:"type:varchar(255);index:printer_ident_uri"`

	// OtherIDs as written in the table.
	OtherIDs string
}

// Authority is a person found in IdRef for a printer identifier.
type Authority struct {
	ID int `gorm:"primary_key"`

	// Name is the preferred form of the name.
	Name string `gorm:"type:varchar(255);not null"`

	// IdRef is the URI of the person in IdRef.
	IdRef string `gorm:"type:varchar(255);index:authority_idref"`

	// SameAs keeps other identifiers as a list literal.
	SameAs string

	// BnfID is the FRBNF identifier.
	BnfID string `gorm:"type:varchar(50)"`

	// AltNames keeps alternate names as a list literal.
	AltNames string

	// Birth date.
	Birth string `gorm:"type:varchar(50)"`

	// Death date.
	Death string `gorm:"type:varchar(50)"`

	// Gender of the person.
	Gender string `gorm:"type:varchar(50)"`

	// Info keeps biographical information as a list literal.
	Info string

	// Notes keep other notes as a list literal.
	Notes string
}

// Mazarinade is a document of the corpus.
type Mazarinade struct {
	// ID is the `xml:id` of the document, or its file name.
	ID string `gorm:"type:varchar(255);primary_key;auto_increment:false"`

	// Title is the main title.
	Title string

	// Pages as written in the document.
	Pages string `gorm:"type:varchar(50)"`

	// Decorations is the number of printer's marks.
	Decorations int `gorm:"type:int;not null;default:0"`

	// Repository is the holding institution.
	Repository string `gorm:"type:varchar(255)"`

	// Link to a digitization.
	Link string

	// Path of the file in the corpus.
	Path string
}

// Publication links a printer to a Mazarinade it published.
type Publication struct {
	PrinterID    string `gorm:"type:uuid;primary_key;auto_increment:false"`
	MazarinadeID string `gorm:"type:varchar(255);primary_key;auto_increment:false"`
}

// SetCollation makes text columns used for sorting and joins byte-ordered.
func SetCollation(db *pgxpool.Pool) error {
	ctx := context.Background()
	type d struct {
		table, column string
		varchar       int
	}
	data := []d{
		{"printers", "key", 255},
		{"printers", "surname", 255},
		{"authorities", "name", 255},
		{"mazarinades", "id", 255},
		{"publications", "mazarinade_id", 255},
	}
	qStr := `
ALTER TABLE %s
	ALTER COLUMN %s TYPE VARCHAR(%d) COLLATE "C"
`

	for _, v := range data {
		q := fmt.Sprintf(qStr, v.table, v.column, v.varchar)
		_, err := db.Exec(ctx, q)
		if err != nil {
			slog.Error(
				"Cannot set collation.",
				"table", v.table,
				"column", v.column,
			)
			return err
		}
	}
	return nil
}
