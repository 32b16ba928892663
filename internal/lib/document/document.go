// Package document serializes a rendered borderò layout.
package document

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"bordero/internal/lib/layout"

	"github.com/go-pdf/fpdf"
)

const (
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

type Writer interface {
	Write(w io.Writer, doc layout.Document) error
	ContentType() string
	Extension() string
}

// ForFormat returns the writer registered for format, nil when unknown.
func ForFormat(format string) Writer {
	switch format {
	case "", FormatPDF:
		return NewPDF()
	case FormatJSON:
		return JSON{}
	default:
		return nil
	}
}

// PDF draws every instruction on a single A4 portrait page, in millimetres,
// with a core font.
type PDF struct {
	FontFamily string
	// CreatedAt is stamped into the document metadata; zero means now.
	CreatedAt time.Time
}

func NewPDF() *PDF {
	return &PDF{FontFamily: "Helvetica"}
}

func (p *PDF) Write(w io.Writer, doc layout.Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	if !p.CreatedAt.IsZero() {
		pdf.SetCreationDate(p.CreatedAt)
	}

	// core fonts are cp1252; labels carry accented letters
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	for _, in := range doc.Instructions {
		pdf.SetFont(p.FontFamily, "", in.FontSize)
		pdf.Text(in.X, in.Y, tr(in.Text))
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}

	return nil
}

func (p *PDF) ContentType() string {
	return "application/pdf"
}

func (p *PDF) Extension() string {
	return ".pdf"
}

// JSON writes the layout itself, for previews and debugging.
type JSON struct{}

func (JSON) Write(w io.Writer, doc layout.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}

	return nil
}

func (JSON) ContentType() string {
	return "application/json"
}

func (JSON) Extension() string {
	return ".json"
}
