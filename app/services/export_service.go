package services

import (
	"bytes"

	"catatan/app/models"

	"github.com/jung-kurt/gofpdf"
)

type Exporter struct{}

func NewExporter() *Exporter { return &Exporter{} }

// PDF renders the notes into a single A4 document: a title header followed by
// one block per note. Input order is preserved; images are not embedded.
// category narrows the list unless it is the "Semua" sentinel.
func (e *Exporter) PDF(notes []models.Note, category string) ([]byte, error) {
	if category == "" {
		category = models.CategoryAll
	}
	if category != models.CategoryAll {
		notes = FilterNotes(notes, NoteFilter{Category: category})
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "NOTES - "+category, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, n := range notes {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 6, n.Title, "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "Kategori: "+n.Category, "", "L", false)
		pdf.Ln(2)
		pdf.MultiCell(0, 5, n.Content, "", "L", false)
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
