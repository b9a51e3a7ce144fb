// Package xlsx implements the Excel workbook export of notes.
package xlsx

import (
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/xhsnote"
	"github.com/fwojciec/xhsnote/csv"
	"github.com/tealeg/xlsx/v2"
)

// Ensure Exporter implements xhsnote.Exporter at compile time.
var _ xhsnote.Exporter = (*Exporter)(nil)

// SheetName is the name of the single sheet holding the notes.
const SheetName = "notes"

// Exporter writes notes as a workbook with the same columns as the CSV
// export. Counters are stored as numbers.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Extension returns "xlsx".
func (e *Exporter) Extension() string {
	return "xlsx"
}

// Export writes a workbook containing a header row and one row per note.
func (e *Exporter) Export(w io.Writer, notes []*xhsnote.Note) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(SheetName)
	if err != nil {
		return fmt.Errorf("xlsx: add sheet: %w", err)
	}

	header := sheet.AddRow()
	for _, h := range csv.Header {
		header.AddCell().SetString(h)
	}

	for _, n := range notes {
		row := sheet.AddRow()
		row.AddCell().SetString(n.SourceURL)
		row.AddCell().SetString(n.Title)
		row.AddCell().SetString(n.Body)
		row.AddCell().SetInt(n.Likes)
		row.AddCell().SetInt(n.Favorites)
		row.AddCell().SetInt(n.Comments)
		row.AddCell().SetString(n.CapturedAt.UTC().Format(time.RFC3339))
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return nil
}
