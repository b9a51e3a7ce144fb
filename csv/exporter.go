// Package csv implements the spreadsheet-friendly CSV export of notes.
package csv

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/xhsnote"
)

// Ensure Exporter implements xhsnote.Exporter at compile time.
var _ xhsnote.Exporter = (*Exporter)(nil)

// BOM marks the output as UTF-8 for spreadsheet applications.
const BOM = "\ufeff"

// Header is the first line of every export.
var Header = []string{"address", "title", "body", "likes", "favorites", "comments", "capturedAt"}

// Exporter writes notes as CSV. Text fields are always quoted and counters
// never are; rows are separated by a bare newline.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Extension returns "csv".
func (e *Exporter) Extension() string {
	return "csv"
}

// Export writes the BOM, the header and one row per note.
func (e *Exporter) Export(w io.Writer, notes []*xhsnote.Note) error {
	var b strings.Builder
	b.WriteString(BOM)
	b.WriteString(strings.Join(Header, ","))
	for _, n := range notes {
		b.WriteByte('\n')
		b.WriteString(Row(n))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Row renders a single note as a CSV line without the trailing newline.
func Row(n *xhsnote.Note) string {
	fields := []string{
		quote(n.SourceURL),
		quote(n.Title),
		quote(n.Body),
		strconv.Itoa(n.Likes),
		strconv.Itoa(n.Favorites),
		strconv.Itoa(n.Comments),
		quote(n.CapturedAt.UTC().Format(time.RFC3339)),
	}
	return strings.Join(fields, ",")
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
