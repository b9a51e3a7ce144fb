package mock

import (
	"io"

	"github.com/fwojciec/xhsnote"
)

var _ xhsnote.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of xhsnote.Exporter.
type Exporter struct {
	ExportFn    func(w io.Writer, notes []*xhsnote.Note) error
	ExtensionFn func() string
}

func (e *Exporter) Export(w io.Writer, notes []*xhsnote.Note) error {
	return e.ExportFn(w, notes)
}

func (e *Exporter) Extension() string {
	return e.ExtensionFn()
}

var _ xhsnote.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of xhsnote.Clipboard.
type Clipboard struct {
	WriteTextFn func(text string) error
}

func (c *Clipboard) WriteText(text string) error {
	return c.WriteTextFn(text)
}
