// Package clipboard delivers text to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"github.com/fwojciec/xhsnote"
)

// Ensure Writer implements xhsnote.Clipboard at compile time.
var _ xhsnote.Clipboard = (*Writer)(nil)

// Writer writes text to the system clipboard.
type Writer struct {
	write func(string) error
}

// NewWriter creates a Writer backed by the system clipboard.
func NewWriter() *Writer {
	return &Writer{write: clipboard.WriteAll}
}

// WriteText replaces the clipboard contents with text.
// Returns EINTERNAL if the clipboard cannot be written, e.g. when no
// clipboard utility is installed.
func (w *Writer) WriteText(text string) error {
	if err := w.write(text); err != nil {
		return xhsnote.Errorf(xhsnote.EINTERNAL, "failed to write clipboard: %v", err)
	}
	return nil
}
