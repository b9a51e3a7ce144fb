package mock

import "github.com/fwojciec/xhsnote"

var _ xhsnote.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of xhsnote.Extractor.
type Extractor struct {
	ExtractFn func(html string, sourceURL string, opts xhsnote.ExtractOptions) (*xhsnote.Extraction, error)
}

func (e *Extractor) Extract(html string, sourceURL string, opts xhsnote.ExtractOptions) (*xhsnote.Extraction, error) {
	return e.ExtractFn(html, sourceURL, opts)
}
