// Package slog provides logging decorators for the note extractor and store.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/xhsnote"
)

// Ensure LoggingExtractor implements xhsnote.Extractor.
var _ xhsnote.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   xhsnote.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next xhsnote.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string, sourceURL string, opts xhsnote.ExtractOptions) (ext *xhsnote.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", sourceURL,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if ext != nil && ext.Note != nil {
			attrs = append(attrs,
				"title", ext.Note.Title,
				"tags", len(ext.Tags),
				"likes", ext.Note.Likes,
				"favorites", ext.Note.Favorites,
				"comments", ext.Note.Comments,
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
			e.logger.Warn("note extraction", attrs...)
			return
		}
		e.logger.Info("note extraction", attrs...)
	}(time.Now())
	return e.next.Extract(html, sourceURL, opts)
}
