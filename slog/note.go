package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/xhsnote"
)

// Ensure LoggingNoteStore implements xhsnote.NoteStore.
var _ xhsnote.NoteStore = (*LoggingNoteStore)(nil)

// LoggingNoteStore wraps a NoteStore with debug logging.
type LoggingNoteStore struct {
	next   xhsnote.NoteStore
	logger *slog.Logger
}

// NewLoggingNoteStore creates a new LoggingNoteStore.
func NewLoggingNoteStore(next xhsnote.NoteStore, logger *slog.Logger) *LoggingNoteStore {
	return &LoggingNoteStore{next: next, logger: logger}
}

// Upsert delegates to the wrapped store and logs the operation.
func (s *LoggingNoteStore) Upsert(ctx context.Context, note *xhsnote.Note) (err error) {
	defer func(begin time.Time) {
		var url string
		if note != nil {
			url = note.SourceURL
		}
		s.logger.Debug("note upsert",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Upsert(ctx, note)
}

// All delegates to the wrapped store and logs the operation.
func (s *LoggingNoteStore) All(ctx context.Context) (notes []*xhsnote.Note, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("note list",
			"count", len(notes),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.All(ctx)
}

// Reset delegates to the wrapped store and logs the operation.
func (s *LoggingNoteStore) Reset(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("note reset",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Reset(ctx)
}

// Count delegates to the wrapped store and logs the operation.
func (s *LoggingNoteStore) Count(ctx context.Context) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("note count",
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Count(ctx)
}
