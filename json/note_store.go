// Package json implements note persistence as a JSON array kept in a
// single storage slot.
package json

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/xhsnote"
)

// Ensure NoteStore implements xhsnote.NoteStore at compile time.
var _ xhsnote.NoteStore = (*NoteStore)(nil)

// NoteStore keeps the note collection as a JSON array under one slot key.
// Notes are unique by source URL and keep the position of their first capture.
type NoteStore struct {
	slots  xhsnote.SlotStore
	key    string
	logger *slog.Logger
}

// NewNoteStore creates a NoteStore persisting to slots under key.
// A nil logger discards log output.
func NewNoteStore(slots xhsnote.SlotStore, key string, logger *slog.Logger) *NoteStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &NoteStore{slots: slots, key: key, logger: logger}
}

// Upsert inserts the note, or replaces the stored note with the same source
// URL in place.
func (s *NoteStore) Upsert(ctx context.Context, note *xhsnote.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}

	notes, err := s.All(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, n := range notes {
		if n.SourceURL == note.SourceURL {
			notes[i] = note
			replaced = true
			break
		}
	}
	if !replaced {
		notes = append(notes, note)
	}

	return s.save(ctx, notes)
}

// All returns every stored note in insertion order. A missing or unreadable
// collection reads as empty.
func (s *NoteStore) All(ctx context.Context) ([]*xhsnote.Note, error) {
	data, err := s.slots.Load(ctx, s.key)
	if xhsnote.ErrorCode(err) == xhsnote.ENOTFOUND {
		return []*xhsnote.Note{}, nil
	} else if err != nil {
		return nil, err
	}

	var notes []*xhsnote.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		s.logger.Warn("stored notes are unreadable, starting empty", "key", s.key, "err", err)
		return []*xhsnote.Note{}, nil
	}

	out := make([]*xhsnote.Note, 0, len(notes))
	for _, n := range notes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

// Reset removes every stored note.
func (s *NoteStore) Reset(ctx context.Context) error {
	return s.slots.Delete(ctx, s.key)
}

// Count returns the number of stored notes.
func (s *NoteStore) Count(ctx context.Context) (int, error) {
	notes, err := s.All(ctx)
	if err != nil {
		return 0, err
	}
	return len(notes), nil
}

func (s *NoteStore) save(ctx context.Context, notes []*xhsnote.Note) error {
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to encode notes: %w", err)
	}
	return s.slots.Save(ctx, s.key, data)
}
