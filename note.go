package xhsnote

import (
	"context"
	"time"
)

// StorageKey is the slot under which the note collection is persisted.
// It matches the localStorage key used by the browser user script, so a
// dumped slot can be imported unchanged.
const StorageKey = "xhs_scraped_notes"

// Metrics holds the engagement counters shown under a note.
type Metrics struct {
	Likes     int `json:"likes"`
	Favorites int `json:"favorites"`
	Comments  int `json:"comments"`
}

// IsZero reports whether all counters are zero.
func (m Metrics) IsZero() bool {
	return m.Likes == 0 && m.Favorites == 0 && m.Comments == 0
}

// Note represents one extracted note page.
type Note struct {
	SourceURL string `json:"url"`
	Title     string `json:"title"`
	Body      string `json:"content"`
	Metrics
	CapturedAt time.Time `json:"timestamp"`
}

// Validate returns an error if the note contains invalid fields.
func (n *Note) Validate() error {
	if n == nil {
		return Errorf(EINVALID, "note required")
	}
	if n.SourceURL == "" {
		return Errorf(EINVALID, "note source URL required")
	}
	if n.Title == "" {
		return Errorf(EINVALID, "note title required")
	}
	if n.Likes < 0 || n.Favorites < 0 || n.Comments < 0 {
		return Errorf(EINVALID, "note metrics must not be negative")
	}
	return nil
}

// NoteStore represents the persisted, ordered collection of notes.
// The collection holds at most one note per source URL.
type NoteStore interface {
	// Upsert replaces the note with the same source URL in place, or appends
	// it when no such note exists.
	Upsert(ctx context.Context, note *Note) error

	// All returns the notes in insertion order. A missing or unreadable
	// slot yields an empty collection.
	All(ctx context.Context) ([]*Note, error)

	// Reset permanently removes every note. Callers must confirm first.
	Reset(ctx context.Context) error

	// Count returns the number of stored notes.
	Count(ctx context.Context) (int, error)
}

// SlotStore is a durable key-value store holding opaque values in named slots.
type SlotStore interface {
	// Load returns the value stored under key.
	// Returns ENOTFOUND if the slot does not exist.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save replaces the value stored under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, key string) error
}
