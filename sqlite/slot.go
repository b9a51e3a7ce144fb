package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/xhsnote"
)

// Compile-time interface verification.
var _ xhsnote.SlotStore = (*SlotStore)(nil)

// SlotStore implements xhsnote.SlotStore using SQLite.
type SlotStore struct {
	db *DB
}

// NewSlotStore creates a new SlotStore.
func NewSlotStore(db *DB) *SlotStore {
	return &SlotStore{db: db}
}

// Load returns the value stored under key.
func (s *SlotStore) Load(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, xhsnote.Errorf(xhsnote.EINVALID, "slot key required")
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, xhsnote.Errorf(xhsnote.ENOTFOUND, "slot %q not found", key)
	}
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Save replaces the value stored under key.
func (s *SlotStore) Save(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return xhsnote.Errorf(xhsnote.EINVALID, "slot key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, data, time.Now().UTC().Format(time.RFC3339))

	return err
}

// Delete removes the slot.
func (s *SlotStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return xhsnote.Errorf(xhsnote.EINVALID, "slot key required")
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, key)
	return err
}
