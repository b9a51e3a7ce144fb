package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/xhsnote"
)

// Ensure SlotStore implements xhsnote.SlotStore at compile time.
var _ xhsnote.SlotStore = (*SlotStore)(nil)

// SlotStore implements xhsnote.SlotStore with one JSON file per slot.
// Saves replace the file atomically, so a failed save keeps the previous value.
type SlotStore struct {
	baseDir string
}

// NewSlotStore creates a new SlotStore keeping its files in baseDir.
func NewSlotStore(baseDir string) *SlotStore {
	return &SlotStore{baseDir: baseDir}
}

func (s *SlotStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", xhsnote.Errorf(xhsnote.EINVALID, "invalid slot key %q", key)
	}
	return filepath.Join(s.baseDir, key+".json"), nil
}

// Load returns the value stored under key.
func (s *SlotStore) Load(ctx context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, xhsnote.Errorf(xhsnote.ENOTFOUND, "slot %q not found", key)
	}
	return data, err
}

// Save replaces the value stored under key.
func (s *SlotStore) Save(ctx context.Context, key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	return writeFileAtomic(path, func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(data))
		return err
	})
}

// Delete removes the slot.
func (s *SlotStore) Delete(ctx context.Context, key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
