// Package fs provides file-based storage for notes and exported files.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeFileAtomic writes a file through a temporary file in the same
// directory and renames it into place, so readers never see a partial file.
func writeFileAtomic(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	// CreateTemp uses 0600; exported files are meant to be shared.
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// ExportWriter writes exported files into a directory.
type ExportWriter struct {
	dir string
}

// NewExportWriter creates a new ExportWriter that writes to dir.
func NewExportWriter(dir string) *ExportWriter {
	return &ExportWriter{dir: dir}
}

// Write creates the file name in the export directory with the content
// produced by write, replacing any existing file, and returns its path.
// On failure no partial file is left behind.
func (w *ExportWriter) Write(ctx context.Context, name string, write func(io.Writer) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid export file name %q", name)
	}

	path := filepath.Join(w.dir, name)
	if err := writeFileAtomic(path, write); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
