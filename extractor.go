package xhsnote

import (
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ExtractOptions controls how a note is extracted.
type ExtractOptions struct {
	// RetainTags appends the topic tags to the body as a trailing block.
	RetainTags bool
}

// Extraction holds the result of extracting a note from a page.
// Callers keep the previous Extraction around to detect whether a page
// changed between two "check now" signals.
type Extraction struct {
	Note *Note

	// Tags are the canonical topic tags in document order.
	Tags []string

	// Hash fingerprints the extracted content, excluding the capture time.
	Hash uint64
}

// Unchanged reports whether e carries the same content for the same page as prev.
func (e *Extraction) Unchanged(prev *Extraction) bool {
	if e == nil || prev == nil || e.Note == nil || prev.Note == nil {
		return false
	}
	return e.Note.SourceURL == prev.Note.SourceURL && e.Hash == prev.Hash
}

// HashNote fingerprints the content fields of a note with xxHash.
func HashNote(n *Note) uint64 {
	d := xxhash.New()
	for _, s := range []string{
		n.SourceURL,
		n.Title,
		n.Body,
		strconv.Itoa(n.Likes),
		strconv.Itoa(n.Favorites),
		strconv.Itoa(n.Comments),
	} {
		_, _ = d.WriteString(s)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// Extractor extracts a note from a rendered note page.
type Extractor interface {
	// Extract parses the rendered HTML and returns the note found in it.
	// sourceURL identifies the page; when empty, implementations may
	// resolve it from page metadata.
	// Returns ENOTFOUND if the page has no recognizable title or body.
	Extract(html string, sourceURL string, opts ExtractOptions) (*Extraction, error)
}

// IsNotePage reports whether the address points at a note detail page.
func IsNotePage(sourceURL string) bool {
	return strings.Contains(sourceURL, "/explore/") ||
		strings.Contains(sourceURL, "/discovery/")
}
