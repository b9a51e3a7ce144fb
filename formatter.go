package xhsnote

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// NoteDivider separates notes in clipboard text.
const NoteDivider = "\n\n-------------------\n\n"

// ExportFilePrefix is the base name of exported files.
const ExportFilePrefix = "xhs-notes"

// FormatNote renders a single note as labeled title, body and metrics blocks.
func FormatNote(n *Note) string {
	return fmt.Sprintf("标题：%s\n\n正文：%s\n\n互动数据：点赞 %d | 收藏 %d | 评论 %d",
		n.Title, n.Body, n.Likes, n.Favorites, n.Comments)
}

// FormatClipboard renders all notes as one text block for the clipboard.
// Notes keep their collection order and are separated by NoteDivider.
func FormatClipboard(notes []*Note) string {
	if len(notes) == 0 {
		return ""
	}

	parts := make([]string, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, FormatNote(n))
	}

	return strings.Join(parts, NoteDivider)
}

// ExportFilename returns the name of an export file created at now,
// e.g. "xhs-notes_2024-05-01.csv".
func ExportFilename(now time.Time, ext string) string {
	return ExportFilePrefix + "_" + now.Format("2006-01-02") + "." + strings.TrimPrefix(ext, ".")
}

// Exporter serializes a note collection into a file format.
type Exporter interface {
	// Export writes notes to w in collection order.
	Export(w io.Writer, notes []*Note) error

	// Extension returns the file extension without the leading dot.
	Extension() string
}

// Clipboard receives plain text for the system clipboard.
type Clipboard interface {
	WriteText(text string) error
}
