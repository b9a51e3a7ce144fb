package xhsnote

import (
	"regexp"
	"strings"
)

var (
	// punctuationRunRe matches runs of full-width punctuation; the last
	// character of the run is kept.
	punctuationRunRe = regexp.MustCompile(`[。！？，、；：]+`)

	horizontalSpaceRe = regexp.MustCompile(`[\t\v\f\r\p{Zs}]+`)

	// blankLinesRe matches three or more line breaks, allowing the single
	// space left behind by horizontalSpaceRe on otherwise blank lines.
	blankLinesRe = regexp.MustCompile(`\n(?: ?\n){2,}`)
)

// Normalize cleans extracted text. The rules apply in order:
// astral-plane characters (emoji and the like) are dropped, runs of
// full-width punctuation collapse to one character, horizontal whitespace
// collapses to one space, three or more line breaks collapse to two, and
// the result is trimmed. Normalize is idempotent.
func Normalize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r > 0xFFFF {
			return -1
		}
		return r
	}, s)
	s = punctuationRunRe.ReplaceAllStringFunc(s, func(run string) string {
		runes := []rune(run)
		return string(runes[len(runes)-1])
	})
	s = horizontalSpaceRe.ReplaceAllString(s, " ")
	s = blankLinesRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// tagMarkers are the characters that delimit topic tags.
const tagMarkers = "#＃"

// CanonicalTag returns the canonical form of a topic tag: every marker
// character is removed and a single leading "#" is added. It returns an
// empty string when nothing but markers and whitespace remain.
func CanonicalTag(s string) string {
	label := strings.TrimSpace(strings.Map(func(r rune) rune {
		if strings.ContainsRune(tagMarkers, r) {
			return -1
		}
		return r
	}, s))
	if label == "" {
		return ""
	}
	return "#" + label
}

// HasTagMarker reports whether s starts with a tag marker.
func HasTagMarker(s string) bool {
	s = strings.TrimSpace(s)
	for _, m := range tagMarkers {
		if strings.HasPrefix(s, string(m)) {
			return true
		}
	}
	return false
}
