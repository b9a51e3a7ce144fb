package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/xhsnote"
)

// TagExtractor collects topic tags from the links inside a note body.
type TagExtractor struct{}

// NewTagExtractor creates a new TagExtractor.
func NewTagExtractor() *TagExtractor {
	return &TagExtractor{}
}

// Extract returns the canonical tags of every topic link under sel, in
// document order. Repeated tags are kept. sel is not modified.
func (e *TagExtractor) Extract(sel *goquery.Selection) []string {
	var tags []string
	sel.Find("a").Each(func(_ int, a *goquery.Selection) {
		if !isTopicLink(a) {
			return
		}
		if tag := xhsnote.CanonicalTag(a.Text()); tag != "" {
			tags = append(tags, tag)
		}
	})
	return tags
}

// isTopicLink reports whether a link points at a topic tag.
func isTopicLink(a *goquery.Selection) bool {
	if a.HasClass("topic") || a.HasClass("tag-item") {
		return true
	}
	if id, _ := a.Attr("id"); id == "hash-tag" {
		return true
	}
	if href, _ := a.Attr("href"); strings.Contains(href, "/tag/") {
		return true
	}
	return xhsnote.HasTagMarker(a.Text())
}
