// Package goquery implements note extraction from rendered XiaoHongShu
// pages using CSS selectors.
package goquery

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/xhsnote"
	"golang.org/x/net/html"
)

// Ensure Extractor implements xhsnote.Extractor at compile time.
var _ xhsnote.Extractor = (*Extractor)(nil)

// Extractor extracts notes by locating the title and body, collecting the
// topic tags, cleaning the body text and reading the engagement counters.
type Extractor struct {
	locator *Locator
	tags    *TagExtractor
	metrics *MetricsExtractor
	strip   string
	logger  *slog.Logger
	now     func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used for degraded reads.
// Defaults to discarding log output.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithClock sets the function providing capture timestamps.
// Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates an Extractor driven by the selectors of p.
func NewExtractor(p *Profile, opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.locator = NewLocator(p)
	e.tags = NewTagExtractor()
	e.metrics = NewMetricsExtractor(p, e.logger)
	e.strip = strings.Join(p.Strip, ", ")

	return e
}

// ParseDocument parses rendered HTML into a document.
func ParseDocument(r io.Reader) (*goquery.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, xhsnote.Errorf(xhsnote.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// Extract parses the HTML and extracts the note it contains.
func (e *Extractor) Extract(s string, sourceURL string, opts xhsnote.ExtractOptions) (*xhsnote.Extraction, error) {
	doc, err := ParseDocument(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return e.ExtractDocument(doc, sourceURL, opts)
}

// ExtractDocument extracts the note from an already parsed document.
// The document is not modified.
//
// Returns ENOTFOUND if the title or body cannot be located or the title is
// empty, EINVALID if no source URL is given or declared by the page, and
// EINTERNAL if extraction fails unexpectedly.
func (e *Extractor) ExtractDocument(doc *goquery.Document, sourceURL string, opts xhsnote.ExtractOptions) (ext *xhsnote.Extraction, err error) {
	defer func() {
		if r := recover(); r != nil {
			ext = nil
			err = xhsnote.Errorf(xhsnote.EINTERNAL, "extraction failed: %v", r)
		}
	}()

	titleSel, bodySel, err := e.locator.Locate(doc)
	if err != nil {
		return nil, err
	}

	title := xhsnote.Normalize(titleSel.Text())
	if title == "" {
		return nil, xhsnote.Errorf(xhsnote.ENOTFOUND, "note title is empty")
	}

	if sourceURL == "" {
		sourceURL = SourceURL(doc)
	}
	if sourceURL == "" {
		return nil, xhsnote.Errorf(xhsnote.EINVALID, "note source URL required")
	}

	// Work on a detached copy so tag links and widgets can be removed
	// without touching the caller's document.
	body := bodySel.Clone()
	tags := e.tags.Extract(body)

	body.Find("br").Each(func(_ int, br *goquery.Selection) {
		br.ReplaceWithNodes(&html.Node{Type: html.TextNode, Data: "\n"})
	})
	body.Find(e.strip).Remove()

	text := xhsnote.Normalize(body.Text())
	if opts.RetainTags && len(tags) > 0 {
		block := strings.Join(tags, " ")
		if text == "" {
			text = block
		} else {
			text += "\n\n" + block
		}
	}

	note := &xhsnote.Note{
		SourceURL:  sourceURL,
		Title:      title,
		Body:       text,
		Metrics:    e.metrics.Extract(doc),
		CapturedAt: e.now().UTC(),
	}

	return &xhsnote.Extraction{
		Note: note,
		Tags: tags,
		Hash: xhsnote.HashNote(note),
	}, nil
}

// SourceURL returns the address a page declares for itself through its
// canonical link or Open Graph URL. Returns an empty string if neither is set.
func SourceURL(doc *goquery.Document) string {
	if href, ok := doc.Find("link[rel='canonical']").First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return strings.TrimSpace(href)
	}
	if content, ok := doc.Find("meta[property='og:url']").First().Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}
