package goquery

import (
	"io"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/xhsnote"
)

// MetricsExtractor reads the like, favorite and comment counters of a note page.
type MetricsExtractor struct {
	profile *Profile
	logger  *slog.Logger
}

// NewMetricsExtractor creates a MetricsExtractor using the counter selectors
// of the profile. A nil logger discards log output.
func NewMetricsExtractor(p *Profile, logger *slog.Logger) *MetricsExtractor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &MetricsExtractor{profile: p, logger: logger}
}

// Extract returns the engagement counters of the document. Counters that
// cannot be read are 0; failures are logged, never returned.
//
// Counters are read from the last engagement region in the document, since
// the bottom bar follows any inline summary widgets. When all three read as
// 0, the generic counters of the bottom bar are used instead, provided at
// least three positive values exist. A note that genuinely has no likes,
// favorites or comments cannot be told apart from a failed read here.
func (e *MetricsExtractor) Extract(doc *goquery.Document) (m xhsnote.Metrics) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("metrics extraction failed", "err", r)
			m = xhsnote.Metrics{}
		}
	}()

	region := doc.Find(strings.Join(e.profile.Region, ", ")).Last()
	if region.Length() > 0 {
		m.Likes = e.readCounter(region, e.profile.Likes, "likes")
		m.Favorites = e.readCounter(region, e.profile.Favorites, "favorites")
		m.Comments = e.readCounter(region, e.profile.Comments, "comments")
	} else {
		e.logger.Debug("engagement region not found")
	}

	if !m.IsZero() {
		return m
	}

	if counts := e.bottomBarCounts(doc); len(counts) >= 3 {
		e.logger.Debug("metrics read from bottom bar", "counts", counts)
		return xhsnote.Metrics{Likes: counts[0], Favorites: counts[1], Comments: counts[2]}
	}

	return m
}

// readCounter returns the first non-empty counter matched by selectors in region.
func (e *MetricsExtractor) readCounter(region *goquery.Selection, selectors []string, name string) int {
	for _, s := range selectors {
		text := strings.TrimSpace(region.Find(s).First().Text())
		if text == "" {
			continue
		}
		n, ok := parseCount(text)
		if !ok {
			e.logger.Debug("unparsable counter", "counter", name, "text", text)
		}
		return n
	}
	return 0
}

// bottomBarCounts returns the positive generic counters of the last bottom
// bar, in document order.
func (e *MetricsExtractor) bottomBarCounts(doc *goquery.Document) []int {
	bar := doc.Find(strings.Join(e.profile.BottomBar, ", ")).Last()
	if bar.Length() == 0 {
		return nil
	}

	var counts []int
	bar.Find(e.profile.Count).Each(func(_ int, s *goquery.Selection) {
		if n, _ := parseCount(s.Text()); n > 0 {
			counts = append(counts, n)
		}
	})
	return counts
}

var countRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(万|w|W|千|k|K)?`)

// maxCount bounds parsed counters; larger values are treated as unparsable.
const maxCount = 1e15

// ParseCount parses a displayed counter such as "12", "1,234", "10+" or
// "1.2万". Text without a leading number, such as the "赞" placeholder
// shown for zero likes, yields 0.
func ParseCount(text string) int {
	n, _ := parseCount(text)
	return n
}

func parseCount(text string) (int, bool) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	match := countRe.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}

	f, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}

	switch match[2] {
	case "万", "w", "W":
		f = math.Round(f * 10000)
	case "千", "k", "K":
		f = math.Round(f * 1000)
	}

	if f >= maxCount {
		return 0, false
	}
	return int(f), true
}
