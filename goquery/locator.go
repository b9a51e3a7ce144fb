package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/xhsnote"
)

// Matcher finds one element in a document. It returns nil when the
// document has no matching element.
type Matcher func(doc *goquery.Document) *goquery.Selection

// SelectorMatcher returns a Matcher selecting the first element matching
// the CSS selector.
func SelectorMatcher(selector string) Matcher {
	return func(doc *goquery.Document) *goquery.Selection {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			return nil
		}
		return sel
	}
}

// SelectorMatchers returns one SelectorMatcher per selector, keeping order.
func SelectorMatchers(selectors []string) []Matcher {
	matchers := make([]Matcher, 0, len(selectors))
	for _, s := range selectors {
		matchers = append(matchers, SelectorMatcher(s))
	}
	return matchers
}

// FirstMatch evaluates matchers in order and returns the first match.
// Matchers after the first match are not evaluated.
func FirstMatch(doc *goquery.Document, matchers []Matcher) *goquery.Selection {
	for _, m := range matchers {
		if sel := m(doc); sel != nil {
			return sel
		}
	}
	return nil
}

// Locator finds the title and body elements of a note page.
type Locator struct {
	Title []Matcher
	Body  []Matcher
}

// NewLocator creates a Locator from the title and body selectors of a profile.
func NewLocator(p *Profile) *Locator {
	return &Locator{
		Title: SelectorMatchers(p.Title),
		Body:  SelectorMatchers(p.Body),
	}
}

// Locate returns the title and body elements.
// Returns ENOTFOUND if either cannot be found.
func (l *Locator) Locate(doc *goquery.Document) (title, body *goquery.Selection, err error) {
	title = FirstMatch(doc, l.Title)
	if title == nil {
		return nil, nil, xhsnote.Errorf(xhsnote.ENOTFOUND, "note title not found")
	}

	body = FirstMatch(doc, l.Body)
	if body == nil {
		return nil, nil, xhsnote.Errorf(xhsnote.ENOTFOUND, "note content not found")
	}

	return title, body, nil
}
