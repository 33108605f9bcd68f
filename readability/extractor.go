// Package readability extracts the main article of a page with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pagegrab"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagegrab.Extractor at compile time.
var _ pagegrab.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main article.
func (e *Extractor) Extract(rawHTML string) (*pagegrab.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagegrab.Errorf(pagegrab.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pagegrab.Article{
		Title:   pagegrab.CleanText(article.Title),
		Byline:  pagegrab.CleanText(article.Byline),
		Excerpt: pagegrab.CleanText(article.Excerpt),
		Text:    strings.TrimSpace(article.TextContent),
	}, nil
}
