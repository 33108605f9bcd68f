// Package trafilatura extracts the main article of a page with go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagegrab"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pagegrab.Extractor at compile time.
var _ pagegrab.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main article from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pagegrab.Article{
		Title:   pagegrab.CleanText(result.Metadata.Title),
		Byline:  pagegrab.CleanText(result.Metadata.Author),
		Excerpt: pagegrab.CleanText(result.Metadata.Description),
		Text:    strings.TrimSpace(result.ContentText),
	}, nil
}
