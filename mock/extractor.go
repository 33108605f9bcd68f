package mock

import "github.com/fwojciec/pagegrab"

var _ pagegrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagegrab.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagegrab.Article, error)
}

func (e *Extractor) Extract(html string) (*pagegrab.Article, error) {
	return e.ExtractFn(html)
}
