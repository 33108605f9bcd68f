package mock

import "github.com/fwojciec/pagegrab"

var _ pagegrab.DocumentParser = (*DocumentParser)(nil)

// DocumentParser is a mock implementation of pagegrab.DocumentParser.
type DocumentParser struct {
	TitleFn  func(html string) (string, error)
	TextFn   func(html string) (string, error)
	LinksFn  func(html string, baseURL string) ([]pagegrab.Link, error)
	ImagesFn func(html string, baseURL string) ([]pagegrab.Image, error)
}

func (p *DocumentParser) Title(html string) (string, error) {
	return p.TitleFn(html)
}

func (p *DocumentParser) Text(html string) (string, error) {
	return p.TextFn(html)
}

func (p *DocumentParser) Links(html string, baseURL string) ([]pagegrab.Link, error) {
	return p.LinksFn(html, baseURL)
}

func (p *DocumentParser) Images(html string, baseURL string) ([]pagegrab.Image, error) {
	return p.ImagesFn(html, baseURL)
}
