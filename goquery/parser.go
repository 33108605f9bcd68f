// Package goquery implements DOM-based extraction with goquery: page
// title, text, links and images, and the highest-fidelity table locator.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagegrab"
	"golang.org/x/net/html"
)

// Ensure Parser implements pagegrab.DocumentParser at compile time.
var _ pagegrab.DocumentParser = (*Parser)(nil)

// nonTextSelector matches elements whose contents never render as text.
const nonTextSelector = "script, style, noscript, template, svg, iframe"

// Parser extracts page-level data from HTML documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Title returns the trimmed text of the first title element.
func (p *Parser) Title(rawHTML string) (string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return "", err
	}
	return pagegrab.CleanText(doc.Find("title").First().Text()), nil
}

// Text returns the visible text of the body. Text nodes are separated by a
// single space, so adjacent block elements never run together.
func (p *Parser) Text(rawHTML string) (string, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return "", err
	}
	doc.Find(nonTextSelector).Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	var parts []string
	for _, n := range root.Nodes {
		collectText(n, &parts)
	}
	return pagegrab.CleanText(strings.Join(parts, " ")), nil
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		*parts = append(*parts, n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

func parse(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagegrab.Errorf(pagegrab.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
