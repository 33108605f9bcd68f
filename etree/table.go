// Package etree implements the node-query table locator on top of
// github.com/beevik/etree. It serves documents that parse as an XML tree,
// typically XHTML, where a path query can address table elements directly.
package etree

import (
	"encoding/xml"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagegrab"
	"github.com/fwojciec/pagegrab/re2"
)

// Ensure TableLocator implements pagegrab.TableLocator at compile time.
var _ pagegrab.TableLocator = (*TableLocator)(nil)

// tablePath selects every table element in the document.
const tablePath = "//table"

// TableLocator queries a parsed node tree for tables and hands each one's
// serialized markup to the markup table reader.
type TableLocator struct{}

// NewTableLocator creates a new TableLocator.
func NewTableLocator() *TableLocator {
	return &TableLocator{}
}

// Name implements pagegrab.TableLocator.
func (l *TableLocator) Name() string {
	return "xpath"
}

// Locate returns the tables matched by //table in document order. The
// locator is unavailable when the body does not parse as an XML tree.
func (l *TableLocator) Locate(page *pagegrab.Page) ([]pagegrab.TableSource, error) {
	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		Permissive: true,
		Entity:     xml.HTMLEntity,
		AutoClose:  xml.HTMLAutoClose,
	}
	if err := doc.ReadFromString(page.Body); err != nil {
		return nil, pagegrab.Errorf(pagegrab.EUNAVAILABLE, "no node tree: %v", err)
	}
	if doc.Root() == nil {
		return nil, pagegrab.Errorf(pagegrab.EUNAVAILABLE, "no node tree: document has no root element")
	}

	var sources []pagegrab.TableSource
	for _, el := range doc.FindElements(tablePath) {
		markup, err := outerXML(el)
		if err != nil {
			// An element that cannot be serialized is skipped on its own.
			continue
		}
		sources = append(sources, re2.ParseTable(markup))
	}
	return sources, nil
}

// outerXML serializes el including its own start and end tags. End tags
// are always written so empty cells keep a closing tag.
func outerXML(el *etree.Element) (string, error) {
	doc := etree.NewDocumentWithRoot(el.Copy())
	doc.WriteSettings.CanonicalEndTags = true
	return doc.WriteToString()
}
