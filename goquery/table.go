package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagegrab"
)

// Ensure TableLocator implements pagegrab.TableLocator at compile time.
var _ pagegrab.TableLocator = (*TableLocator)(nil)

// TableLocator finds tables by walking the HTML DOM. It is only available
// for pages served as HTML.
type TableLocator struct{}

// NewTableLocator creates a new TableLocator.
func NewTableLocator() *TableLocator {
	return &TableLocator{}
}

// Name implements pagegrab.TableLocator.
func (l *TableLocator) Name() string {
	return "dom"
}

// Locate returns every table element in document order, nested tables
// included.
func (l *TableLocator) Locate(page *pagegrab.Page) ([]pagegrab.TableSource, error) {
	if !page.IsHTML() {
		return nil, pagegrab.Errorf(pagegrab.EUNAVAILABLE, "no DOM for content type %q", page.ContentType)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Body))
	if err != nil {
		return nil, pagegrab.Errorf(pagegrab.EUNAVAILABLE, "failed to parse HTML: %v", err)
	}

	var sources []pagegrab.TableSource
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		sources = append(sources, &tableSource{table: sel})
	})
	return sources, nil
}

// tableSource reads one table element. Queries are scoped to the table
// itself so cells of nested tables never leak into their parent.
type tableSource struct {
	table *goquery.Selection
}

func (s *tableSource) Caption() string {
	return s.table.ChildrenFiltered("caption").First().Text()
}

// HeaderCells prefers th cells inside thead and falls back to every th of
// the table.
func (s *tableSource) HeaderCells() []string {
	if thead := s.table.ChildrenFiltered("thead").First(); thead.Length() > 0 {
		if headers := texts(s.own(thead.Find("th"))); len(headers) > 0 {
			return headers
		}
	}
	return texts(s.own(s.table.Find("th")))
}

// Rows prefers rows inside tbody. The HTML parser inserts a tbody for bare
// tr children, so the direct-child fallback only matters for fragments
// built without one.
func (s *tableSource) Rows() []pagegrab.RowCells {
	trs := s.table.ChildrenFiltered("tbody").ChildrenFiltered("tr")
	if trs.Length() == 0 {
		trs = s.table.ChildrenFiltered("tr")
	}

	rows := make([]pagegrab.RowCells, 0, trs.Length())
	trs.Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, pagegrab.RowCells{
			Data:   texts(tr.ChildrenFiltered("td")),
			Header: texts(tr.ChildrenFiltered("th")),
		})
	})
	return rows
}

// own filters sel down to elements whose nearest table is this one.
func (s *tableSource) own(sel *goquery.Selection) *goquery.Selection {
	return sel.FilterFunction(func(_ int, c *goquery.Selection) bool {
		return c.Closest("table").IsSelection(s.table)
	})
}

func texts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, c *goquery.Selection) {
		out = append(out, c.Text())
	})
	return out
}
