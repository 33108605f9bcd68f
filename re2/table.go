// Package re2 implements the last-resort table locator: pattern matching
// over raw markup with RE2 regular expressions. It needs nothing but the
// response body, so it works for markup no parser accepts.
package re2

import (
	"github.com/fwojciec/pagegrab"
	"github.com/wasilibs/go-re2"
	"golang.org/x/net/html"
)

// Ensure TableLocator implements pagegrab.TableLocator at compile time.
var _ pagegrab.TableLocator = (*TableLocator)(nil)

var (
	tableRe   = re2.MustCompile(`(?is)<table\b[^>]*>(.*?)</table>`)
	theadRe   = re2.MustCompile(`(?is)<thead\b[^>]*>(.*?)</thead>`)
	trRe      = re2.MustCompile(`(?is)<tr\b[^>]*>(.*?)</tr>`)
	thRe      = re2.MustCompile(`(?is)<th\b[^>]*>(.*?)</th>`)
	tdRe      = re2.MustCompile(`(?is)<td\b[^>]*>(.*?)</td>`)
	captionRe = re2.MustCompile(`(?is)<caption\b[^>]*>(.*?)</caption>`)
	tagRe     = re2.MustCompile(`(?s)<[^>]+>`)
)

// TableLocator finds tables by scanning the raw body. Matching is
// non-greedy, so a nested table ends its parent at the first </table>.
type TableLocator struct{}

// NewTableLocator creates a new TableLocator.
func NewTableLocator() *TableLocator {
	return &TableLocator{}
}

// Name implements pagegrab.TableLocator.
func (l *TableLocator) Name() string {
	return "regex"
}

// Locate returns one source per <table>…</table> span in the body.
func (l *TableLocator) Locate(page *pagegrab.Page) ([]pagegrab.TableSource, error) {
	matches := tableRe.FindAllString(page.Body, -1)
	sources := make([]pagegrab.TableSource, 0, len(matches))
	for _, markup := range matches {
		sources = append(sources, ParseTable(markup))
	}
	return sources, nil
}

// ParseTable reads a serialized table, from its opening <table> tag through
// </table>, with text patterns. Rows are taken from the whole table, so rows
// of a thead show up as rows too.
func ParseTable(markup string) pagegrab.TableSource {
	return &markupSource{markup: markup}
}

type markupSource struct {
	markup string
}

func (s *markupSource) Caption() string {
	m := captionRe.FindStringSubmatch(s.markup)
	if m == nil {
		return ""
	}
	return cleanMarkup(m[1])
}

func (s *markupSource) HeaderCells() []string {
	if m := theadRe.FindStringSubmatch(s.markup); m != nil {
		return cells(thRe, m[1])
	}
	return cells(thRe, s.markup)
}

func (s *markupSource) Rows() []pagegrab.RowCells {
	matches := trRe.FindAllStringSubmatch(s.markup, -1)
	rows := make([]pagegrab.RowCells, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, pagegrab.RowCells{
			Data:   cells(tdRe, m[1]),
			Header: cells(thRe, m[1]),
		})
	}
	return rows
}

// cells returns the cleaned inner text of every cell re matches in s.
func cells(re *re2.Regexp, s string) []string {
	matches := re.FindAllStringSubmatch(s, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, cleanMarkup(m[1]))
	}
	return out
}

// cleanMarkup replaces nested tags with a space and decodes entities.
// Whitespace is collapsed later by the normalizer.
func cleanMarkup(s string) string {
	return html.UnescapeString(tagRe.ReplaceAllString(s, " "))
}
