package pagegrab

import "strings"

// Format selects what Scrape extracts from a page.
type Format string

// Format constants.
const (
	FormatText     Format = "text"
	FormatLinks    Format = "links"
	FormatImages   Format = "images"
	FormatTables   Format = "tables"
	FormatRaw      Format = "raw"
	FormatMarkdown Format = "markdown"
	FormatArticle  Format = "article"
	FormatAll      Format = "all"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{
		FormatText,
		FormatLinks,
		FormatImages,
		FormatTables,
		FormatRaw,
		FormatMarkdown,
		FormatArticle,
		FormatAll,
	}
}

// ParseFormat parses a format name case-insensitively.
// Returns EINVALID for unknown names.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", Errorf(EINVALID, "unknown format %q", s)
}

// Result is the outcome of scraping one page. Only the fields relevant to
// the requested format are populated.
type Result struct {
	URL           string `json:"url" yaml:"url"`
	Format        Format `json:"format" yaml:"format"`
	StatusCode    int    `json:"statusCode" yaml:"statusCode"`
	ContentLength int64  `json:"contentLength" yaml:"contentLength"`
	LastModified  string `json:"lastModified,omitempty" yaml:"lastModified,omitempty"`
	ContentType   string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	ContentHash   string `json:"contentHash" yaml:"contentHash"`

	Title    string   `json:"title,omitempty" yaml:"title,omitempty"`
	Text     string   `json:"text,omitempty" yaml:"text,omitempty"`
	Links    []Link   `json:"links,omitempty" yaml:"links,omitempty"`
	Images   []Image  `json:"images,omitempty" yaml:"images,omitempty"`
	Tables   []*Table `json:"tables,omitempty" yaml:"tables,omitempty"`
	Markdown string   `json:"markdown,omitempty" yaml:"markdown,omitempty"`
	Article  *Article `json:"article,omitempty" yaml:"article,omitempty"`
	Raw      string   `json:"raw,omitempty" yaml:"raw,omitempty"`
}

// Payload returns the part of the result a caller asked for: the bare
// value for single formats and the whole result for FormatAll.
func (r *Result) Payload() any {
	switch r.Format {
	case FormatText:
		return r.Text
	case FormatLinks:
		if r.Links == nil {
			return []Link{}
		}
		return r.Links
	case FormatImages:
		if r.Images == nil {
			return []Image{}
		}
		return r.Images
	case FormatTables:
		if r.Tables == nil {
			return []*Table{}
		}
		return r.Tables
	case FormatRaw:
		return r.Raw
	case FormatMarkdown:
		return r.Markdown
	case FormatArticle:
		return r.Article
	default:
		return r
	}
}
