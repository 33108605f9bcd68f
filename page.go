package pagegrab

import "strings"

// Page represents a fetched web page and its response metadata.
type Page struct {
	URL           string `json:"url"`
	StatusCode    int    `json:"statusCode"`
	ContentType   string `json:"contentType"`
	ContentLength int64  `json:"contentLength"`
	LastModified  string `json:"lastModified"`
	Body          string `json:"-"`
}

// IsHTML reports whether the page was served as HTML. A missing
// Content-Type is treated as HTML since many servers omit it.
func (p *Page) IsHTML() bool {
	ct := strings.ToLower(strings.TrimSpace(p.ContentType))
	if ct == "" {
		return true
	}
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct == "text/html"
}
