package pagegrab

// Link represents an anchor found on a page.
type Link struct {
	URL  string `json:"url" yaml:"url"`
	Text string `json:"text" yaml:"text"`
}

// Image represents an img element found on a page.
type Image struct {
	URL   string `json:"url" yaml:"url"`
	Alt   string `json:"alt,omitempty" yaml:"alt,omitempty"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
}

// DocumentParser extracts simple page-level data from HTML.
type DocumentParser interface {
	// Title returns the trimmed text of the document title.
	Title(html string) (string, error)

	// Text returns the visible text of the document with markup removed
	// and whitespace collapsed.
	Text(html string) (string, error)

	// Links returns anchors in document order with hrefs resolved
	// against baseURL.
	Links(html string, baseURL string) ([]Link, error)

	// Images returns images in document order with sources resolved
	// against baseURL.
	Images(html string, baseURL string) ([]Image, error)
}
