package pagegrab

// Article holds the main content of a page with boilerplate removed.
type Article struct {
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`
	Byline  string `json:"byline,omitempty" yaml:"byline,omitempty"`
	Excerpt string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Text    string `json:"text" yaml:"text"`
}

// Extractor extracts the main article from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main article.
	// The title comes from page metadata (meta tags, JSON+LD, etc.).
	Extract(html string) (*Article, error)
}
