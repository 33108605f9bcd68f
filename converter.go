package pagegrab

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. Relative links and
	// image sources are resolved against baseURL when it is not empty.
	Convert(html string, baseURL string) (string, error)
}
