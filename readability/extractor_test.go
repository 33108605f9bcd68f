package readability_test

import (
	"testing"

	"github.com/fwojciec/pagegrab"
	"github.com/fwojciec/pagegrab/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pagegrab.Extractor at compile time.
var _ pagegrab.Extractor = (*readability.Extractor)(nil)

const newsPage = `<!DOCTYPE html>
<html>
<head>
<title>Harbour reopens after storm</title>
<meta name="author" content="Jane Doe">
</head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<h1>Harbour reopens after storm</h1>
<p>The harbour reopened on Monday morning after three days of closures caused by the storm that swept the coast.
Fishing boats returned to their moorings and the ferry service resumed its regular timetable shortly after nine.</p>
<p>Harbour officials said repairs to the outer breakwater would continue through the month, with traffic
restricted to the inner basin while divers inspect the damaged sections of the wall.</p>
</article>
<aside>Sidebar navigation content</aside>
<footer>Footer copyright text</footer>
</body>
</html>`

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	_, err := readability.NewExtractor().Extract("")

	require.Error(t, err)
	assert.Equal(t, pagegrab.EINVALID, pagegrab.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	article, err := readability.NewExtractor().Extract(newsPage)

	require.NoError(t, err)
	assert.Equal(t, "Harbour reopens after storm", article.Title)
}

func TestExtractor_ExtractsPlainText(t *testing.T) {
	t.Parallel()

	article, err := readability.NewExtractor().Extract(newsPage)

	require.NoError(t, err)
	assert.Contains(t, article.Text, "The harbour reopened on Monday morning")
	assert.Contains(t, article.Text, "outer breakwater")
	assert.NotContains(t, article.Text, "<p")
}

func TestExtractor_RemovesBoilerplate(t *testing.T) {
	t.Parallel()

	article, err := readability.NewExtractor().Extract(newsPage)

	require.NoError(t, err)
	assert.NotContains(t, article.Text, "Home Nav Link")
	assert.NotContains(t, article.Text, "Footer copyright text")
	assert.NotContains(t, article.Text, "Sidebar navigation content")
}

func TestExtractor_ExtractsByline(t *testing.T) {
	t.Parallel()

	article, err := readability.NewExtractor().Extract(newsPage)

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", article.Byline)
}
