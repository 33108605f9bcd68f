package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagegrab"
	"github.com/fwojciec/pagegrab/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Links(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against the base URL", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="/docs/intro">Introduction</a>
<a href="guide">  The
  Guide </a>
<a href="https://other.example.org/x">Other</a>
</body>`

		links, err := goquery.NewParser().Links(html, "https://example.com/docs/")

		require.NoError(t, err)
		assert.Equal(t, []pagegrab.Link{
			{URL: "https://example.com/docs/intro", Text: "Introduction"},
			{URL: "https://example.com/docs/guide", Text: "The Guide"},
			{URL: "https://other.example.org/x", Text: "Other"},
		}, links)
	})

	t.Run("skips non-HTTP, fragment-only and empty links", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="javascript:void(0)">JS</a>
<a href="mailto:me@example.com">Mail</a>
<a href="tel:123">Call</a>
<a href="#section">Anchor</a>
<a href="">Empty</a>
<a>No href</a>
<a href="/ok">OK</a>
</body>`

		links, err := goquery.NewParser().Links(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/ok", links[0].URL)
	})

	t.Run("keeps the first occurrence of duplicate links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/a">First</a><a href="/b">B</a><a href="/a">Second</a>`

		links, err := goquery.NewParser().Links(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, "First", links[0].Text)
	})

	t.Run("returns error for invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().Links(`<a href="/a">A</a>`, "://bad")

		require.Error(t, err)
		assert.Equal(t, pagegrab.EINVALID, pagegrab.ErrorCode(err))
	})

	t.Run("returns empty slice when there are no links", func(t *testing.T) {
		t.Parallel()

		links, err := goquery.NewParser().Links("<p>none</p>", "https://example.com")

		require.NoError(t, err)
		assert.NotNil(t, links)
		assert.Empty(t, links)
	})
}

func TestParser_Images(t *testing.T) {
	t.Parallel()

	t.Run("resolves sources and reads alt and title", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<img src="/img/logo.png" alt="Logo" title="Our logo">
<img src="https://cdn.example.org/a.jpg">
<img data-src="lazy.webp" alt=" Lazy ">
<img alt="no source">
</body>`

		images, err := goquery.NewParser().Images(html, "https://example.com/blog/post")

		require.NoError(t, err)
		assert.Equal(t, []pagegrab.Image{
			{URL: "https://example.com/img/logo.png", Alt: "Logo", Title: "Our logo"},
			{URL: "https://cdn.example.org/a.jpg"},
			{URL: "https://example.com/blog/lazy.webp", Alt: "Lazy"},
		}, images)
	})

	t.Run("keeps data URIs untouched", func(t *testing.T) {
		t.Parallel()

		html := `<img src="data:image/gif;base64,R0lGOD">`

		images, err := goquery.NewParser().Images(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, images, 1)
		assert.Equal(t, "data:image/gif;base64,R0lGOD", images[0].URL)
	})
}
