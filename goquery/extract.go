package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagegrab"
)

// Links returns the anchors of the document in order of first occurrence.
// Hrefs are resolved against baseURL and deduplicated. Non-HTTP links
// (javascript:, mailto:, etc.) and fragment-only links are skipped.
func (p *Parser) Links(rawHTML string, baseURL string) ([]pagegrab.Link, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	links := []pagegrab.Link{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true

		links = append(links, pagegrab.Link{
			URL:  resolved,
			Text: pagegrab.CleanText(sel.Text()),
		})
	})

	return links, nil
}

// Images returns the images of the document in order of first occurrence,
// with sources resolved against baseURL and deduplicated. Inline data: URIs
// are kept as-is.
func (p *Parser) Images(rawHTML string, baseURL string) ([]pagegrab.Image, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	images := []pagegrab.Image{}
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" {
			// Lazy-loading pages often keep the real source here.
			src = strings.TrimSpace(sel.AttrOr("data-src", ""))
		}
		if src == "" {
			return
		}

		resolved := src
		if !strings.HasPrefix(strings.ToLower(src), "data:") {
			resolved = resolveURL(base, src)
		}
		if resolved == "" || seen[resolved] {
			return
		}
		seen[resolved] = true

		images = append(images, pagegrab.Image{
			URL:   resolved,
			Alt:   pagegrab.CleanText(sel.AttrOr("alt", "")),
			Title: pagegrab.CleanText(sel.AttrOr("title", "")),
		})
	})

	return images, nil
}

func parseBase(baseURL string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagegrab.Errorf(pagegrab.EINVALID, "invalid base URL: %v", err)
	}
	return base, nil
}

// resolveURL resolves a possibly relative reference against a base URL.
// Returns empty string if the reference cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
