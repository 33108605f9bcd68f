// Package scrape fetches a page and extracts the parts of it a caller asks
// for.
package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/pagegrab"
)

// Scraper coordinates fetching and extraction for a single page.
type Scraper struct {
	Fetcher   pagegrab.Fetcher
	Parser    pagegrab.DocumentParser
	Tables    pagegrab.TableExtractor
	Converter pagegrab.Converter
	Extractor pagegrab.Extractor

	// RetryDelays are the waits between fetch attempts. Nil means
	// DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// Log, if set, receives retry notices.
	Log LogFunc
}

// Scrape fetches rawURL and fills the result fields selected by format.
// Response metadata and the content hash are set for every format.
func (s *Scraper) Scrape(ctx context.Context, rawURL string, format pagegrab.Format) (*pagegrab.Result, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}
	format, err := pagegrab.ParseFormat(string(format))
	if err != nil {
		return nil, err
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	page, err := FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, s.Log, delays)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	result := &pagegrab.Result{
		URL:           rawURL,
		Format:        format,
		StatusCode:    page.StatusCode,
		ContentLength: page.ContentLength,
		LastModified:  page.LastModified,
		ContentType:   page.ContentType,
		ContentHash:   ComputeHash(page.Body),
	}

	// Relative references resolve against the final URL after redirects.
	baseURL := page.URL
	if baseURL == "" {
		baseURL = rawURL
	}

	switch format {
	case pagegrab.FormatText:
		result.Text, err = s.Parser.Text(page.Body)
	case pagegrab.FormatLinks:
		result.Links, err = s.Parser.Links(page.Body, baseURL)
	case pagegrab.FormatImages:
		result.Images, err = s.Parser.Images(page.Body, baseURL)
	case pagegrab.FormatTables:
		result.Tables = s.Tables.ExtractTables(page)
	case pagegrab.FormatRaw:
		result.Raw = page.Body
	case pagegrab.FormatMarkdown:
		err = s.markdown(page, baseURL, result)
	case pagegrab.FormatArticle:
		err = s.article(page, result)
	case pagegrab.FormatAll:
		err = s.all(page, baseURL, result)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Scraper) all(page *pagegrab.Page, baseURL string, result *pagegrab.Result) error {
	var err error
	if result.Title, err = s.Parser.Title(page.Body); err != nil {
		return err
	}
	if result.Text, err = s.Parser.Text(page.Body); err != nil {
		return err
	}
	if result.Links, err = s.Parser.Links(page.Body, baseURL); err != nil {
		return err
	}
	if result.Images, err = s.Parser.Images(page.Body, baseURL); err != nil {
		return err
	}
	result.Tables = s.Tables.ExtractTables(page)
	return nil
}

func (s *Scraper) markdown(page *pagegrab.Page, baseURL string, result *pagegrab.Result) error {
	if s.Converter == nil {
		return pagegrab.Errorf(pagegrab.EUNAVAILABLE, "markdown conversion is not configured")
	}
	md, err := s.Converter.Convert(page.Body, baseURL)
	if err != nil {
		return fmt.Errorf("convert to markdown: %w", err)
	}
	result.Markdown = md
	return nil
}

func (s *Scraper) article(page *pagegrab.Page, result *pagegrab.Result) error {
	if s.Extractor == nil {
		return pagegrab.Errorf(pagegrab.EUNAVAILABLE, "article extraction is not configured")
	}
	article, err := s.Extractor.Extract(page.Body)
	if err != nil {
		return fmt.Errorf("extract article: %w", err)
	}
	result.Article = article
	return nil
}

// validateURL accepts absolute http and https URLs with a host.
func validateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return pagegrab.Errorf(pagegrab.EINVALID, "URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return pagegrab.Errorf(pagegrab.EINVALID, "invalid URL %q", rawURL)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return pagegrab.Errorf(pagegrab.EINVALID, "URL must be absolute http or https: %q", rawURL)
	}
	return nil
}
