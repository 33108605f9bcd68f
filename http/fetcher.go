// Package http provides an HTTP-based implementation of pagegrab.Fetcher.
// Pages are fetched as served; no JavaScript is executed.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pagegrab"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies pagegrab to servers unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (compatible; pagegrab/1.0; +https://github.com/fwojciec/pagegrab)"

// DefaultMaxBodySize caps how much of a response body is read (10 MiB).
const DefaultMaxBodySize = 10 << 20

const acceptHeader = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"

// Ensure Fetcher implements pagegrab.Fetcher at compile time.
var _ pagegrab.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves web pages using HTTP GET requests.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	maxBodySize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Defaults to DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithClient sets the underlying HTTP client. The client's own timeout is
// kept; WithTimeout has no effect when a client is given.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithMaxBodySize caps the number of body bytes read per response.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBodySize = n
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the page at url. The body is decoded to UTF-8 using the
// charset declared by the response or sniffed from the document.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagegrab.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pagegrab.Errorf(pagegrab.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	contentType := resp.Header.Get("Content-Type")
	r, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBodySize), contentType)
	if err != nil {
		return nil, fmt.Errorf("decode body of %s: %w", url, err)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}

	contentLength := resp.ContentLength
	if contentLength < 0 {
		contentLength = int64(len(body))
	}

	return &pagegrab.Page{
		URL:           resp.Request.URL.String(),
		StatusCode:    resp.StatusCode,
		ContentType:   contentType,
		ContentLength: contentLength,
		LastModified:  resp.Header.Get("Last-Modified"),
		Body:          string(body),
	}, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// StatusError reports a response with a non-success status code.
type StatusError struct {
	URL        string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// Temporary reports whether retrying the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// Unwrap exposes the status as an application error so pagegrab.ErrorCode
// classifies it: EUNAVAILABLE for temporary failures, ENOTFOUND for 404 and
// 410, EINVALID otherwise.
func (e *StatusError) Unwrap() error {
	code := pagegrab.EINVALID
	switch {
	case e.Temporary():
		code = pagegrab.EUNAVAILABLE
	case e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone:
		code = pagegrab.ENOTFOUND
	}
	return pagegrab.Errorf(code, "HTTP %d", e.StatusCode)
}
