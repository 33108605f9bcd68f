package pagegrab

import "context"

// Fetcher retrieves a web page over the network.
type Fetcher interface {
	// Fetch retrieves the page at url together with its response metadata.
	// Unreachable hosts and non-success status codes are returned as errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
