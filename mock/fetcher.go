package mock

import (
	"context"

	"github.com/fwojciec/pagegrab"
)

var _ pagegrab.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagegrab.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pagegrab.Page, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagegrab.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
