package scrape

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/pagegrab"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (*pagegrab.Page, error)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retryable reports whether a failed fetch may succeed when repeated.
// Application errors are retried only when marked EUNAVAILABLE (5xx and 429
// responses); any other error is a transport failure and is retried.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	var e *pagegrab.Error
	if errors.As(err, &e) {
		return e.Code == pagegrab.EUNAVAILABLE
	}
	return !errors.Is(err, context.Canceled)
}

// FetchWithRetryDelays fetches url, retrying transient failures once per
// entry in delays and sleeping that long before each retry. The logger
// function, if provided, is called for each retry attempt.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, logger LogFunc, delays []time.Duration) (*pagegrab.Page, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		page, err := fetch(ctx, url)
		if err == nil {
			return page, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !Retryable(err) {
			break
		}

		// Check context before sleeping
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if logger != nil {
			logger("retry %s (attempt %d): %v", url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
