package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagegrab"
)

// Ensure LoggingTableLocator implements pagegrab.TableLocator.
var _ pagegrab.TableLocator = (*LoggingTableLocator)(nil)

// LoggingTableLocator wraps a TableLocator with debug logging so the
// strategy that produced a page's tables can be traced.
type LoggingTableLocator struct {
	next   pagegrab.TableLocator
	logger *slog.Logger
}

// NewLoggingTableLocator creates a new LoggingTableLocator.
func NewLoggingTableLocator(next pagegrab.TableLocator, logger *slog.Logger) *LoggingTableLocator {
	return &LoggingTableLocator{next: next, logger: logger}
}

// Name returns the wrapped locator's name.
func (l *LoggingTableLocator) Name() string {
	return l.next.Name()
}

// Locate delegates to the wrapped locator and logs how many tables it found.
func (l *LoggingTableLocator) Locate(page *pagegrab.Page) (sources []pagegrab.TableSource, err error) {
	defer func(begin time.Time) {
		l.logger.Debug("locate tables",
			"locator", l.next.Name(),
			"tables", len(sources),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Locate(page)
}
