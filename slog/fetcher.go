package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helpchunk"
)

// Ensure LoggingFetcher implements helpchunk.Fetcher.
var _ helpchunk.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every request at debug level.
type LoggingFetcher struct {
	next   helpchunk.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next helpchunk.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the request.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body string, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close closes the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
