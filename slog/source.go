package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helpchunk"
)

// Ensure LoggingURLSource implements helpchunk.URLSource.
var _ helpchunk.URLSource = (*LoggingURLSource)(nil)

// LoggingURLSource wraps a URLSource with logging.
type LoggingURLSource struct {
	next   helpchunk.URLSource
	logger *slog.Logger
}

// NewLoggingURLSource creates a new LoggingURLSource.
func NewLoggingURLSource(next helpchunk.URLSource, logger *slog.Logger) *LoggingURLSource {
	return &LoggingURLSource{next: next, logger: logger}
}

// Discover delegates to the wrapped source and logs the operation.
func (s *LoggingURLSource) Discover(ctx context.Context, indexURL string) (docs []helpchunk.DocumentRef, err error) {
	defer func(begin time.Time) {
		s.logger.Info("discovery",
			"url", indexURL,
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Discover(ctx, indexURL)
}
