package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helpchunk"
)

// Ensure LoggingChunkSink implements helpchunk.ChunkSink.
var _ helpchunk.ChunkSink = (*LoggingChunkSink)(nil)

// LoggingChunkSink wraps a ChunkSink with logging.
type LoggingChunkSink struct {
	next   helpchunk.ChunkSink
	name   string
	logger *slog.Logger
}

// NewLoggingChunkSink creates a new LoggingChunkSink. The name identifies
// the sink in log records, e.g. the output path.
func NewLoggingChunkSink(next helpchunk.ChunkSink, name string, logger *slog.Logger) *LoggingChunkSink {
	return &LoggingChunkSink{next: next, name: name, logger: logger}
}

// WriteChunks delegates to the wrapped sink and logs the write.
func (s *LoggingChunkSink) WriteChunks(ctx context.Context, chunks []helpchunk.Chunk) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write chunks",
			"sink", s.name,
			"count", len(chunks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteChunks(ctx, chunks)
}
