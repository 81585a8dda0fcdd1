package mock

import (
	"context"

	"github.com/fwojciec/helpchunk"
)

// Compile-time interface verification.
var (
	_ helpchunk.ChunkSink   = (*ChunkSink)(nil)
	_ helpchunk.ChunkReader = (*ChunkReader)(nil)
)

// ChunkSink is a mock implementation of helpchunk.ChunkSink.
type ChunkSink struct {
	WriteChunksFn func(ctx context.Context, chunks []helpchunk.Chunk) error
}

func (s *ChunkSink) WriteChunks(ctx context.Context, chunks []helpchunk.Chunk) error {
	return s.WriteChunksFn(ctx, chunks)
}

// ChunkReader is a mock implementation of helpchunk.ChunkReader.
type ChunkReader struct {
	ReadChunksFn func(ctx context.Context) ([]helpchunk.Chunk, error)
}

func (r *ChunkReader) ReadChunks(ctx context.Context) ([]helpchunk.Chunk, error) {
	return r.ReadChunksFn(ctx)
}
