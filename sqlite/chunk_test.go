package sqlite_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/helpchunk"
	"github.com/fwojciec/helpchunk/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkStore_WriteChunks(t *testing.T) {
	t.Parallel()

	t.Run("round-trips chunks in order", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewChunkStore(openTestDB(t))
		ctx := context.Background()
		chunks := []helpchunk.Chunk{
			{Text: "# Pages\n\nEverything is a block.", SourceURL: "https://example.com/pages", Index: 0},
			{Text: "## Tables\n| a | b |\n|---|---|", SourceURL: "https://example.com/pages", Index: 1},
			{Text: "# Zażółć 'quotes' \"double\"\n\ttab", SourceURL: "https://example.com/unicode", Index: 0},
		}

		err := store.WriteChunks(ctx, chunks)
		require.NoError(t, err)

		got, err := store.ReadChunks(ctx)
		require.NoError(t, err)
		assert.Equal(t, chunks, got)
	})

	t.Run("replaces the previous sequence", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		store := sqlite.NewChunkStore(db)
		ctx := context.Background()

		require.NoError(t, store.WriteChunks(ctx, []helpchunk.Chunk{{Text: "old one"}, {Text: "old two"}}))
		require.NoError(t, store.WriteChunks(ctx, []helpchunk.Chunk{{Text: "new"}}))

		got, err := store.ReadChunks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"new"}, helpchunk.ChunkTexts(got))

		var rows int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks").Scan(&rows)
		require.NoError(t, err)
		assert.Equal(t, 1, rows, "chunks of earlier runs are removed")
	})

	t.Run("stores an empty sequence", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewChunkStore(openTestDB(t))
		ctx := context.Background()

		require.NoError(t, store.WriteChunks(ctx, nil))

		got, err := store.ReadChunks(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("records chunk count and content hash", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		store := sqlite.NewChunkStore(db)
		ctx := context.Background()

		require.NoError(t, store.WriteChunks(ctx, []helpchunk.Chunk{{Text: "a"}, {Text: "b"}}))

		var count int
		err := db.QueryRowContext(ctx, "SELECT chunk_count FROM runs").Scan(&count)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		var hash string
		err = db.QueryRowContext(ctx, "SELECT content_hash FROM chunks WHERE position = 0").Scan(&hash)
		require.NoError(t, err)
		assert.Len(t, hash, 16)
	})

	t.Run("persists across reopen", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "chunks.db")
		ctx := context.Background()

		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		require.NoError(t, sqlite.NewChunkStore(db).WriteChunks(ctx, []helpchunk.Chunk{{Text: "kept"}}))
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		got, err := sqlite.NewChunkStore(db).ReadChunks(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"kept"}, helpchunk.ChunkTexts(got))
	})
}

func TestChunkStore_ReadChunks(t *testing.T) {
	t.Parallel()

	t.Run("returns not found before any write", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewChunkStore(openTestDB(t))

		_, err := store.ReadChunks(context.Background())

		require.Error(t, err)
		assert.Equal(t, helpchunk.ENOTFOUND, helpchunk.ErrorCode(err))
	})

	t.Run("detects modified content", func(t *testing.T) {
		t.Parallel()

		db := openTestDB(t)
		store := sqlite.NewChunkStore(db)
		ctx := context.Background()
		require.NoError(t, store.WriteChunks(ctx, []helpchunk.Chunk{{Text: "original"}}))

		_, err := db.ExecContext(ctx, "UPDATE chunks SET content = 'tampered'")
		require.NoError(t, err)

		_, err = store.ReadChunks(ctx)
		require.Error(t, err)
		assert.Equal(t, helpchunk.EINTERNAL, helpchunk.ErrorCode(err))
	})
}

// BenchmarkChunkStore_WriteChunks measures replacing a harvest-sized sequence.
func BenchmarkChunkStore_WriteChunks(b *testing.B) {
	db := sqlite.NewDB(filepath.Join(b.TempDir(), "bench.db"))
	require.NoError(b, db.Open())
	defer db.Close()

	store := sqlite.NewChunkStore(db)
	chunks := make([]helpchunk.Chunk, 500)
	for i := range chunks {
		chunks[i] = helpchunk.Chunk{
			Text:      fmt.Sprintf("# Section %d\n\nBody text for section %d.", i, i),
			SourceURL: fmt.Sprintf("https://example.com/help/%d", i/10),
			Index:     i % 10,
		}
	}

	ctx := context.Background()
	for b.Loop() {
		require.NoError(b, store.WriteChunks(ctx, chunks))
	}
}
