package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/helpchunk"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var (
	_ helpchunk.ChunkSink   = (*ChunkStore)(nil)
	_ helpchunk.ChunkReader = (*ChunkStore)(nil)
)

// ChunkStore persists the chunk sequence of the latest run.
type ChunkStore struct {
	db *DB
}

// NewChunkStore creates a new ChunkStore.
func NewChunkStore(db *DB) *ChunkStore {
	return &ChunkStore{db: db}
}

// hashContent computes the xxHash of content as a 16-digit hex string.
func hashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// WriteChunks replaces the stored sequence with chunks in one transaction.
func (s *ChunkStore) WriteChunks(ctx context.Context, chunks []helpchunk.Chunk) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Chunks of earlier runs are removed by the cascade.
	if _, err := tx.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return err
	}

	runID := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, chunk_count, created_at)
		VALUES (?, ?, ?)
	`, runID, len(chunks), time.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, run_id, position, source_url, chunk_index, content, content_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range chunks {
		if _, err := stmt.ExecContext(ctx,
			uuid.New().String(), runID, i, c.SourceURL, c.Index, c.Text, hashContent(c.Text),
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ReadChunks returns the stored sequence in write order.
// Returns ENOTFOUND if no sequence has been written.
func (s *ChunkStore) ReadChunks(ctx context.Context) ([]helpchunk.Chunk, error) {
	var runID string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM runs ORDER BY created_at DESC LIMIT 1`).Scan(&runID)
	if err == sql.ErrNoRows {
		return nil, helpchunk.Errorf(helpchunk.ENOTFOUND, "no chunks stored")
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT source_url, chunk_index, content, content_hash
		FROM chunks
		WHERE run_id = ?
		ORDER BY position ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chunks := []helpchunk.Chunk{}
	for rows.Next() {
		var c helpchunk.Chunk
		var hash string
		if err := rows.Scan(&c.SourceURL, &c.Index, &c.Text, &hash); err != nil {
			return nil, err
		}
		if hash != hashContent(c.Text) {
			return nil, helpchunk.Errorf(helpchunk.EINTERNAL, "chunk %d content hash mismatch", len(chunks))
		}
		chunks = append(chunks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return chunks, nil
}
