// Package fs provides file-based storage for chunk sequences.
package fs

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/helpchunk"
	"gopkg.in/yaml.v3"
)

// Ensure ChunkFile implements helpchunk.ChunkSink and helpchunk.ChunkReader
// at compile time.
var (
	_ helpchunk.ChunkSink   = (*ChunkFile)(nil)
	_ helpchunk.ChunkReader = (*ChunkFile)(nil)
)

// ChunkFile stores a chunk sequence as a YAML list in a single file.
// Writes go to a temporary file in the same directory which then replaces
// the target, so readers never observe a partially written file.
type ChunkFile struct {
	path string
}

// NewChunkFile creates a ChunkFile backed by path.
func NewChunkFile(path string) *ChunkFile {
	return &ChunkFile{path: path}
}

// Path returns the path of the backing file.
func (f *ChunkFile) Path() string {
	return f.path
}

// WriteChunks replaces the file contents with chunks.
func (f *ChunkFile) WriteChunks(ctx context.Context, chunks []helpchunk.Chunk) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if chunks == nil {
		chunks = []helpchunk.Chunk{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(chunks); err != nil {
		return helpchunk.WrapError(helpchunk.EINTERNAL, err, "encode chunks")
	}
	if err := enc.Close(); err != nil {
		return helpchunk.WrapError(helpchunk.EINTERNAL, err, "encode chunks")
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	// Atomically replace the previous file
	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// ReadChunks loads the chunk sequence from the file.
// Returns ENOTFOUND if the file does not exist.
func (f *ChunkFile) ReadChunks(ctx context.Context) ([]helpchunk.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, helpchunk.Errorf(helpchunk.ENOTFOUND, "chunk file %s not found", f.path)
	} else if err != nil {
		return nil, err
	}

	var chunks []helpchunk.Chunk
	if err := yaml.Unmarshal(data, &chunks); err != nil {
		return nil, helpchunk.WrapError(helpchunk.EINVALID, err, "chunk file %s is not a chunk list", f.path)
	}
	if chunks == nil {
		chunks = []helpchunk.Chunk{}
	}
	return chunks, nil
}
