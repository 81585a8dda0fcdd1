package helpchunk

import (
	"context"
	"strings"
	"unicode/utf8"
)

// DefaultMaxChunkSize is the advisory chunk size in characters.
const DefaultMaxChunkSize = 750

// Chunk is a heading-aligned slice of a document's normalized text.
type Chunk struct {
	Text string `json:"text" yaml:"text"`

	// SourceURL is the document the chunk was cut from.
	SourceURL string `json:"sourceUrl,omitempty" yaml:"source,omitempty"`

	// Index is the position of the chunk within its document.
	Index int `json:"index" yaml:"index"`
}

// SplitChunks splits normalized text into chunks of whole heading sections.
//
// Sections are accumulated in order. Before a section is appended, the
// accumulated text is closed out as a chunk if adding the section would
// take it past maxSize characters. A single section longer than maxSize
// therefore becomes its own oversized chunk; sections are never cut.
// Text before the first heading starts the first chunk. Each chunk is
// trimmed of surrounding whitespace and empty chunks are dropped.
//
// A maxSize of zero or less selects DefaultMaxChunkSize.
func SplitChunks(text string, maxSize int) []Chunk {
	if maxSize <= 0 {
		maxSize = DefaultMaxChunkSize
	}

	preamble, sections := SplitSections(text)

	var chunks []Chunk
	var current strings.Builder
	currentLen := 0

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, Chunk{Text: s, Index: len(chunks)})
		}
		current.Reset()
		currentLen = 0
	}

	current.WriteString(preamble)
	currentLen = utf8.RuneCountInString(preamble)

	for _, s := range sections {
		n := utf8.RuneCountInString(s.Heading) + utf8.RuneCountInString(s.Body)
		if currentLen > 0 && currentLen+n > maxSize {
			flush()
		}
		current.WriteString(s.Heading)
		current.WriteString(s.Body)
		currentLen += n
	}
	flush()

	return chunks
}

// ChunkTexts returns the text of each chunk in order.
func ChunkTexts(chunks []Chunk) []string {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return texts
}

// ChunkSink persists the final chunk sequence of a run.
type ChunkSink interface {
	// WriteChunks replaces any previously written sequence with chunks,
	// preserving their order.
	WriteChunks(ctx context.Context, chunks []Chunk) error
}

// ChunkReader reloads a persisted chunk sequence.
type ChunkReader interface {
	// ReadChunks returns the chunks in the order they were written.
	// Returns ENOTFOUND if nothing has been written.
	ReadChunks(ctx context.Context) ([]Chunk, error)
}

type multiChunkSink []ChunkSink

// MultiChunkSink returns a sink that writes to each of sinks in order.
// Writing stops at the first error.
func MultiChunkSink(sinks ...ChunkSink) ChunkSink {
	return multiChunkSink(sinks)
}

func (m multiChunkSink) WriteChunks(ctx context.Context, chunks []Chunk) error {
	for _, s := range m {
		if err := s.WriteChunks(ctx, chunks); err != nil {
			return err
		}
	}
	return nil
}
