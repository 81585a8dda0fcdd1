// Package crawl orchestrates a help-site harvest: document discovery,
// resilient fetching, content extraction, and chunking.
package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/helpchunk"
)

// DefaultDelay is the pause between two documents.
const DefaultDelay = time.Second

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Chunks    int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// Pipeline turns the documents listed by an index page into one ordered
// chunk sequence. Documents are processed one at a time in discovery order.
// A failing document contributes no chunks and does not stop the run.
type Pipeline struct {
	Source    helpchunk.URLSource
	Fetcher   helpchunk.Fetcher
	Extractor helpchunk.Extractor
	Converter helpchunk.Converter

	// Sink receives the chunk sequence at the end of the run. Optional.
	Sink helpchunk.ChunkSink

	// MaxChunkSize is the advisory chunk size; zero selects
	// helpchunk.DefaultMaxChunkSize.
	MaxChunkSize int

	// Delay is the pause between the end of one document and the start
	// of the next. Zero or negative values disable the pause.
	Delay time.Duration

	Logger   *slog.Logger
	Progress ProgressFunc
}

// document is the outcome of processing one document.
type document struct {
	title  string
	chunks []helpchunk.Chunk
}

// Run discovers the documents of indexURL, processes each of them, and
// writes the resulting chunks to the sink.
//
// Discovery errors abort the run. Per-document errors are collected in the
// result. If ctx is canceled between documents the chunks gathered so far
// are still written and ctx.Err() is returned with the partial result.
func (p *Pipeline) Run(ctx context.Context, indexURL string) (*helpchunk.Result, error) {
	logger := p.logger()

	docs, err := p.Source.Discover(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	result := &helpchunk.Result{Documents: len(docs)}
	p.notify(ProgressEvent{Type: ProgressStarted, Total: len(docs)})

	var runErr error
	for i, ref := range docs {
		if i > 0 {
			if err := p.wait(ctx); err != nil {
				runErr = err
				break
			}
		}

		doc, err := p.process(ctx, ref.URL)
		if err != nil {
			result.Failures = append(result.Failures, helpchunk.Failure{URL: ref.URL, Err: err})
			logger.Error("document failed", "url", ref.URL, "err", err)
			p.notify(ProgressEvent{
				Type:      ProgressFailed,
				Completed: i + 1,
				Total:     len(docs),
				URL:       ref.URL,
				Error:     err,
			})
			continue
		}

		result.Succeeded++
		result.Chunks = append(result.Chunks, doc.chunks...)
		logger.Info("document processed", "url", ref.URL, "title", doc.title, "chunks", len(doc.chunks))
		p.notify(ProgressEvent{
			Type:      ProgressCompleted,
			Completed: i + 1,
			Total:     len(docs),
			URL:       ref.URL,
			Chunks:    len(doc.chunks),
		})
	}

	p.notify(ProgressEvent{
		Type:      ProgressFinished,
		Completed: result.Succeeded + len(result.Failures),
		Total:     len(docs),
	})
	logger.Info("harvest finished",
		"documents", result.Documents,
		"succeeded", result.Succeeded,
		"failed", len(result.Failures),
		"chunks", len(result.Chunks))

	if p.Sink != nil {
		// Partial results are persisted even when the run was canceled.
		if err := p.Sink.WriteChunks(context.WithoutCancel(ctx), result.Chunks); err != nil {
			return result, err
		}
	}

	return result, runErr
}

// process fetches, extracts, and chunks a single document. A panic is
// recovered and reported as an EINTERNAL error for that document.
func (p *Pipeline) process(ctx context.Context, url string) (doc *document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = helpchunk.Errorf(helpchunk.EINTERNAL, "panic while processing %s: %v", url, r)
		}
	}()

	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	extracted, err := p.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	markdown, err := p.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	chunks := helpchunk.SplitChunks(helpchunk.NormalizeText(markdown), p.MaxChunkSize)
	for i := range chunks {
		chunks[i].SourceURL = url
	}

	return &document{title: extracted.Title, chunks: chunks}, nil
}

// wait pauses for the configured delay or until ctx is done.
func (p *Pipeline) wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(p.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (p *Pipeline) notify(event ProgressEvent) {
	if p.Progress != nil {
		p.Progress(event)
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
