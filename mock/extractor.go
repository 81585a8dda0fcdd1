package mock

import "github.com/fwojciec/helpchunk"

var _ helpchunk.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of helpchunk.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*helpchunk.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*helpchunk.ExtractResult, error) {
	return e.ExtractFn(html)
}
