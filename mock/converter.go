package mock

import "github.com/fwojciec/helpchunk"

var _ helpchunk.Converter = (*Converter)(nil)

// Converter is a mock implementation of helpchunk.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
