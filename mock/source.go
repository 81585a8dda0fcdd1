package mock

import (
	"context"

	"github.com/fwojciec/helpchunk"
)

// Compile-time interface verification.
var (
	_ helpchunk.URLSource        = (*URLSource)(nil)
	_ helpchunk.NavigationParser = (*NavigationParser)(nil)
)

// URLSource is a mock implementation of helpchunk.URLSource.
type URLSource struct {
	DiscoverFn func(ctx context.Context, indexURL string) ([]helpchunk.DocumentRef, error)
}

func (s *URLSource) Discover(ctx context.Context, indexURL string) ([]helpchunk.DocumentRef, error) {
	return s.DiscoverFn(ctx, indexURL)
}

// NavigationParser is a mock implementation of helpchunk.NavigationParser.
type NavigationParser struct {
	ParseNavigationFn func(html string, indexURL string) (*helpchunk.Navigation, error)
}

func (p *NavigationParser) ParseNavigation(html string, indexURL string) (*helpchunk.Navigation, error) {
	return p.ParseNavigationFn(html, indexURL)
}
