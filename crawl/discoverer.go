package crawl

import (
	"context"
	"log/slog"

	"github.com/fwojciec/helpchunk"
)

var _ helpchunk.URLSource = (*Discoverer)(nil)

// Discoverer lists the documents of a help site from its index page.
type Discoverer struct {
	Fetcher helpchunk.Fetcher
	Parser  helpchunk.NavigationParser
	Logger  *slog.Logger
}

// Discover fetches the index page and returns its documents in navigation
// order. A fetch failure keeps its EFETCH code; missing or malformed
// navigation data is reported as EDISCOVERY.
func (d *Discoverer) Discover(ctx context.Context, indexURL string) ([]helpchunk.DocumentRef, error) {
	logger := d.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	html, err := d.Fetcher.Fetch(ctx, indexURL)
	if err != nil {
		return nil, err
	}

	nav, err := d.Parser.ParseNavigation(html, indexURL)
	if err != nil {
		if code := helpchunk.ErrorCode(err); code == helpchunk.EDISCOVERY || code == helpchunk.EINVALID {
			return nil, err
		}
		return nil, helpchunk.WrapError(helpchunk.EDISCOVERY, err, "parse navigation of %s", indexURL)
	}

	logger.Info("found sections", "count", nav.Sections)
	if logger.Enabled(ctx, slog.LevelDebug) {
		perSection := make([]int, nav.Sections)
		for _, doc := range nav.Documents {
			if doc.Section >= 0 && doc.Section < len(perSection) {
				perSection[doc.Section]++
			}
		}
		for i, n := range perSection {
			logger.Debug("section urls", "section", i, "count", n)
		}
	}
	logger.Info("found urls", "count", len(nav.Documents))

	return nav.Documents, nil
}
