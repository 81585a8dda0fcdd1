package helpchunk

import "context"

// DocumentRef is a discovered document that has not been fetched yet.
type DocumentRef struct {
	// URL is the absolute document URL.
	URL string `json:"url"`

	// Section is the zero-based position of the navigation section
	// the document was listed under.
	Section int `json:"section"`
}

// Navigation is the parsed navigation data of an index page.
type Navigation struct {
	// Sections is the number of sections in the navigation tree,
	// including sections that list no documents.
	Sections int

	// Documents are the document references in navigation order.
	Documents []DocumentRef
}

// NavigationParser reads the navigation data embedded in an index page.
type NavigationParser interface {
	// ParseNavigation parses the index page HTML and returns its documents.
	// Relative URLs are resolved against the origin of indexURL.
	// Returns EDISCOVERY if the navigation data is missing or malformed.
	ParseNavigation(html string, indexURL string) (*Navigation, error)
}

// URLSource discovers the documents listed by an index page.
type URLSource interface {
	// Discover returns document references in navigation order.
	Discover(ctx context.Context, indexURL string) ([]DocumentRef, error)
}
