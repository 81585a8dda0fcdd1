package helpchunk

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the primary article element rendered as HTML.
	ContentHTML string
}

// Extractor isolates the primary content region of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the primary article.
	// Returns EEXTRACT if the page has no article element.
	Extract(html string) (*ExtractResult, error)
}
