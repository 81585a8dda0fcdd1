package helpchunk

// Converter renders article HTML as Markdown.
type Converter interface {
	// Convert renders headings in ATX style and reduces links and images
	// to their visible text. Returns EINVALID for empty input.
	Convert(html string) (string, error)
}
