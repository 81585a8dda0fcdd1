package helpchunk

// Failure records a document that could not be processed.
type Failure struct {
	URL string
	Err error
}

// Result summarizes a pipeline run.
type Result struct {
	// Documents is the number of discovered documents.
	Documents int

	// Succeeded is the number of documents that produced chunks
	// (or produced no chunks without error).
	Succeeded int

	// Failures lists the documents that failed, in discovery order.
	Failures []Failure

	// Chunks is the chunk sequence across all succeeded documents,
	// in discovery order.
	Chunks []Chunk
}

// FailedURLs returns the URLs of failed documents in order.
func (r *Result) FailedURLs() []string {
	urls := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		urls[i] = f.URL
	}
	return urls
}
