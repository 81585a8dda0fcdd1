package main

import (
	"fmt"

	"github.com/fwojciec/helpchunk"
	"github.com/fwojciec/helpchunk/crawl"
)

// Run executes the harvest command.
func (c *HarvestCmd) Run(deps *Dependencies) error {
	// Preview mode: show URLs without fetching documents
	if c.Preview {
		return c.runPreview(deps)
	}

	return c.runHarvest(deps)
}

func (c *HarvestCmd) runPreview(deps *Dependencies) error {
	docs, err := deps.Source.Discover(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpchunk.ErrorMessage(err))
		return err
	}

	for _, doc := range docs {
		fmt.Fprintln(deps.Stdout, doc.URL)
	}

	return nil
}

func (c *HarvestCmd) runHarvest(deps *Dependencies) error {
	deps.Pipeline.Progress = func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d documents\n", e.Total)
		case crawl.ProgressCompleted, crawl.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %-40s", e.Completed, e.Total, truncateURL(e.URL, 40))
		case crawl.ProgressFinished:
			if e.Total > 0 {
				fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
			}
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, c.URL)
	if result == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", helpchunk.ErrorMessage(err))
		return err
	}

	for _, f := range result.Failures {
		fmt.Fprintf(deps.Stderr, "skip %s: %s\n", f.URL, helpchunk.ErrorMessage(f.Err))
	}
	fmt.Fprintf(deps.Stdout, "Saved %d chunks from %d/%d documents to %s\n",
		len(result.Chunks), result.Succeeded, result.Documents, c.Output)

	return err
}

// truncateURL shortens a URL for display, keeping the end which is more informative.
func truncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if maxLen < 4 {
		return url[:min(len(url), maxLen)]
	}
	if len(url) <= maxLen {
		return url
	}
	return "..." + url[len(url)-maxLen+3:]
}
