package main

import (
	"fmt"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/extract"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	urls, err := deps.Sitemaps.DiscoverArticleURLs(deps.Ctx, c.SiteURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No article URLs found in the site's sitemaps.")
		return nil
	}
	if c.Limit > 0 && len(urls) > c.Limit {
		urls = urls[:c.Limit]
	}

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Extracting %d URLs\n", event.Total)
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, newsclip.ErrorMessage(event.Error))
		}
	}

	result, err := deps.Batch.ExtractAll(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsclip.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Saved %d articles (%d skipped, %d failed)\n",
		result.Saved, result.Skipped, result.Failed)
	return nil
}
