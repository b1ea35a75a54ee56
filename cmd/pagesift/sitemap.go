package main

import (
	"fmt"

	"github.com/fwojciec/pagesift"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No sitemap URLs found.")
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}
