package main

import (
	"fmt"

	"github.com/fwojciec/pagesift"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	pages, err := deps.Source.Crawl(deps.Ctx, c.URL, pagesift.CrawlOptions{MaxDepth: c.MaxDepth})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	edges := pagesift.ExtractLinkGraph(pages, pagesift.LinkGraphOptions{
		IncludeExternal: c.External,
		CrawledOnly:     c.CrawledOnly,
	})

	for _, edge := range edges {
		fmt.Fprintf(deps.Stdout, "%s -> %s\n", edge.Source, edge.Target)
	}
	fmt.Fprintf(deps.Stdout, "Total: %d edges across %d pages\n", len(edges), len(pages))

	return nil
}
