package main

import (
	"fmt"

	"github.com/fwojciec/pagesift"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	pages, err := loadPages(deps, c.Targets, c.Stored, c.Domain, c.HTML)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}
	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages to process.")
		return nil
	}

	for _, page := range pages {
		stats, err := deps.Stats.Compute(page)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", page.URL, pagesift.ErrorMessage(err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s\n", stats.URL)
		fmt.Fprintf(deps.Stdout, "  words=%d sentences=%d unique_ratio=%.3f link_density=%.3f\n",
			stats.WordCount, stats.SentenceCount, stats.UniqueWordRatio, stats.LinkDensity)
	}

	return nil
}
