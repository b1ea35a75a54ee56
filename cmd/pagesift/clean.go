package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/clean"
	"github.com/fwojciec/pagesift/fs"
	psslog "github.com/fwojciec/pagesift/slog"
	"github.com/fwojciec/pagesift/sqlite"
)

// Run executes the clean command.
func (c *CleanCmd) Run(deps *Dependencies) error {
	targets := c.Targets

	// Sitemap mode: build the target list from the site's sitemap
	if c.Sitemap != "" {
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
			return err
		}
		if len(urls) == 0 {
			return fmt.Errorf("no URLs found in sitemap for %q", c.Sitemap)
		}
		targets = append(targets, urls...)
		fmt.Fprintf(deps.Stdout, "Found %d URLs in sitemap\n", len(urls))
	}

	if len(targets) == 0 && c.Crawl == "" {
		return fmt.Errorf("no targets. Pass URLs, --sitemap, or --crawl")
	}

	extractHTML := c.Mode == string(pagesift.ModeMarkup)

	var exporters []pagesift.Exporter
	if c.CSV != "" {
		exporters = append(exporters, psslog.NewLoggingExporter(fs.NewCSVExporter(c.CSV), "csv", deps.Logger))
	}
	if c.JSON != "" {
		exporters = append(exporters, psslog.NewLoggingExporter(fs.NewJSONExporter(c.JSON), "json", deps.Logger))
	}
	if c.Store {
		exporters = append(exporters, psslog.NewLoggingExporter(sqlite.NewExporter(deps.DB), "sqlite", deps.Logger))
	}

	pipeline := &clean.Pipeline{
		Source:       &storingSource{next: deps.Source, pages: deps.Pages, store: c.Store},
		Cleaner:      deps.Cleaner,
		Exporters:    exporters,
		Dedupe:       c.Dedupe,
		URLSubstring: c.Filter,
	}

	progress := func(event clean.ProgressEvent) {
		switch event.Type {
		case clean.ProgressFetched:
			fmt.Fprintf(deps.Stdout, "  Fetched %d pages\n", event.Count)
		case clean.ProgressCleaned:
			if event.Note != "" {
				fmt.Fprintf(deps.Stdout, "  Skipped cleaning: %s\n", event.Note)
			} else {
				fmt.Fprintf(deps.Stdout, "  Removed %d boilerplate blocks\n", event.Count)
			}
		case clean.ProgressExported:
			fmt.Fprintf(deps.Stdout, "  Exported %d pages\n", event.Count)
		}
	}

	var result *clean.Result
	var err error
	if c.Crawl != "" {
		result, err = pipeline.RunCrawl(deps.Ctx, c.Crawl, pagesift.CrawlOptions{
			MaxDepth:    c.MaxDepth,
			ExtractHTML: extractHTML,
		}, progress)
	} else {
		result, err = pipeline.RunBulk(deps.Ctx, targets, pagesift.BulkOptions{
			ExtractHTML: extractHTML,
		}, progress)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	if result.Dropped > 0 {
		fmt.Fprintf(deps.Stdout, "  Dropped %d pages (dedupe/filter)\n", result.Dropped)
	}
	fmt.Fprintf(deps.Stdout, "Done: %d pages cleaned, %d blocks removed\n", result.Cleaned, result.Removed)

	return nil
}

// storingSource wraps a PageSource and optionally persists every fetched
// page before cleaning, so raw content survives alongside cleaned exports.
type storingSource struct {
	next  pagesift.PageSource
	pages pagesift.PageService
	store bool
}

func (s *storingSource) BulkSearch(ctx context.Context, targets []string, opts pagesift.BulkOptions) ([]*pagesift.Page, error) {
	pages, err := s.next.BulkSearch(ctx, targets, opts)
	if err != nil {
		return nil, err
	}
	return pages, s.save(ctx, pages)
}

func (s *storingSource) Crawl(ctx context.Context, startURL string, opts pagesift.CrawlOptions) ([]*pagesift.Page, error) {
	pages, err := s.next.Crawl(ctx, startURL, opts)
	if err != nil {
		return nil, err
	}
	return pages, s.save(ctx, pages)
}

func (s *storingSource) save(ctx context.Context, pages []*pagesift.Page) error {
	if !s.store {
		return nil
	}
	for _, page := range pages {
		if err := s.pages.CreatePage(ctx, page); err != nil {
			return fmt.Errorf("save page %s: %w", page.URL, err)
		}
	}
	return nil
}
