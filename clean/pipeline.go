package clean

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagesift"
	"golang.org/x/sync/errgroup"
)

// Pipeline wires a page source, the cleaner, and exporters into one run:
// fetch, optional dedupe and URL filtering, boilerplate removal, export.
type Pipeline struct {
	Source    pagesift.PageSource
	Cleaner   pagesift.Cleaner
	Exporters []pagesift.Exporter

	// Dedupe drops pages with identical text content before cleaning.
	Dedupe bool

	// URLSubstring, when non-empty, keeps only pages whose URL contains it.
	URLSubstring string
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Fetched  int
	Dropped  int // removed by dedupe or URL filtering
	Cleaned  int
	Removed  int // block instances removed across the batch
	Skipped  bool
	SkipNote string
}

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type  ProgressType
	Count int
	Note  string
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressFetched ProgressType = iota
	ProgressCleaned
	ProgressExported
)

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// RunBulk fetches the target URLs via bulk search and processes them.
func (p *Pipeline) RunBulk(ctx context.Context, targets []string, opts pagesift.BulkOptions, progress ProgressFunc) (*Result, error) {
	pages, err := p.Source.BulkSearch(ctx, targets, opts)
	if err != nil {
		return nil, fmt.Errorf("bulk search: %w", err)
	}
	return p.Run(ctx, pages, progress)
}

// RunCrawl crawls from the start URL and processes the discovered pages.
func (p *Pipeline) RunCrawl(ctx context.Context, startURL string, opts pagesift.CrawlOptions, progress ProgressFunc) (*Result, error) {
	pages, err := p.Source.Crawl(ctx, startURL, opts)
	if err != nil {
		return nil, fmt.Errorf("crawl: %w", err)
	}
	return p.Run(ctx, pages, progress)
}

// Run processes an already-fetched batch: dedupe, filter, clean, export.
// Exporters run concurrently; the first exporter error aborts the rest.
func (p *Pipeline) Run(ctx context.Context, pages []*pagesift.Page, progress ProgressFunc) (*Result, error) {
	result := &Result{Fetched: len(pages)}
	emit(progress, ProgressEvent{Type: ProgressFetched, Count: len(pages)})

	if p.Dedupe {
		pages = RemoveDuplicatePages(pages)
	}
	if p.URLSubstring != "" {
		pages = pagesift.FilterByURLSubstring(pages, p.URLSubstring)
	}
	result.Dropped = result.Fetched - len(pages)

	batch, err := p.Cleaner.Clean(pages)
	if err != nil {
		return nil, fmt.Errorf("clean: %w", err)
	}
	result.Cleaned = len(batch.Pages)
	result.Removed = batch.TotalRemoved()
	result.Skipped = batch.Skipped
	result.SkipNote = batch.SkipReason
	emit(progress, ProgressEvent{Type: ProgressCleaned, Count: result.Removed, Note: batch.SkipReason})

	g, gctx := errgroup.WithContext(ctx)
	for _, exporter := range p.Exporters {
		g.Go(func() error {
			return exporter.Export(gctx, batch.Pages)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	emit(progress, ProgressEvent{Type: ProgressExported, Count: len(batch.Pages)})

	return result, nil
}

func emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
