package clean_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/clean"
	"github.com/fwojciec/pagesift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_RunBulk(t *testing.T) {
	t.Parallel()

	pages := []*pagesift.Page{
		textPage("https://example.com/a", "Home", "Welcome", "© 2024"),
		textPage("https://example.com/b", "Home", "Story", "© 2024"),
		textPage("https://example.com/c", "Home", "Products", "© 2024"),
	}

	source := &mock.PageSource{
		BulkSearchFn: func(_ context.Context, targets []string, _ pagesift.BulkOptions) ([]*pagesift.Page, error) {
			assert.Len(t, targets, 3)
			return pages, nil
		},
	}

	var mu sync.Mutex
	var exported [][]*pagesift.CleanedPage
	exporter := &mock.Exporter{
		ExportFn: func(_ context.Context, cleaned []*pagesift.CleanedPage) error {
			mu.Lock()
			defer mu.Unlock()
			exported = append(exported, cleaned)
			return nil
		},
	}

	pipeline := &clean.Pipeline{
		Source:    source,
		Cleaner:   textCleaner(t, 0.6),
		Exporters: []pagesift.Exporter{exporter, exporter},
	}

	targets := []string{"https://example.com/a", "https://example.com/b", "https://example.com/c"}
	result, err := pipeline.RunBulk(context.Background(), targets, pagesift.BulkOptions{}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Fetched)
	assert.Equal(t, 3, result.Cleaned)
	assert.Equal(t, 6, result.Removed) // "Home" and "© 2024" from each page
	assert.Len(t, exported, 2)         // both exporters ran
}

func TestPipeline_RunCrawl_DedupeAndFilter(t *testing.T) {
	t.Parallel()

	source := &mock.PageSource{
		CrawlFn: func(_ context.Context, startURL string, opts pagesift.CrawlOptions) ([]*pagesift.Page, error) {
			assert.Equal(t, "https://example.com", startURL)
			assert.Equal(t, 2, opts.MaxDepth)
			return []*pagesift.Page{
				textPage("https://example.com/team/a", "alpha"),
				textPage("https://example.com/team/a/", "alpha"), // duplicate content
				textPage("https://example.com/blog/x", "beta"),   // filtered out
				textPage("https://example.com/team/b", "gamma"),
			}, nil
		},
	}

	pipeline := &clean.Pipeline{
		Source:       source,
		Cleaner:      textCleaner(t, 0.6),
		Dedupe:       true,
		URLSubstring: "/team/",
	}

	result, err := pipeline.RunCrawl(context.Background(), "https://example.com", pagesift.CrawlOptions{MaxDepth: 2}, nil)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Fetched)
	assert.Equal(t, 2, result.Dropped)
	assert.Equal(t, 2, result.Cleaned)
}

func TestPipeline_ExporterErrorAborts(t *testing.T) {
	t.Parallel()

	pipeline := &clean.Pipeline{
		Cleaner: textCleaner(t, 0.6),
		Exporters: []pagesift.Exporter{
			&mock.Exporter{ExportFn: func(context.Context, []*pagesift.CleanedPage) error {
				return errors.New("disk full")
			}},
		},
	}

	pages := []*pagesift.Page{
		textPage("https://example.com/a", "a"),
		textPage("https://example.com/b", "b"),
	}

	_, err := pipeline.Run(context.Background(), pages, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestPipeline_ProgressEvents(t *testing.T) {
	t.Parallel()

	pipeline := &clean.Pipeline{Cleaner: textCleaner(t, 0.6)}

	var events []clean.ProgressType
	progress := func(event clean.ProgressEvent) {
		events = append(events, event.Type)
	}

	pages := []*pagesift.Page{
		textPage("https://example.com/a", "a"),
		textPage("https://example.com/b", "b"),
	}

	_, err := pipeline.Run(context.Background(), pages, progress)
	require.NoError(t, err)

	assert.Equal(t, []clean.ProgressType{clean.ProgressFetched, clean.ProgressCleaned, clean.ProgressExported}, events)
}
