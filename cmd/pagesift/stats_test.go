package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/pagesift"
	main "github.com/fwojciec/pagesift/cmd/pagesift"
	"github.com/fwojciec/pagesift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints statistics for each page", func(t *testing.T) {
		t.Parallel()

		source := &mock.PageSource{
			BulkSearchFn: func(_ context.Context, targets []string, opts pagesift.BulkOptions) ([]*pagesift.Page, error) {
				assert.True(t, opts.ExtractHTML)
				return []*pagesift.Page{{URL: "https://example.com/a", TextContent: "Some text here."}}, nil
			},
		}
		stats := &mock.StatsService{
			ComputeFn: func(page *pagesift.Page) (*pagesift.TextStats, error) {
				return &pagesift.TextStats{
					URL:             page.URL,
					WordCount:       3,
					SentenceCount:   1,
					UniqueWordRatio: 1,
					LinkDensity:     0.25,
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Source: source,
			Stats:  stats,
		}

		cmd := &main.StatsCmd{Targets: []string{"https://example.com/a"}, HTML: true}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "https://example.com/a")
		assert.Contains(t, output, "words=3")
		assert.Contains(t, output, "link_density=0.250")
	})

	t.Run("skips pages that fail to compute", func(t *testing.T) {
		t.Parallel()

		source := &mock.PageSource{
			BulkSearchFn: func(_ context.Context, targets []string, _ pagesift.BulkOptions) ([]*pagesift.Page, error) {
				return []*pagesift.Page{
					{URL: "https://example.com/bad"},
					{URL: "https://example.com/good", TextContent: "fine"},
				}, nil
			},
		}
		stats := &mock.StatsService{
			ComputeFn: func(page *pagesift.Page) (*pagesift.TextStats, error) {
				if page.URL == "https://example.com/bad" {
					return nil, errors.New("empty page")
				}
				return &pagesift.TextStats{URL: page.URL, WordCount: 1}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Source: source,
			Stats:  stats,
		}

		cmd := &main.StatsCmd{Targets: []string{"https://example.com/bad", "https://example.com/good"}}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "skip https://example.com/bad")
		assert.Contains(t, stdout.String(), "https://example.com/good")
	})
}
