package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/pagesift"
	main "github.com/fwojciec/pagesift/cmd/pagesift"
	"github.com/fwojciec/pagesift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints title and extracted content", func(t *testing.T) {
		t.Parallel()

		source := &mock.PageSource{
			BulkSearchFn: func(_ context.Context, targets []string, opts pagesift.BulkOptions) ([]*pagesift.Page, error) {
				assert.Equal(t, []string{"https://example.com/article"}, targets)
				assert.True(t, opts.ExtractHTML)
				return []*pagesift.Page{{URL: targets[0], HTMLContent: "<html><body><p>raw</p></body></html>"}}, nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*pagesift.ExtractResult, error) {
				return &pagesift.ExtractResult{Title: "An Article", ContentHTML: "<p>main content</p>"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Source:    source,
			Extractor: extractor,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/article"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "# An Article")
		assert.Contains(t, output, "<p>main content</p>")
	})

	t.Run("markdown flag converts the content", func(t *testing.T) {
		t.Parallel()

		source := &mock.PageSource{
			BulkSearchFn: func(_ context.Context, targets []string, _ pagesift.BulkOptions) ([]*pagesift.Page, error) {
				return []*pagesift.Page{{URL: targets[0], HTMLContent: "<html></html>"}}, nil
			},
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*pagesift.ExtractResult, error) {
				return &pagesift.ExtractResult{ContentHTML: "<h2>Section</h2>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<h2>Section</h2>", html)
				return "## Section", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Source:    source,
			Extractor: extractor,
			Converter: converter,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/article", Markdown: true}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "## Section")
	})

	t.Run("errors when no HTML content is returned", func(t *testing.T) {
		t.Parallel()

		source := &mock.PageSource{
			BulkSearchFn: func(_ context.Context, targets []string, _ pagesift.BulkOptions) ([]*pagesift.Page, error) {
				return []*pagesift.Page{{URL: targets[0], TextContent: "text only"}}, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Source: source,
		}

		cmd := &main.ExtractCmd{URL: "https://example.com/article"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no HTML content")
	})
}
