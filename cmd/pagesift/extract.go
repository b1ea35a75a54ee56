package main

import (
	"fmt"

	"github.com/fwojciec/pagesift"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	pages, err := deps.Source.BulkSearch(deps.Ctx, []string{c.URL}, pagesift.BulkOptions{ExtractHTML: true})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}
	if len(pages) == 0 || pages[0].HTMLContent == "" {
		return fmt.Errorf("no HTML content returned for %q", c.URL)
	}

	result, err := deps.Extractor.Extract(pages[0].HTMLContent)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	content := result.ContentHTML
	if c.Markdown {
		content, err = deps.Converter.Convert(result.ContentHTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
			return err
		}
	}

	if result.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", result.Title)
	}
	fmt.Fprintln(deps.Stdout, content)

	return nil
}
