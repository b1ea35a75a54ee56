package main

import (
	"fmt"

	"github.com/fwojciec/pagesift"
)

// Run executes the languages command.
func (c *LanguagesCmd) Run(deps *Dependencies) error {
	pages, err := loadPages(deps, c.Targets, c.Stored, c.Domain, false)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}
	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages to process.")
		return nil
	}

	for _, result := range pagesift.DetectPageLanguages(pages, deps.Languages) {
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", result.Language, result.URL)
	}

	return nil
}
