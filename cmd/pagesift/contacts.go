package main

import (
	"fmt"

	"github.com/fwojciec/pagesift"
)

// Run executes the contacts command.
func (c *ContactsCmd) Run(deps *Dependencies) error {
	pages, err := loadPages(deps, c.Targets, c.Stored, c.Domain, false)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}
	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No pages to process.")
		return nil
	}

	for _, page := range pages {
		pc := pagesift.ExtractPageContacts(page)
		if len(pc.Contacts.Emails) == 0 && len(pc.Contacts.Phones) == 0 {
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s\n", pc.URL)
		for _, email := range pc.Contacts.Emails {
			fmt.Fprintf(deps.Stdout, "  email  %s\n", email)
		}
		for _, phone := range pc.Contacts.Phones {
			fmt.Fprintf(deps.Stdout, "  phone  %s\n", phone)
		}
	}

	total := pagesift.AggregateContacts(pages)
	fmt.Fprintf(deps.Stdout, "Total: %d unique emails, %d unique phone numbers across %d pages\n",
		len(total.Emails), len(total.Phones), len(pages))

	return nil
}

// loadPages fetches pages via bulk search or reads them from the database.
func loadPages(deps *Dependencies, targets []string, stored bool, domain string, withHTML bool) ([]*pagesift.Page, error) {
	if stored {
		filter := pagesift.PageFilter{}
		if domain != "" {
			filter.Domain = &domain
		}
		return deps.Pages.FindPages(deps.Ctx, filter)
	}

	if len(targets) == 0 {
		return nil, pagesift.Errorf(pagesift.EINVALID, "no targets. Pass URLs or use --stored")
	}
	return deps.Source.BulkSearch(deps.Ctx, targets, pagesift.BulkOptions{ExtractHTML: withHTML})
}
