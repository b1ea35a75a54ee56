package pagesift

import (
	"context"
	"strings"
	"time"
)

// Page represents one crawled web page as returned by the crawl source.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Domain      string    `json:"domain"`
	SearchType  string    `json:"searchType"` // "search", "bulk", or "crawl"
	TextContent string    `json:"textContent"`
	HTMLContent string    `json:"htmlContent"`
	Depth       int       `json:"depth"`
	LatencyMS   float64   `json:"latencyMs"`
	Complete    bool      `json:"complete"`
	CreatedAt   time.Time `json:"createdAt"`

	// InternalLinks and ExternalLinks are the hyperlink targets the crawl
	// source discovered on the page, split by domain.
	InternalLinks []string `json:"internalLinks,omitempty"`
	ExternalLinks []string `json:"externalLinks,omitempty"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// Content returns the page content for the given cleaning mode:
// text content in text mode, HTML content in markup mode.
func (p *Page) Content(mode Mode) string {
	if mode == ModeMarkup {
		return p.HTMLContent
	}
	return p.TextContent
}

// FilterByURLSubstring returns the pages whose URL contains the substring.
// The input slice is not modified; relative order is preserved.
func FilterByURLSubstring(pages []*Page, substring string) []*Page {
	filtered := make([]*Page, 0, len(pages))
	for _, p := range pages {
		if strings.Contains(p.URL, substring) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// PageService represents a service for persisting and querying pages.
type PageService interface {
	// CreatePage stores a new page.
	CreatePage(ctx context.Context, page *Page) error

	// FindPageByID retrieves a page by ID.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByID(ctx context.Context, id string) (*Page, error)

	// FindPages retrieves pages matching the filter.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePage permanently removes a page.
	// Returns ENOTFOUND if the page does not exist.
	DeletePage(ctx context.Context, id string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	ID         *string `json:"id"`
	URL        *string `json:"url"`
	Domain     *string `json:"domain"`
	SearchType *string `json:"searchType"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
