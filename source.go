package pagesift

import "context"

// BulkOptions configures a bulk search against the crawl source.
type BulkOptions struct {
	// ExtractHTML requests raw HTML in addition to extracted text.
	ExtractHTML bool

	// CompletionFraction is the fraction of targets that must complete
	// before collection returns (0 means the source default).
	CompletionFraction float64
}

// CrawlOptions configures a recursive crawl from a start URL.
type CrawlOptions struct {
	// MaxDepth is the maximum link depth to follow from the start URL.
	MaxDepth int

	// ExtractHTML requests raw HTML in addition to extracted text.
	ExtractHTML bool
}

// PageSource supplies batches of already-fetched pages. The source owns all
// network concerns: authentication, retries, stealth and anti-bot behavior.
type PageSource interface {
	// BulkSearch fetches up to 1000 target URLs in one server-side batch
	// and waits for results to collect.
	BulkSearch(ctx context.Context, targets []string, opts BulkOptions) ([]*Page, error)

	// Crawl follows links from startURL up to the configured depth.
	Crawl(ctx context.Context, startURL string, opts CrawlOptions) ([]*Page, error)
}

// SitemapService discovers URLs from a site's sitemap, for building bulk
// search target lists.
type SitemapService interface {
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
