package mock

import (
	"context"

	"github.com/fwojciec/pagesift"
)

var _ pagesift.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of pagesift.PageSource.
type PageSource struct {
	BulkSearchFn func(ctx context.Context, targets []string, opts pagesift.BulkOptions) ([]*pagesift.Page, error)
	CrawlFn      func(ctx context.Context, startURL string, opts pagesift.CrawlOptions) ([]*pagesift.Page, error)
}

func (s *PageSource) BulkSearch(ctx context.Context, targets []string, opts pagesift.BulkOptions) ([]*pagesift.Page, error) {
	return s.BulkSearchFn(ctx, targets, opts)
}

func (s *PageSource) Crawl(ctx context.Context, startURL string, opts pagesift.CrawlOptions) ([]*pagesift.Page, error) {
	return s.CrawlFn(ctx, startURL, opts)
}

var _ pagesift.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pagesift.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
