package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesift"
)

// Ensure LoggingSource implements pagesift.PageSource.
var _ pagesift.PageSource = (*LoggingSource)(nil)

// LoggingSource wraps a PageSource with logging of fetch operations.
type LoggingSource struct {
	next   pagesift.PageSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next pagesift.PageSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// BulkSearch delegates to the wrapped source and logs the operation.
func (s *LoggingSource) BulkSearch(ctx context.Context, targets []string, opts pagesift.BulkOptions) (pages []*pagesift.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("bulk search",
			"targets", len(targets),
			"pages", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.BulkSearch(ctx, targets, opts)
}

// Crawl delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Crawl(ctx context.Context, startURL string, opts pagesift.CrawlOptions) (pages []*pagesift.Page, err error) {
	defer func(begin time.Time) {
		s.logger.Info("crawl",
			"url", startURL,
			"max_depth", opts.MaxDepth,
			"pages", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Crawl(ctx, startURL, opts)
}
