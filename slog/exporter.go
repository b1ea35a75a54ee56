package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagesift"
)

// Ensure LoggingExporter implements pagesift.Exporter.
var _ pagesift.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter with logging of export operations.
type LoggingExporter struct {
	next   pagesift.Exporter
	name   string
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter. The name identifies
// the wrapped exporter in log output.
func NewLoggingExporter(next pagesift.Exporter, name string, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, name: name, logger: logger}
}

// Export delegates to the wrapped exporter and logs the operation.
func (e *LoggingExporter) Export(ctx context.Context, pages []*pagesift.CleanedPage) (err error) {
	defer func(begin time.Time) {
		e.logger.Info("export",
			"exporter", e.name,
			"pages", len(pages),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Export(ctx, pages)
}
