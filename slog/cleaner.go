package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagesift"
)

// Ensure LoggingCleaner implements pagesift.Cleaner.
var _ pagesift.Cleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a Cleaner with logging of batch outcomes.
type LoggingCleaner struct {
	next   pagesift.Cleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next pagesift.Cleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs the operation.
func (c *LoggingCleaner) Clean(batch []*pagesift.Page) (result *pagesift.BatchResult, err error) {
	defer func(begin time.Time) {
		removed := 0
		skipped := false
		if result != nil {
			removed = result.TotalRemoved()
			skipped = result.Skipped
		}
		c.logger.Info("batch clean",
			"pages", len(batch),
			"removed", removed,
			"skipped", skipped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clean(batch)
}
