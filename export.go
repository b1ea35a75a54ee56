package pagesift

import "context"

// Exporter persists a cleaned batch. Implementations own their format and
// destination (CSV file, JSON file, SQLite database); the cleaning core
// performs no I/O itself.
type Exporter interface {
	Export(ctx context.Context, pages []*CleanedPage) error
}
