package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fwojciec/pagesift"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagesift.Exporter = (*Exporter)(nil)

// Exporter persists cleaned batches into the cleaned_pages table.
// The removed-block audit list is stored as a JSON array.
type Exporter struct {
	db *DB
}

// NewExporter creates a new Exporter.
func NewExporter(db *DB) *Exporter {
	return &Exporter{db: db}
}

// Export inserts one row per cleaned page.
func (e *Exporter) Export(ctx context.Context, pages []*pagesift.CleanedPage) error {
	now := time.Now().UTC().Format(time.RFC3339)

	for _, p := range pages {
		removed, err := json.Marshal(p.Removed)
		if err != nil {
			return err
		}

		_, err = e.db.ExecContext(ctx, `
			INSERT INTO cleaned_pages (id, url, domain, search_type, content, removed_count, removed_blocks, error, content_hash, exported_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), p.Page.URL, p.Page.Domain, p.Page.SearchType, p.Content,
			p.RemovedCount, string(removed), p.Err, hashContent(p.Content), now)
		if err != nil {
			return err
		}
	}

	return nil
}
