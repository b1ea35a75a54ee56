package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagesift"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ pagesift.PageService = (*PageService)(nil)

// PageService implements pagesift.PageService using SQLite.
type PageService struct {
	db *DB
}

// NewPageService creates a new PageService.
func NewPageService(db *DB) *PageService {
	return &PageService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreatePage stores a new page.
func (s *PageService) CreatePage(ctx context.Context, page *pagesift.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	page.ID = uuid.New().String()
	page.CreatedAt = time.Now().UTC()

	internalLinks, err := marshalLinks(page.InternalLinks)
	if err != nil {
		return err
	}
	externalLinks, err := marshalLinks(page.ExternalLinks)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO pages (id, url, domain, search_type, text_content, html_content, internal_links, external_links, depth, latency_ms, complete, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.URL, page.Domain, page.SearchType, page.TextContent, page.HTMLContent,
		internalLinks, externalLinks, page.Depth, page.LatencyMS, boolToInt(page.Complete),
		hashContent(page.TextContent), page.CreatedAt.Format(time.RFC3339))

	return err
}

// marshalLinks stores a link list as a JSON array, never as SQL NULL.
func marshalLinks(links []string) (string, error) {
	if links == nil {
		links = []string{}
	}
	data, err := json.Marshal(links)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FindPageByID retrieves a page by ID.
func (s *PageService) FindPageByID(ctx context.Context, id string) (*pagesift.Page, error) {
	var page pagesift.Page
	var complete int
	var internalLinks, externalLinks, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, domain, search_type, text_content, html_content, internal_links, external_links, depth, latency_ms, complete, created_at
		FROM pages
		WHERE id = ?
	`, id).Scan(&page.ID, &page.URL, &page.Domain, &page.SearchType, &page.TextContent,
		&page.HTMLContent, &internalLinks, &externalLinks, &page.Depth, &page.LatencyMS,
		&complete, &createdAt)

	if err == sql.ErrNoRows {
		return nil, pagesift.Errorf(pagesift.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	if err := scanPageExtras(&page, internalLinks, externalLinks, complete, createdAt); err != nil {
		return nil, err
	}

	return &page, nil
}

// scanPageExtras fills the fields that need decoding after a row scan.
func scanPageExtras(page *pagesift.Page, internalLinks, externalLinks string, complete int, createdAt string) error {
	if err := json.Unmarshal([]byte(internalLinks), &page.InternalLinks); err != nil {
		return fmt.Errorf("failed to parse internal_links: %w", err)
	}
	if err := json.Unmarshal([]byte(externalLinks), &page.ExternalLinks); err != nil {
		return fmt.Errorf("failed to parse external_links: %w", err)
	}
	page.Complete = complete != 0

	var err error
	page.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return fmt.Errorf("failed to parse created_at: %w", err)
	}
	return nil
}

// FindPages retrieves pages matching the filter, newest first.
func (s *PageService) FindPages(ctx context.Context, filter pagesift.PageFilter) ([]*pagesift.Page, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, domain, search_type, text_content, html_content, internal_links, external_links, depth, latency_ms, complete, created_at FROM pages WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}
	if filter.SearchType != nil {
		query.WriteString(" AND search_type = ?")
		args = append(args, *filter.SearchType)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*pagesift.Page
	for rows.Next() {
		var page pagesift.Page
		var complete int
		var internalLinks, externalLinks, createdAt string

		if err := rows.Scan(&page.ID, &page.URL, &page.Domain, &page.SearchType, &page.TextContent,
			&page.HTMLContent, &internalLinks, &externalLinks, &page.Depth, &page.LatencyMS,
			&complete, &createdAt); err != nil {
			return nil, err
		}

		if err := scanPageExtras(&page, internalLinks, externalLinks, complete, createdAt); err != nil {
			return nil, err
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeletePage permanently removes a page.
func (s *PageService) DeletePage(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pagesift.Errorf(pagesift.ENOTFOUND, "page not found")
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
