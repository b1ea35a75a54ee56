// Package fs provides file-based exporters for cleaned page batches.
package fs

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/pagesift"
)

// csvHeader is the column layout for CSV exports.
var csvHeader = []string{
	"url", "domain", "search_type", "content",
	"removed_count", "removed_blocks", "error", "exported_at",
}

// Ensure CSVExporter implements pagesift.Exporter at compile time.
var _ pagesift.Exporter = (*CSVExporter)(nil)

// CSVExporter writes cleaned pages to a CSV file, one row per page.
// Removed canonical texts are joined with newlines inside a single cell.
type CSVExporter struct {
	path   string
	append bool
}

// CSVOption configures a CSVExporter.
type CSVOption func(*CSVExporter)

// WithCSVAppend appends rows to an existing file instead of overwriting.
// The header is only written when the file is new or empty.
func WithCSVAppend() CSVOption {
	return func(e *CSVExporter) {
		e.append = true
	}
}

// NewCSVExporter creates an exporter writing to the given path.
// Parent directories are created on export.
func NewCSVExporter(path string, opts ...CSVOption) *CSVExporter {
	e := &CSVExporter{path: path}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export writes the batch to the CSV file.
func (e *CSVExporter) Export(ctx context.Context, pages []*pagesift.CleanedPage) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(e.path), 0755); err != nil {
		return err
	}

	flags := os.O_CREATE | os.O_WRONLY
	if e.append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(e.path, flags, 0644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	writeHeader := !e.append
	if e.append {
		info, err := f.Stat()
		if err != nil {
			return err
		}
		writeHeader = info.Size() == 0
	}

	w := csv.NewWriter(f)
	if writeHeader {
		if err := w.Write(csvHeader); err != nil {
			return err
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, p := range pages {
		row := []string{
			p.Page.URL,
			p.Page.Domain,
			p.Page.SearchType,
			p.Content,
			strconv.Itoa(p.RemovedCount),
			strings.Join(p.Removed, "\n"),
			p.Err,
			now,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
