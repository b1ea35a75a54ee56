package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/pagesift"
)

// Ensure JSONExporter implements pagesift.Exporter at compile time.
var _ pagesift.Exporter = (*JSONExporter)(nil)

// JSONExporter writes cleaned pages to a JSON file as one document with
// the batch, removal audit included.
type JSONExporter struct {
	path string
}

// NewJSONExporter creates an exporter writing to the given path.
func NewJSONExporter(path string) *JSONExporter {
	return &JSONExporter{path: path}
}

// jsonExport is the on-disk layout.
type jsonExport struct {
	ExportedAt time.Time               `json:"exportedAt"`
	Pages      []*pagesift.CleanedPage `json:"pages"`
}

// Export writes the batch to the JSON file, overwriting any existing file.
func (e *JSONExporter) Export(ctx context.Context, pages []*pagesift.CleanedPage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(e.path), 0755); err != nil {
		return err
	}

	doc := jsonExport{
		ExportedAt: time.Now().UTC(),
		Pages:      pages,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(e.path, data, 0644)
}
