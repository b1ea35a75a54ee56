package mock

import (
	"context"

	"github.com/fwojciec/pagesift"
)

var _ pagesift.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of pagesift.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, pages []*pagesift.CleanedPage) error
}

func (e *Exporter) Export(ctx context.Context, pages []*pagesift.CleanedPage) error {
	return e.ExportFn(ctx, pages)
}
