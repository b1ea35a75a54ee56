package mock

import (
	"context"

	"github.com/fwojciec/pagesift"
)

var _ pagesift.PageService = (*PageService)(nil)

// PageService is a mock implementation of pagesift.PageService.
type PageService struct {
	CreatePageFn   func(ctx context.Context, page *pagesift.Page) error
	FindPageByIDFn func(ctx context.Context, id string) (*pagesift.Page, error)
	FindPagesFn    func(ctx context.Context, filter pagesift.PageFilter) ([]*pagesift.Page, error)
	DeletePageFn   func(ctx context.Context, id string) error
}

func (s *PageService) CreatePage(ctx context.Context, page *pagesift.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageService) FindPageByID(ctx context.Context, id string) (*pagesift.Page, error) {
	return s.FindPageByIDFn(ctx, id)
}

func (s *PageService) FindPages(ctx context.Context, filter pagesift.PageFilter) ([]*pagesift.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) DeletePage(ctx context.Context, id string) error {
	return s.DeletePageFn(ctx, id)
}
