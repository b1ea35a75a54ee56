package mock

import "github.com/fwojciec/pagesift"

var _ pagesift.StatsService = (*StatsService)(nil)

// StatsService is a mock implementation of pagesift.StatsService.
type StatsService struct {
	ComputeFn func(page *pagesift.Page) (*pagesift.TextStats, error)
}

func (s *StatsService) Compute(page *pagesift.Page) (*pagesift.TextStats, error) {
	return s.ComputeFn(page)
}
