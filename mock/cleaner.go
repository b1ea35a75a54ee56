package mock

import "github.com/fwojciec/pagesift"

var _ pagesift.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of pagesift.Cleaner.
type Cleaner struct {
	CleanFn func(batch []*pagesift.Page) (*pagesift.BatchResult, error)
}

func (c *Cleaner) Clean(batch []*pagesift.Page) (*pagesift.BatchResult, error) {
	return c.CleanFn(batch)
}
