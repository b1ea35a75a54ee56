// Package mock provides function-field mock implementations of the
// pagesift domain interfaces for testing.
package mock

import "github.com/fwojciec/pagesift"

var _ pagesift.Blockizer = (*Blockizer)(nil)

// Blockizer is a mock implementation of pagesift.Blockizer.
type Blockizer struct {
	BlockizeFn func(content string) ([]pagesift.Block, error)
}

func (b *Blockizer) Blockize(content string) ([]pagesift.Block, error) {
	return b.BlockizeFn(content)
}
