// Package clean implements cross-page boilerplate removal.
// It coordinates blockization, batch-scoped frequency counting, and
// classification, and offers a Pipeline that wires a page source, the
// cleaner, and exporters together.
package clean

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagesift"
)

// BlockSeparator joins surviving blocks when reconstructing cleaned content.
// Matches the output format of the exporters' upstream consumers.
const BlockSeparator = "\n\n"

// Ensure Cleaner implements pagesift.Cleaner at compile time.
var _ pagesift.Cleaner = (*Cleaner)(nil)

// Cleaner removes content blocks that repeat across a high fraction of the
// pages in a batch. It holds no state between calls: the frequency index is
// built fresh per batch and discarded, so unrelated crawl runs cannot
// contaminate each other.
type Cleaner struct {
	cfg       pagesift.Config
	blockizer pagesift.Blockizer
}

// NewCleaner creates a Cleaner for the given config. The blockizer is
// required in markup mode; in text mode a nil blockizer defaults to the
// built-in line blockizer.
func NewCleaner(cfg pagesift.Config, blockizer pagesift.Blockizer) (*Cleaner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if blockizer == nil {
		if cfg.Mode == pagesift.ModeMarkup {
			return nil, pagesift.Errorf(pagesift.EINVALID, "markup mode requires a blockizer")
		}
		blockizer = TextBlockizer{}
	}
	return &Cleaner{cfg: cfg, blockizer: blockizer}, nil
}

// Clean classifies and removes boilerplate blocks from the batch.
//
// A block's canonical text is boilerplate when it appears on at least
// Threshold of the batch's parseable pages. Batches below MinBatchSize are
// returned unchanged with Skipped set: with too few pages, frequency cannot
// distinguish boilerplate from content. Pages whose content fails to
// blockize are excluded from frequency counting and returned unchanged
// with a per-page error annotation.
func (c *Cleaner) Clean(batch []*pagesift.Page) (*pagesift.BatchResult, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	result := &pagesift.BatchResult{
		Pages: make([]*pagesift.CleanedPage, len(batch)),
	}

	if len(batch) < c.cfg.MinBatchSize {
		c.passThrough(result, batch, nil)
		result.Skipped = true
		result.SkipReason = fmt.Sprintf("batch size %d below minimum %d; no removal performed", len(batch), c.cfg.MinBatchSize)
		return result, nil
	}

	// Blockize every page up front: frequency is a batch-relative
	// statistic, so no classification can happen until the whole batch
	// has been tokenized.
	blocks := make([][]pagesift.Block, len(batch))
	errs := make([]error, len(batch))
	index := newFrequencyIndex()
	contributing := 0

	for i, page := range batch {
		bs, err := c.blockizer.Blockize(page.Content(c.cfg.Mode))
		if err != nil {
			errs[i] = err
			continue
		}
		blocks[i] = bs
		index.addPage(bs)
		contributing++
	}

	// Too few parseable pages leaves frequency just as meaningless as a
	// too-small batch.
	if contributing < c.cfg.MinBatchSize {
		c.passThrough(result, batch, errs)
		result.Skipped = true
		result.SkipReason = fmt.Sprintf("only %d of %d pages parseable, below minimum %d; no removal performed", contributing, len(batch), c.cfg.MinBatchSize)
		return result, nil
	}

	for i, page := range batch {
		if errs[i] != nil {
			result.Pages[i] = unchanged(page, c.cfg.Mode, errs[i])
			continue
		}
		result.Pages[i] = c.reconstruct(page, blocks[i], index, contributing)
	}

	return result, nil
}

// reconstruct filters one page's blocks against the index and rebuilds its
// content from the survivors, preserving their relative order.
func (c *Cleaner) reconstruct(page *pagesift.Page, blocks []pagesift.Block, index *frequencyIndex, total int) *pagesift.CleanedPage {
	kept := make([]string, 0, len(blocks))
	removed := []string{}
	removedSeen := make(map[string]struct{})
	removedCount := 0

	for _, b := range blocks {
		if index.frequency(b.Text, total) >= c.cfg.Threshold {
			removedCount++
			if _, ok := removedSeen[b.Text]; !ok {
				removedSeen[b.Text] = struct{}{}
				removed = append(removed, b.Text)
			}
			continue
		}
		kept = append(kept, b.Text)
	}

	return &pagesift.CleanedPage{
		Page:         page,
		Content:      strings.Join(kept, BlockSeparator),
		Removed:      removed,
		RemovedCount: removedCount,
	}
}

// passThrough fills the result with unchanged pages, carrying over any
// per-page blockization errors.
func (c *Cleaner) passThrough(result *pagesift.BatchResult, batch []*pagesift.Page, errs []error) {
	for i, page := range batch {
		var err error
		if errs != nil {
			err = errs[i]
		}
		result.Pages[i] = unchanged(page, c.cfg.Mode, err)
	}
}

func unchanged(page *pagesift.Page, mode pagesift.Mode, err error) *pagesift.CleanedPage {
	cp := &pagesift.CleanedPage{
		Page:    page,
		Content: page.Content(mode),
		Removed: []string{},
	}
	if err != nil {
		cp.Err = err.Error()
	}
	return cp
}
