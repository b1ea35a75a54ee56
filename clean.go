package pagesift

// Mode selects the unit of comparison for boilerplate detection.
type Mode string

// Cleaning modes.
const (
	// ModeText splits page text content into lines.
	ModeText Mode = "text"

	// ModeMarkup splits page HTML content into leaf text-bearing elements.
	ModeMarkup Mode = "markup"
)

// DefaultThreshold is the default boilerplate frequency cutoff.
// A block seen on at least half the pages of a batch is considered
// boilerplate, which works well for navbars and footers.
const DefaultThreshold = 0.5

// DefaultMinBatchSize is the smallest batch for which classification is
// meaningful. With a single page every block trivially appears on 100%
// of pages, so nothing can be distinguished from content.
const DefaultMinBatchSize = 2

// Config configures a boilerplate cleaning run.
type Config struct {
	// Mode selects line-based (text) or element-based (markup) comparison.
	Mode Mode `json:"mode"`

	// Threshold is the fraction of pages a block must appear on to be
	// classified as boilerplate. Must be in [0, 1].
	Threshold float64 `json:"threshold"`

	// MinBatchSize is the smallest batch the cleaner will classify.
	// Batches below it are returned unchanged. Must be >= 2.
	MinBatchSize int `json:"minBatchSize"`
}

// DefaultConfig returns a Config with the documented defaults and the
// given mode.
func DefaultConfig(mode Mode) Config {
	return Config{
		Mode:         mode,
		Threshold:    DefaultThreshold,
		MinBatchSize: DefaultMinBatchSize,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeText, ModeMarkup:
	default:
		return Errorf(EINVALID, "unknown mode %q", string(c.Mode))
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return Errorf(EINVALID, "threshold must be in [0, 1], got %g", c.Threshold)
	}
	if c.MinBatchSize < 2 {
		return Errorf(EINVALID, "min batch size must be >= 2, got %d", c.MinBatchSize)
	}
	return nil
}

// Block is one unit of comparison produced by blockization: a line in text
// mode, a leaf text-bearing element in markup mode.
type Block struct {
	// Text is the canonical (whitespace-normalized) form used as the
	// frequency counting key. Comparison is case-sensitive.
	Text string

	// Position is the block's index within its page's block sequence.
	Position int
}

// Blockizer converts raw page content into an ordered block sequence.
// Implementations must be deterministic and pure: the same content always
// yields the same blocks, independent of batch context.
type Blockizer interface {
	Blockize(content string) ([]Block, error)
}

// CleanedPage is the outcome of cleaning a single page.
type CleanedPage struct {
	// Page is the original input page, unmodified.
	Page *Page `json:"page"`

	// Content is the cleaned content: surviving blocks joined in their
	// original relative order.
	Content string `json:"content"`

	// Removed lists the canonical texts removed from this page, in the
	// order they first appeared, for audit and debugging.
	Removed []string `json:"removed"`

	// RemovedCount is the number of block instances dropped.
	RemovedCount int `json:"removedCount"`

	// Err holds a per-page error annotation (e.g. unparseable markup).
	// Pages with a non-empty Err did not contribute to frequency counts
	// and their Content equals the original input.
	Err string `json:"err,omitempty"`
}

// BatchResult is the outcome of cleaning a batch of pages.
type BatchResult struct {
	// Pages holds one cleaned page per input page, in input order.
	Pages []*CleanedPage `json:"pages"`

	// Skipped is true when the batch was below the configured minimum
	// size and no removal was attempted.
	Skipped bool `json:"skipped"`

	// SkipReason explains why the batch was skipped, empty otherwise.
	SkipReason string `json:"skipReason,omitempty"`
}

// TotalRemoved returns the number of block instances removed across the batch.
func (r *BatchResult) TotalRemoved() int {
	var n int
	for _, p := range r.Pages {
		n += p.RemovedCount
	}
	return n
}

// Cleaner removes cross-page boilerplate from a batch of pages.
type Cleaner interface {
	// Clean classifies and removes boilerplate blocks from the batch.
	// It is a pure batch transform: no I/O, no state retained between
	// calls, safe to call concurrently with distinct batches.
	Clean(batch []*Page) (*BatchResult, error)
}
