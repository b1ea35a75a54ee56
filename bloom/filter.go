// Package bloom provides URL deduplication for crawl result sets.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// falsePositiveRate trades a tiny chance of dropping a unique URL for a
// compact filter; crawl result sets tolerate that.
const falsePositiveRate = 0.001

// URLFilter tracks URLs already seen while assembling crawl results.
type URLFilter struct {
	f *bloom.BloomFilter
}

// NewURLFilter creates a filter sized for n expected URLs.
func NewURLFilter(n uint) *URLFilter {
	return &URLFilter{
		f: bloom.NewWithEstimates(n, falsePositiveRate),
	}
}

// Add records a URL as seen.
func (f *URLFilter) Add(url string) {
	f.f.AddString(url)
}

// Seen returns true if the URL might have been added already.
// False positives are possible; false negatives are not.
func (f *URLFilter) Seen(url string) bool {
	return f.f.TestString(url)
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *URLFilter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
