package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/pagesift/bloom"
	"github.com/stretchr/testify/assert"
)

func TestURLFilter(t *testing.T) {
	t.Parallel()

	f := bloom.NewURLFilter(100)

	assert.False(t, f.Seen("https://example.com/a"))

	f.Add("https://example.com/a")
	assert.True(t, f.Seen("https://example.com/a"))
	assert.False(t, f.Seen("https://example.com/b"))
}

func TestURLFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewURLFilter(1000)
	for i := 0; i < 50; i++ {
		f.Add(fmt.Sprintf("https://example.com/page-%d", i))
	}

	assert.InDelta(t, 50, float64(f.EstimatedCount()), 5)
}
