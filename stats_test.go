package pagesift_test

import (
	"testing"

	"github.com/fwojciec/pagesift"
	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 4, pagesift.CountWords("the quick brown fox"))
	assert.Equal(t, 0, pagesift.CountWords(""))
	assert.Equal(t, 2, pagesift.CountWords("  spaced   out  "))
}

func TestComputeTextStats(t *testing.T) {
	t.Parallel()

	t.Run("counts words and sentences", func(t *testing.T) {
		t.Parallel()

		page := &pagesift.Page{
			URL:         "https://example.com",
			TextContent: "The cat sat. The cat ran! Did the cat nap?",
		}

		stats := pagesift.ComputeTextStats(page)

		assert.Equal(t, "https://example.com", stats.URL)
		assert.Equal(t, 10, stats.WordCount)
		assert.Equal(t, 3, stats.SentenceCount)
		// 6 unique of 10 lowercased words: the, cat, sat, ran, did, nap
		assert.Equal(t, 0.6, stats.UniqueWordRatio)
		assert.Zero(t, stats.LinkDensity)
	})

	t.Run("unique ratio is case-insensitive", func(t *testing.T) {
		t.Parallel()

		page := &pagesift.Page{TextContent: "Word word WORD"}

		stats := pagesift.ComputeTextStats(page)
		assert.Equal(t, 3, stats.WordCount)
		assert.Equal(t, 0.333, stats.UniqueWordRatio)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()

		stats := pagesift.ComputeTextStats(&pagesift.Page{})
		assert.Zero(t, stats.WordCount)
		assert.Zero(t, stats.SentenceCount)
		assert.Zero(t, stats.UniqueWordRatio)
	})
}
