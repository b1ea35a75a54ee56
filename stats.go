package pagesift

import (
	"math"
	"regexp"
	"strings"
)

// TextStats holds basic statistics about a page's visible text.
// Useful for filtering low-content or spam pages before NLP processing.
type TextStats struct {
	URL             string  `json:"url"`
	WordCount       int     `json:"wordCount"`
	SentenceCount   int     `json:"sentenceCount"`
	UniqueWordRatio float64 `json:"uniqueWordRatio"`
	LinkDensity     float64 `json:"linkDensity"`
}

// StatsService computes text statistics for a page. Link density requires
// HTML parsing, so implementations live next to an HTML library.
type StatsService interface {
	Compute(page *Page) (*TextStats, error)
}

var (
	wordRe     = regexp.MustCompile(`\b\w+\b`)
	sentenceRe = regexp.MustCompile(`[.!?]`)
)

// CountWords returns the number of word tokens in text.
func CountWords(text string) int {
	return len(wordRe.FindAllString(text, -1))
}

// ComputeTextStats computes the text-only statistics for a page.
// LinkDensity is left at zero; use a StatsService for the full set.
func ComputeTextStats(page *Page) TextStats {
	text := page.TextContent
	words := wordRe.FindAllString(strings.ToLower(text), -1)

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	var uniqueRatio float64
	if len(words) > 0 {
		uniqueRatio = round3(float64(len(unique)) / float64(len(words)))
	}

	return TextStats{
		URL:             page.URL,
		WordCount:       len(words),
		SentenceCount:   len(sentenceRe.FindAllString(text, -1)),
		UniqueWordRatio: uniqueRatio,
	}
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
