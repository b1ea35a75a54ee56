package goquery

import (
	"math"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesift"
)

// Ensure StatsService implements pagesift.StatsService at compile time.
var _ pagesift.StatsService = (*StatsService)(nil)

// StatsService computes text statistics for pages, including link density,
// which requires parsing the page HTML for anchor text.
type StatsService struct{}

// NewStatsService creates a new StatsService.
func NewStatsService() *StatsService {
	return &StatsService{}
}

// Compute returns word count, sentence count, unique word ratio, and link
// density for the page. Link density is the fraction of the page's words
// that sit inside anchor tags; pages without HTML content get zero.
func (s *StatsService) Compute(page *pagesift.Page) (*pagesift.TextStats, error) {
	stats := pagesift.ComputeTextStats(page)

	if page.HTMLContent != "" && stats.WordCount > 0 {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTMLContent))
		if err != nil {
			return nil, pagesift.Errorf(pagesift.EINVALID, "parse markup: %v", err)
		}

		var anchorWords int
		doc.Find("a").Each(func(_ int, sel *goquery.Selection) {
			anchorWords += pagesift.CountWords(sel.Text())
		})
		stats.LinkDensity = math.Round(float64(anchorWords)/float64(stats.WordCount)*1000) / 1000
	}

	return &stats, nil
}
