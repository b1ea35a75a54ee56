package clean

import "github.com/fwojciec/pagesift"

// frequencyIndex counts, per canonical block text, how many distinct pages
// contain it. It is scoped to a single Clean call and never persisted.
type frequencyIndex struct {
	pages map[string]int
}

func newFrequencyIndex() *frequencyIndex {
	return &frequencyIndex{pages: make(map[string]int)}
}

// addPage records one page's blocks. A page contributes at most once per
// distinct canonical text, so internal repetition (e.g. a repeated
// "Read more" link) cannot inflate cross-page frequency.
func (x *frequencyIndex) addPage(blocks []pagesift.Block) {
	seen := make(map[string]struct{}, len(blocks))
	for _, b := range blocks {
		if _, ok := seen[b.Text]; ok {
			continue
		}
		seen[b.Text] = struct{}{}
		x.pages[b.Text]++
	}
}

// frequency returns the fraction of the batch's contributing pages that
// contain the canonical text.
func (x *frequencyIndex) frequency(text string, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(x.pages[text]) / float64(total)
}
