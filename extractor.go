package pagesift

// ExtractResult holds the main content extracted from a single HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with per-page
	// boilerplate (nav, footer, sidebar, ads) removed.
	ContentHTML string
}

// Extractor extracts main content from a single HTML page. Unlike Cleaner,
// it needs no batch context: it uses structural heuristics rather than
// cross-page frequency.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
