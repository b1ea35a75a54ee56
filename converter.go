package pagesift

// Converter transforms HTML content into Markdown.
// Used when exporting cleaned markup-mode content in a readable format.
type Converter interface {
	Convert(html string) (string, error)
}
