package mock

import "github.com/fwojciec/pagesift"

var _ pagesift.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of pagesift.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(text string) string
}

func (d *LanguageDetector) Detect(text string) string {
	return d.DetectFn(text)
}
