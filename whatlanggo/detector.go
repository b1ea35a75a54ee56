// Package whatlanggo detects page languages from trigram profiles.
package whatlanggo

import (
	"github.com/RadhiFadlillah/whatlanggo"
	"github.com/fwojciec/pagesift"
)

// Ensure Detector implements pagesift.LanguageDetector.
var _ pagesift.LanguageDetector = (*Detector)(nil)

// Detector identifies the dominant language of text content.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the ISO 639-3 code of the text's dominant language, or
// LanguageUnknown when detection is not reliable.
func (d *Detector) Detect(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return pagesift.LanguageUnknown
	}
	return whatlanggo.LangToString(info.Lang)
}
