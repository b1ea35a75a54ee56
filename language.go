package pagesift

import "strings"

// LanguageUnknown marks pages whose language could not be determined.
const LanguageUnknown = "unknown"

// minLanguageWords is the smallest sample detection is attempted on;
// shorter texts produce noise rather than a signal.
const minLanguageWords = 10

// LanguageDetector identifies the language of a text sample, returning a
// language code or LanguageUnknown.
type LanguageDetector interface {
	Detect(text string) string
}

// PageLanguage pairs a page URL with its detected language code.
type PageLanguage struct {
	URL      string `json:"url"`
	Language string `json:"language"`
}

// DetectPageLanguages detects the language of each page's text content.
// Pages with fewer than ten words are reported as LanguageUnknown without
// consulting the detector.
func DetectPageLanguages(pages []*Page, detector LanguageDetector) []PageLanguage {
	out := make([]PageLanguage, 0, len(pages))
	for _, p := range pages {
		text := strings.TrimSpace(p.TextContent)
		language := LanguageUnknown
		if CountWords(text) >= minLanguageWords {
			language = detector.Detect(text)
		}
		out = append(out, PageLanguage{URL: p.URL, Language: language})
	}
	return out
}
