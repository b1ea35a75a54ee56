package pagesift

import "strings"

// TrimBoilerplatePrefix removes everything up to and including the first
// occurrence of delimiter from each page's text content. Pages that do not
// contain the delimiter are returned unchanged. Useful when a site's header
// always ends with a known marker (e.g. "LP LOGIN").
//
// The input pages are not mutated; trimmed copies are returned.
func TrimBoilerplatePrefix(pages []*Page, delimiter string) []*Page {
	return trimEach(pages, func(text string) string {
		if _, after, ok := strings.Cut(text, delimiter); ok {
			return strings.TrimLeft(after, " \t\r\n")
		}
		return text
	})
}

// TrimBoilerplateSuffix removes everything from the last occurrence of
// delimiter to the end of each page's text content. Pages that do not
// contain the delimiter are returned unchanged.
func TrimBoilerplateSuffix(pages []*Page, delimiter string) []*Page {
	return trimEach(pages, func(text string) string {
		if i := strings.LastIndex(text, delimiter); i >= 0 {
			return strings.TrimRight(text[:i], " \t\r\n")
		}
		return text
	})
}

func trimEach(pages []*Page, trim func(string) string) []*Page {
	out := make([]*Page, len(pages))
	for i, p := range pages {
		cp := *p
		cp.TextContent = trim(p.TextContent)
		out[i] = &cp
	}
	return out
}
