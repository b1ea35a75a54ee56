package pagesift

import "net/url"

// LinkEdge is one directed hyperlink from a crawled page to a target URL.
type LinkEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// LinkGraphOptions controls which edges ExtractLinkGraph keeps.
type LinkGraphOptions struct {
	// IncludeExternal keeps edges whose target is on another domain.
	IncludeExternal bool

	// CrawledOnly keeps only edges whose target is itself a page in the
	// batch, producing a graph over crawled pages alone.
	CrawledOnly bool
}

// ExtractLinkGraph builds directed (source, target) edges from the pages'
// discovered link lists, in page then link order. Empty link targets are
// skipped.
func ExtractLinkGraph(pages []*Page, opts LinkGraphOptions) []LinkEdge {
	crawled := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		crawled[p.URL] = struct{}{}
	}

	edges := []LinkEdge{}
	for _, p := range pages {
		sourceHost := hostOf(p.URL)

		links := p.InternalLinks
		if opts.IncludeExternal {
			links = make([]string, 0, len(p.InternalLinks)+len(p.ExternalLinks))
			links = append(links, p.InternalLinks...)
			links = append(links, p.ExternalLinks...)
		}

		for _, link := range links {
			if link == "" {
				continue
			}
			if !opts.IncludeExternal {
				// Link lists from the source are not always clean;
				// drop cross-domain targets regardless of which list
				// they came from.
				if h := hostOf(link); h != "" && h != sourceHost {
					continue
				}
			}
			if opts.CrawledOnly {
				if _, ok := crawled[link]; !ok {
					continue
				}
			}
			edges = append(edges, LinkEdge{Source: p.URL, Target: link})
		}
	}
	return edges
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
