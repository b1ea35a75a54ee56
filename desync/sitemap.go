package desync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagesift"
)

// maxSitemapDepth guards against sitemap indexes that reference each other.
const maxSitemapDepth = 5

// Ensure SitemapService implements pagesift.SitemapService.
var _ pagesift.SitemapService = (*SitemapService)(nil)

// SitemapService discovers URLs from a site's sitemap, for building bulk
// search target lists without a full crawl.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs fetches and parses the site's sitemap.xml, following
// sitemap indexes. When baseURL has a non-root path (e.g.
// https://example.com/team/), only URLs under that prefix are returned.
// Returns an empty slice (not nil) when no sitemap is found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid base URL: %v", err)
	}

	pathPrefix := base.Path
	if pathPrefix == "/" {
		pathPrefix = ""
	}

	sitemapURL := base.Scheme + "://" + base.Host + "/sitemap.xml"

	seen := make(map[string]bool)
	urls, err := s.processSitemap(ctx, sitemapURL, seen, 0)
	if err != nil {
		return nil, err
	}

	out := []string{}
	dedup := make(map[string]bool)
	for _, u := range urls {
		if dedup[u] {
			continue
		}
		dedup[u] = true
		if pathPrefix != "" && !matchesPathPrefix(u, pathPrefix) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// processSitemap fetches one sitemap document and returns its page URLs,
// recursing into sitemap indexes.
func (s *SitemapService) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool, depth int) ([]string, error) {
	if depth >= maxSitemapDepth || seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, sitemapURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("parse sitemap %s: %w", sitemapURL, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, nil
	}

	switch root.Tag {
	case "sitemapindex":
		var urls []string
		for _, child := range locValues(root, "sitemap") {
			nested, err := s.processSitemap(ctx, child, seen, depth+1)
			if err != nil {
				return nil, err
			}
			urls = append(urls, nested...)
		}
		return urls, nil
	case "urlset":
		return locValues(root, "url"), nil
	default:
		return nil, nil
	}
}

// locValues collects the trimmed <loc> text of each named child element.
func locValues(root *etree.Element, childTag string) []string {
	var values []string
	for _, el := range root.SelectElements(childTag) {
		if loc := el.SelectElement("loc"); loc != nil {
			if text := strings.TrimSpace(loc.Text()); text != "" {
				values = append(values, text)
			}
		}
	}
	return values
}

// matchesPathPrefix checks if a URL's path starts with the given prefix,
// respecting path boundaries: /team matches /team/ and /team/a but not
// /teammates.
func matchesPathPrefix(rawURL, prefix string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := parsed.Path
	trimmed := strings.TrimSuffix(prefix, "/")
	return path == trimmed || strings.HasPrefix(path, trimmed+"/")
}
