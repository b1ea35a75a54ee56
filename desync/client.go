// Package desync provides an HTTP client for the desync-search API, the
// external crawl source that owns fetching, retries, and anti-bot behavior.
// The client submits bulk searches and crawls and collects the resulting
// pages; it performs no scraping of its own.
package desync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/bloom"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.desync.ai/v1"

// DefaultWaitTime bounds how long collection polls for bulk results.
const DefaultWaitTime = 30 * time.Second

// DefaultPollRate limits result polling to one request every two seconds,
// matching the API's recommended poll interval.
const DefaultPollRate = 0.5

// DefaultCompletionFraction is the fraction of targets that must complete
// before collection returns early.
const DefaultCompletionFraction = 0.975

// MaxBulkTargets is the API's per-request target limit.
const MaxBulkTargets = 1000

// Ensure Client implements pagesift.PageSource at compile time.
var _ pagesift.PageSource = (*Client)(nil)

// Client calls the desync-search API.
type Client struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
	waitTime time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, mainly for testing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithWaitTime bounds how long bulk collection polls for results.
func WithWaitTime(d time.Duration) Option {
	return func(c *Client) {
		c.waitTime = d
	}
}

// WithPollRate sets the polling rate limit in requests per second.
func WithPollRate(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:  DefaultBaseURL,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 30 * time.Second},
		limiter:  rate.NewLimiter(rate.Limit(DefaultPollRate), 1),
		waitTime: DefaultWaitTime,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// bulkResponse is the API's answer to a bulk search submission.
type bulkResponse struct {
	Message      string `json:"message"`
	BulkSearchID string `json:"bulk_search_id"`
	TotalLinks   int    `json:"total_links"`
}

// resultsResponse is one page of collected results.
type resultsResponse struct {
	Pages         []apiPage `json:"pages"`
	CompleteCount int       `json:"complete_count"`
	TotalCount    int       `json:"total_count"`
}

// apiPage is the wire format for one crawled page.
type apiPage struct {
	ID            string   `json:"id"`
	URL           string   `json:"url"`
	Domain        string   `json:"domain"`
	SearchType    string   `json:"search_type"`
	TextContent   string   `json:"text_content"`
	HTMLContent   string   `json:"html_content"`
	InternalLinks []string `json:"internal_links"`
	ExternalLinks []string `json:"external_links"`
	Depth         int      `json:"depth"`
	LatencyMS     float64  `json:"latency_ms"`
	Complete      bool     `json:"complete"`
}

func (p apiPage) toPage() *pagesift.Page {
	return &pagesift.Page{
		ID:            p.ID,
		URL:           p.URL,
		Domain:        p.Domain,
		SearchType:    p.SearchType,
		TextContent:   p.TextContent,
		HTMLContent:   p.HTMLContent,
		InternalLinks: p.InternalLinks,
		ExternalLinks: p.ExternalLinks,
		Depth:         p.Depth,
		LatencyMS:     p.LatencyMS,
		Complete:      p.Complete,
		CreatedAt:     time.Now().UTC(),
	}
}

// BulkSearch submits up to MaxBulkTargets URLs as one server-side batch and
// polls for results until the completion fraction is reached or the wait
// window expires. Pages collected so far are returned either way.
func (c *Client) BulkSearch(ctx context.Context, targets []string, opts pagesift.BulkOptions) ([]*pagesift.Page, error) {
	if len(targets) == 0 || len(targets) > MaxBulkTargets {
		return nil, pagesift.Errorf(pagesift.EINVALID, "target list must contain between 1 and %d URLs, got %d", MaxBulkTargets, len(targets))
	}

	var submitted bulkResponse
	err := c.post(ctx, "/bulk", map[string]any{
		"target_list":  targets,
		"extract_html": opts.ExtractHTML,
	}, &submitted)
	if err != nil {
		return nil, err
	}
	if submitted.BulkSearchID == "" {
		return nil, pagesift.Errorf(pagesift.EUNAVAILABLE, "bulk search not accepted: %s", submitted.Message)
	}

	fraction := opts.CompletionFraction
	if fraction <= 0 {
		fraction = DefaultCompletionFraction
	}

	return c.collectResults(ctx, submitted.BulkSearchID, len(targets), fraction)
}

// collectResults polls the results endpoint under the client rate limit.
func (c *Client) collectResults(ctx context.Context, bulkSearchID string, total int, fraction float64) ([]*pagesift.Page, error) {
	deadline := time.Now().Add(c.waitTime)
	needed := int(math.Ceil(fraction * float64(total)))

	var last resultsResponse
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		err := c.get(ctx, "/bulk/"+url.PathEscape(bulkSearchID)+"/results", &last)
		if err != nil {
			return nil, err
		}

		if last.CompleteCount >= needed || time.Now().After(deadline) {
			break
		}
	}

	pages := make([]*pagesift.Page, 0, len(last.Pages))
	for _, p := range last.Pages {
		pages = append(pages, p.toPage())
	}
	return pages, nil
}

// Crawl follows links server-side from the start URL up to the configured
// depth. Result URLs are deduplicated client-side with a Bloom filter, as
// crawls commonly report the same URL at multiple depths.
func (c *Client) Crawl(ctx context.Context, startURL string, opts pagesift.CrawlOptions) ([]*pagesift.Page, error) {
	if startURL == "" {
		return nil, pagesift.Errorf(pagesift.EINVALID, "start URL required")
	}

	var result resultsResponse
	err := c.post(ctx, "/crawl", map[string]any{
		"start_url":    startURL,
		"max_depth":    opts.MaxDepth,
		"extract_html": opts.ExtractHTML,
	}, &result)
	if err != nil {
		return nil, err
	}

	seen := bloom.NewURLFilter(uint(len(result.Pages)) + 1)
	pages := make([]*pagesift.Page, 0, len(result.Pages))
	for _, p := range result.Pages {
		if seen.Seen(p.URL) {
			continue
		}
		seen.Add(p.URL)
		pages = append(pages, p.toPage())
	}
	return pages, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return pagesift.Errorf(pagesift.EUNAVAILABLE, "desync API unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return pagesift.Errorf(pagesift.EUNAVAILABLE, "desync API returned HTTP %d: %s", resp.StatusCode, string(data))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
