package desync_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/desync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *desync.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return desync.NewClient("test-key",
		desync.WithBaseURL(srv.URL),
		desync.WithWaitTime(2*time.Second),
		desync.WithPollRate(100),
	)
}

func TestClient_BulkSearch(t *testing.T) {
	t.Parallel()

	var polls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /bulk", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body["target_list"], 2)
		assert.Equal(t, true, body["extract_html"])

		json.NewEncoder(w).Encode(map[string]any{
			"message":        "accepted",
			"bulk_search_id": "bs-123",
			"total_links":    2,
		})
	})
	mux.HandleFunc("GET /bulk/bs-123/results", func(w http.ResponseWriter, r *http.Request) {
		n := polls.Add(1)
		resp := map[string]any{
			"complete_count": 1,
			"total_count":    2,
			"pages": []map[string]any{
				{"id": "p1", "url": "https://example.com/a", "domain": "example.com", "search_type": "bulk", "text_content": "hello", "complete": true},
			},
		}
		if n >= 2 {
			resp["complete_count"] = 2
			resp["pages"] = []map[string]any{
				{"id": "p1", "url": "https://example.com/a", "domain": "example.com", "search_type": "bulk", "text_content": "hello", "complete": true},
				{"id": "p2", "url": "https://example.com/b", "domain": "example.com", "search_type": "bulk", "text_content": "world", "complete": true},
			}
		}
		json.NewEncoder(w).Encode(resp)
	})

	client := newTestClient(t, mux)
	pages, err := client.BulkSearch(context.Background(), []string{"https://example.com/a", "https://example.com/b"}, pagesift.BulkOptions{ExtractHTML: true})
	require.NoError(t, err)

	require.Len(t, pages, 2)
	assert.Equal(t, "https://example.com/a", pages[0].URL)
	assert.Equal(t, "hello", pages[0].TextContent)
	assert.True(t, pages[1].Complete)
	assert.GreaterOrEqual(t, polls.Load(), int32(2))
}

func TestClient_BulkSearch_InvalidTargets(t *testing.T) {
	t.Parallel()

	client := desync.NewClient("test-key")

	_, err := client.BulkSearch(context.Background(), nil, pagesift.BulkOptions{})
	assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))

	tooMany := make([]string, desync.MaxBulkTargets+1)
	_, err = client.BulkSearch(context.Background(), tooMany, pagesift.BulkOptions{})
	assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
}

func TestClient_BulkSearch_NotAccepted(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /bulk", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"message": "quota exceeded"})
	})

	client := newTestClient(t, mux)
	_, err := client.BulkSearch(context.Background(), []string{"https://example.com"}, pagesift.BulkOptions{})
	require.Error(t, err)
	assert.Equal(t, pagesift.EUNAVAILABLE, pagesift.ErrorCode(err))
	assert.Contains(t, pagesift.ErrorMessage(err), "quota exceeded")
}

func TestClient_BulkSearch_WaitWindowExpires(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /bulk", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"bulk_search_id": "bs-slow", "total_links": 2})
	})
	mux.HandleFunc("GET /bulk/bs-slow/results", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"complete_count": 1,
			"total_count":    2,
			"pages": []map[string]any{
				{"id": "p1", "url": "https://example.com/a", "text_content": "partial", "complete": true},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	client := desync.NewClient("test-key",
		desync.WithBaseURL(srv.URL),
		desync.WithWaitTime(100*time.Millisecond),
		desync.WithPollRate(100),
	)

	pages, err := client.BulkSearch(context.Background(), []string{"https://example.com/a", "https://example.com/b"}, pagesift.BulkOptions{})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "partial", pages[0].TextContent)
}

func TestClient_Crawl(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /crawl", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://example.com", body["start_url"])
		assert.Equal(t, float64(2), body["max_depth"])

		json.NewEncoder(w).Encode(map[string]any{
			"complete_count": 3,
			"total_count":    3,
			"pages": []map[string]any{
				{
					"id": "p1", "url": "https://example.com/", "depth": 0, "text_content": "root",
					"internal_links": []string{"https://example.com/about"},
					"external_links": []string{"https://github.com/example"},
				},
				{"id": "p2", "url": "https://example.com/about", "depth": 1, "text_content": "about"},
				{"id": "p3", "url": "https://example.com/", "depth": 1, "text_content": "root again"},
			},
		})
	})

	client := newTestClient(t, mux)
	pages, err := client.Crawl(context.Background(), "https://example.com", pagesift.CrawlOptions{MaxDepth: 2})
	require.NoError(t, err)

	require.Len(t, pages, 2)
	assert.Equal(t, "https://example.com/", pages[0].URL)
	assert.Equal(t, []string{"https://example.com/about"}, pages[0].InternalLinks)
	assert.Equal(t, []string{"https://github.com/example"}, pages[0].ExternalLinks)
	assert.Equal(t, "https://example.com/about", pages[1].URL)
}

func TestClient_Crawl_EmptyStartURL(t *testing.T) {
	t.Parallel()

	client := desync.NewClient("test-key")
	_, err := client.Crawl(context.Background(), "", pagesift.CrawlOptions{})
	assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
}

func TestClient_ServerError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /crawl", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	})

	client := newTestClient(t, mux)
	_, err := client.Crawl(context.Background(), "https://example.com", pagesift.CrawlOptions{})
	require.Error(t, err)
	assert.Equal(t, pagesift.EUNAVAILABLE, pagesift.ErrorCode(err))
}
