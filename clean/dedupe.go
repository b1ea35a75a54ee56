package clean

import (
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagesift"
)

// RemoveDuplicatePages drops pages whose text content hashes identically to
// an earlier page, keeping the first occurrence. Order is preserved. Crawls
// commonly surface the same page under multiple URLs (trailing slashes,
// tracking parameters), which would skew frequency counting downstream.
func RemoveDuplicatePages(pages []*pagesift.Page) []*pagesift.Page {
	seen := make(map[uint64]struct{}, len(pages))
	out := make([]*pagesift.Page, 0, len(pages))
	for _, p := range pages {
		h := xxhash.Sum64String(p.TextContent)
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		out = append(out, p)
	}
	return out
}
