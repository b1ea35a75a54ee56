// Package goquery provides HTML-backed implementations of pagesift
// interfaces: markup-mode blockization and link-density statistics.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagesift"
	"golang.org/x/net/html"
)

// Ensure Blockizer implements pagesift.Blockizer at compile time.
var _ pagesift.Blockizer = (*Blockizer)(nil)

// Blockizer converts HTML into leaf text-bearing blocks. An element becomes
// a block when its direct text content is non-empty and it contains no
// block-level descendant; its whole (inline) subtree text is the block's
// canonical form. Qualifying elements are not descended into, so nested
// inline markup is never counted twice, and page wrappers never collapse
// into one giant block.
type Blockizer struct{}

// NewBlockizer creates a new Blockizer.
func NewBlockizer() *Blockizer {
	return &Blockizer{}
}

// blockTags are elements that start a new visual block. An element
// containing any of these cannot itself be a leaf block.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

// skipTags are subtrees that carry no visible text.
var skipTags = map[string]bool{
	"script": true, "style": true, "template": true, "iframe": true,
}

// Blockize parses HTML and returns leaf text-bearing blocks in document
// order. Deterministic and pure: batch context plays no part.
func (b *Blockizer) Blockize(content string) ([]pagesift.Block, error) {
	if strings.TrimSpace(content) == "" {
		return nil, pagesift.Errorf(pagesift.EINVALID, "empty markup content")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "parse markup: %v", err)
	}

	blocks := []pagesift.Block{}
	for _, root := range doc.Selection.Nodes {
		collectBlocks(root, &blocks)
	}
	return blocks, nil
}

func collectBlocks(n *html.Node, blocks *[]pagesift.Block) {
	if n.Type == html.ElementNode {
		if skipTags[n.Data] {
			return
		}
		if directText(n) != "" && !hasBlockDescendant(n) {
			if text := normalize(subtreeText(n)); text != "" {
				*blocks = append(*blocks, pagesift.Block{
					Text:     text,
					Position: len(*blocks),
				})
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectBlocks(c, blocks)
	}
}

// directText concatenates the text nodes that are immediate children of n.
func directText(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.TrimSpace(sb.String())
}

// subtreeText concatenates all text nodes below n, skipping invisible tags.
func subtreeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && skipTags[n.Data] {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func hasBlockDescendant(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (blockTags[c.Data] || hasBlockDescendant(c)) {
			return true
		}
	}
	return false
}

// normalize collapses whitespace runs to single spaces and trims.
// Case is preserved.
func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
