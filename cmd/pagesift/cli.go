package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Pages     pagesift.PageService
	Source    pagesift.PageSource
	Sitemaps  pagesift.SitemapService
	Cleaner   pagesift.Cleaner
	Stats     pagesift.StatsService
	Extractor pagesift.Extractor
	Converter pagesift.Converter
	Languages pagesift.LanguageDetector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log service operations to stderr"`

	Clean     CleanCmd     `cmd:"" help:"Fetch a batch of pages and strip cross-page boilerplate"`
	Contacts  ContactsCmd  `cmd:"" help:"Extract emails and phone numbers from pages"`
	Stats     StatsCmd     `cmd:"" help:"Compute text statistics for pages"`
	Extract   ExtractCmd   `cmd:"" help:"Extract the main content of a single page"`
	Sitemap   SitemapCmd   `cmd:"" help:"List URLs from a site's sitemap"`
	Links     LinksCmd     `cmd:"" help:"Crawl a site and print its link graph"`
	Languages LanguagesCmd `cmd:"" help:"Detect the language of each page"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	Targets []string `arg:"" optional:"" help:"Target URLs for bulk search"`

	Crawl     string  `help:"Crawl from this start URL instead of bulk search"`
	Sitemap   string  `help:"Discover targets from this site's sitemap"`
	Mode      string  `default:"text" enum:"text,markup" help:"Content mode (text or markup)"`
	Threshold float64 `short:"t" default:"0.5" help:"Boilerplate frequency threshold"`
	MinBatch  int     `default:"2" help:"Minimum batch size for frequency analysis"`
	MaxDepth  int     `short:"d" default:"2" help:"Maximum crawl depth"`
	Dedupe    bool    `help:"Drop pages with identical text content"`
	Filter    string  `short:"F" help:"Keep only pages whose URL contains this substring"`
	CSV       string  `help:"Write cleaned pages to this CSV file"`
	JSON      string  `help:"Write cleaned pages to this JSON file"`
	Store     bool    `help:"Save fetched pages and cleaned results to the database"`
}

// ContactsCmd is the "contacts" subcommand.
type ContactsCmd struct {
	Targets []string `arg:"" optional:"" help:"Target URLs for bulk search"`

	Stored bool   `help:"Read pages from the database instead of fetching"`
	Domain string `help:"Limit stored pages to this domain"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Targets []string `arg:"" optional:"" help:"Target URLs for bulk search"`

	Stored bool   `help:"Read pages from the database instead of fetching"`
	Domain string `help:"Limit stored pages to this domain"`
	HTML   bool   `help:"Fetch raw HTML to include link density"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Page URL"`

	Markdown bool `short:"m" help:"Convert extracted content to Markdown"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	URL string `arg:"" help:"Site base URL"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	URL string `arg:"" help:"Crawl start URL"`

	MaxDepth    int  `short:"d" default:"1" help:"Maximum crawl depth"`
	External    bool `help:"Include links pointing outside the site"`
	CrawledOnly bool `help:"Keep only edges between crawled pages"`
}

// LanguagesCmd is the "languages" subcommand.
type LanguagesCmd struct {
	Targets []string `arg:"" optional:"" help:"Target URLs for bulk search"`

	Stored bool   `help:"Read pages from the database instead of fetching"`
	Domain string `help:"Limit stored pages to this domain"`
}
