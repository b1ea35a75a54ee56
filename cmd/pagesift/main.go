package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesift"
	"github.com/fwojciec/pagesift/clean"
	"github.com/fwojciec/pagesift/desync"
	"github.com/fwojciec/pagesift/goquery"
	"github.com/fwojciec/pagesift/htmltomarkdown"
	psslog "github.com/fwojciec/pagesift/slog"
	"github.com/fwojciec/pagesift/sqlite"
	"github.com/fwojciec/pagesift/trafilatura"
	"github.com/fwojciec/pagesift/whatlanggo"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Desync API configuration. APIBaseURL is overridable for testing.
	APIKey     string
	APIBaseURL string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PageService pagesift.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		APIKey:     os.Getenv("DESYNC_API_KEY"),
		APIBaseURL: desync.DefaultBaseURL,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGESIFT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.PageService = sqlite.NewPageService(m.DB)
	deps.DB = m.DB
	deps.Pages = m.PageService
	deps.Sitemaps = psslog.NewLoggingSitemapService(desync.NewSitemapService(nil), deps.Logger)

	// Commands that fetch pages need the desync API
	if needsSource(cmd, cli) {
		if m.APIKey == "" {
			fmt.Fprintln(stderr, "DESYNC_API_KEY environment variable not set. Get an API key at https://desync.ai")
			return fmt.Errorf("DESYNC_API_KEY not set")
		}
		client := desync.NewClient(m.APIKey, desync.WithBaseURL(m.APIBaseURL))
		deps.Source = psslog.NewLoggingSource(client, deps.Logger)
	}

	if cmd == "clean" {
		cfg := pagesift.Config{
			Mode:         pagesift.Mode(cli.Clean.Mode),
			Threshold:    cli.Clean.Threshold,
			MinBatchSize: cli.Clean.MinBatch,
		}
		var blockizer pagesift.Blockizer
		if cfg.Mode == pagesift.ModeMarkup {
			blockizer = goquery.NewBlockizer()
		}
		cleaner, err := clean.NewCleaner(cfg, blockizer)
		if err != nil {
			return err
		}
		deps.Cleaner = psslog.NewLoggingCleaner(cleaner, deps.Logger)
	}

	if cmd == "stats" {
		deps.Stats = goquery.NewStatsService()
	}

	if cmd == "extract" {
		deps.Extractor = trafilatura.NewExtractor()
		deps.Converter = htmltomarkdown.NewConverter()
	}

	if cmd == "languages" {
		deps.Languages = whatlanggo.NewDetector()
	}

	return kongCtx.Run(deps)
}

// needsSource reports whether the command will fetch pages from the API.
func needsSource(cmd string, cli *CLI) bool {
	switch cmd {
	case "clean", "extract", "links":
		return true
	case "contacts":
		return !cli.Contacts.Stored
	case "stats":
		return !cli.Stats.Stored
	case "languages":
		return !cli.Languages.Stored
	default:
		return false
	}
}

func defaultDBPath() string {
	if path := os.Getenv("PAGESIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagesift.db"
	}
	dir := filepath.Join(home, ".pagesift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagesift.db")
}
