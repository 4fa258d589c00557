package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/bloom"
	"github.com/fwojciec/newsclip/extract"
	"github.com/fwojciec/newsclip/fs"
	"github.com/fwojciec/newsclip/goquery"
	newshttp "github.com/fwojciec/newsclip/http"
	"github.com/fwojciec/newsclip/rod"
	newslog "github.com/fwojciec/newsclip/slog"
	"github.com/fwojciec/newsclip/sqlite"
	"github.com/fwojciec/newsclip/trafilatura"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService newsclip.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("newsclip"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsclip --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSCLIP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService
	deps.Sitemaps = newshttp.NewSitemapService(nil)

	// Wire the extraction pipeline for commands that fetch pages.
	if cmd == "extract" || cmd == "batch" {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		if cli.Verbose {
			logger = slog.New(slog.NewTextHandler(stderr, nil))
		}

		strategies, closers := m.buildStrategies(cli, logger, stderr)
		defer func() {
			for _, c := range closers {
				_ = c.Close()
			}
		}()

		var profiles newsclip.ProfileRegistry = goquery.NewProfileRegistry()
		if dir := os.Getenv("NEWSCLIP_PROFILES"); dir != "" {
			store, err := fs.NewProfileStore(dir, profiles)
			if err != nil {
				return fmt.Errorf("loading site profiles from %q: %w", dir, err)
			}
			profiles = store
		}

		extractor := goquery.NewExtractor(
			profiles,
			goquery.WithBodyFallback(trafilatura.NewExtractor()),
		)

		pipeline := &extract.Pipeline{
			Strategies: strategies,
			Extractor:  extractor,
			MinQuality: cli.MinQuality,
			Deadline:   time.Duration(cli.Timeout) * time.Second,
		}
		deps.Extractor = newslog.NewLoggingExtractor(pipeline, logger)

		if cmd == "batch" {
			deps.Batch = &extract.Batch{
				Extractor:   deps.Extractor,
				Articles:    m.ArticleService,
				Limiter:     extract.NewDomainLimiter(1.0),
				Seen:        bloom.NewFilter(100000, 0.01),
				Concurrency: cli.Batch.Concurrency,
			}
		}
	}

	return kongCtx.Run(deps)
}

// buildStrategies assembles the fetch strategy list in escalation order. The
// browser strategy is included only when enabled and Chrome is available; a
// failed launch is reported once and the remaining strategies are used alone.
func (m *Main) buildStrategies(cli *CLI, logger *slog.Logger, stderr io.Writer) ([]newsclip.FetchStrategy, []newsclip.FetchStrategy) {
	strategies := []newsclip.FetchStrategy{
		newshttp.NewDirect(),
		newshttp.NewCrawlerIdentity(),
		newshttp.NewCacheMirror(),
	}

	browserDisabled := cli.NoBrowser || os.Getenv("NEWSCLIP_NO_BROWSER") != ""
	if !browserDisabled {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintf(stderr, "browser automation unavailable, continuing without it: %s\n", newsclip.ErrorMessage(err))
		} else {
			strategies = append(strategies, browser)
		}
	}

	closers := strategies
	wrapped := make([]newsclip.FetchStrategy, len(strategies))
	for i, s := range strategies {
		wrapped[i] = newslog.NewLoggingStrategy(s, logger)
	}
	return wrapped, closers
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSCLIP_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsclip.db"
	}
	dir := filepath.Join(home, ".newsclip")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsclip.db")
}
