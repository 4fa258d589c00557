package main

import (
	"context"
	"io"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/extract"
	"github.com/fwojciec/newsclip/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Articles  newsclip.ArticleService
	Sitemaps  newsclip.SitemapService
	Extractor newsclip.URLExtractor
	Batch     *extract.Batch
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract an article from a URL"`
	Batch   BatchCmd   `cmd:"" help:"Discover and extract a site's recent articles"`
	History HistoryCmd `cmd:"" help:"List previously extracted articles"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an extracted article"`

	Verbose    bool    `short:"v" help:"Log fetch attempts and extraction results"`
	NoBrowser  bool    `help:"Disable the headless-browser fetch strategy"`
	MinQuality float64 `default:"0.5" help:"Quality threshold below which fetching escalates"`
	Timeout    int     `default:"120" help:"Per-article extraction deadline in seconds"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL  string `arg:"" help:"Article URL"`
	JSON bool   `short:"j" help:"Print the full article record as JSON"`
	Save bool   `short:"s" help:"Save the article to the local database"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	SiteURL     string `arg:"" help:"Publisher site URL"`
	Limit       int    `short:"n" default:"20" help:"Maximum number of articles to extract"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent extraction limit"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Domain string `short:"d" help:"Filter by publisher domain"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of articles to list"`
	Full   bool   `help:"Show full article bodies"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID string `arg:"" help:"Article ID"`
}
