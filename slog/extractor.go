package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsclip"
)

// Ensure LoggingExtractor implements newsclip.URLExtractor.
var _ newsclip.URLExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a URLExtractor with result logging.
type LoggingExtractor struct {
	next   newsclip.URLExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next newsclip.URLExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractURL logs the extraction outcome and delegates to the wrapped extractor.
func (e *LoggingExtractor) ExtractURL(ctx context.Context, url string) (article *newsclip.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if article != nil {
			attrs = append(attrs,
				"method", string(article.Method),
				"quality", article.Quality.Overall,
				"grade", string(article.Quality.Grade),
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.ExtractURL(ctx, url)
}
