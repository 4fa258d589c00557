// Package slog provides logging decorators for the domain interfaces,
// implemented on top of the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsclip"
)

// Ensure LoggingStrategy implements newsclip.FetchStrategy.
var _ newsclip.FetchStrategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps a FetchStrategy with per-attempt logging. Wrapping
// every strategy in the escalation list makes the escalation path visible in
// the logs.
type LoggingStrategy struct {
	next   newsclip.FetchStrategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next newsclip.FetchStrategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Name delegates to the wrapped strategy.
func (s *LoggingStrategy) Name() newsclip.Method {
	return s.next.Name()
}

// Attempt logs the attempt outcome and delegates to the wrapped strategy.
func (s *LoggingStrategy) Attempt(ctx context.Context, url string) (doc *newsclip.SourceDocument, err error) {
	defer func(begin time.Time) {
		var bytes int
		if doc != nil {
			bytes = len(doc.HTML)
		}
		s.logger.Info("fetch attempt",
			"strategy", string(s.next.Name()),
			"url", url,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Attempt(ctx, url)
}

// Close delegates to the wrapped strategy.
func (s *LoggingStrategy) Close() error {
	return s.next.Close()
}
