package extract

import (
	"context"
	"sync/atomic"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/bloom"
	"golang.org/x/sync/errgroup"
)

// Batch extracts many article URLs concurrently and persists the results.
type Batch struct {
	Extractor newsclip.URLExtractor
	Articles  newsclip.ArticleService
	Limiter   newsclip.DomainLimiter

	// Seen filters out URLs already processed in this run or a previous one.
	// Optional; when nil, every URL is processed.
	Seen *bloom.Filter

	// Concurrency is the number of URLs processed in parallel. Defaults to 4.
	Concurrency int
}

// Result holds the outcome of a batch extraction.
type Result struct {
	Saved   int
	Skipped int
	Failed  int
}

// ProgressEvent reports progress during a batch extraction.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// batchResult holds the outcome of processing a single URL.
type batchResult struct {
	position int
	url      string
	article  *newsclip.Article
	err      error
}

// ExtractAll extracts every URL and saves the resulting articles.
// The progress callback, if provided, receives events as extraction proceeds.
func (b *Batch) ExtractAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	// Drop URLs already claimed by the seen filter.
	var pending []string
	var skipped int
	for _, u := range urls {
		if b.Seen != nil && b.Seen.TestAndAdd(u) {
			skipped++
			continue
		}
		pending = append(pending, u)
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan batchResult, total)
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range pending {
			g.Go(func() error {
				resultCh <- b.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]batchResult, total)
	var failed int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	var saved int
	for _, result := range results {
		if result.err != nil || result.article == nil {
			continue
		}
		if b.Articles != nil {
			if err := b.Articles.CreateArticle(ctx, result.article); err != nil {
				failed++
				continue
			}
		}
		saved++
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &Result{Saved: saved, Skipped: skipped, Failed: failed}, nil
}

// processURL extracts a single URL, respecting the per-domain rate limit.
func (b *Batch) processURL(ctx context.Context, position int, url string) batchResult {
	result := batchResult{position: position, url: url}

	if b.Limiter != nil {
		if err := b.Limiter.Wait(ctx, newsclip.ApexDomain(url)); err != nil {
			result.err = err
			return result
		}
	}

	article, err := b.Extractor.ExtractURL(ctx, url)
	if err != nil {
		result.err = err
		return result
	}
	result.article = article
	return result
}
