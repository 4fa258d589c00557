package extract_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/bloom"
	"github.com/fwojciec/newsclip/extract"
	"github.com/fwojciec/newsclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_ExtractAll(t *testing.T) {
	t.Parallel()

	t.Run("extracts and saves every URL", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var saved []string

		b := &extract.Batch{
			Extractor: &mock.URLExtractor{
				ExtractURLFn: func(ctx context.Context, url string) (*newsclip.Article, error) {
					return &newsclip.Article{CanonicalURL: url, Body: "body"}, nil
				},
			},
			Articles: &mock.ArticleService{
				CreateArticleFn: func(ctx context.Context, article *newsclip.Article) error {
					mu.Lock()
					defer mu.Unlock()
					saved = append(saved, article.CanonicalURL)
					return nil
				},
			},
			Concurrency: 2,
		}

		urls := []string{
			"https://example.com/1",
			"https://example.com/2",
			"https://example.com/3",
		}

		result, err := b.ExtractAll(context.Background(), urls, nil)

		require.NoError(t, err)
		assert.Equal(t, 3, result.Saved)
		assert.Equal(t, 0, result.Failed)
		assert.Len(t, saved, 3)
	})

	t.Run("skips URLs already seen", func(t *testing.T) {
		t.Parallel()

		seen := bloom.NewFilter(1000, 0.01)
		seen.Add("https://example.com/old")

		var extracted []string
		var mu sync.Mutex

		b := &extract.Batch{
			Extractor: &mock.URLExtractor{
				ExtractURLFn: func(ctx context.Context, url string) (*newsclip.Article, error) {
					mu.Lock()
					extracted = append(extracted, url)
					mu.Unlock()
					return &newsclip.Article{CanonicalURL: url, Body: "body"}, nil
				},
			},
			Seen: seen,
		}

		result, err := b.ExtractAll(context.Background(), []string{
			"https://example.com/old",
			"https://example.com/new",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, []string{"https://example.com/new"}, extracted)
	})

	t.Run("counts failed extractions without aborting the batch", func(t *testing.T) {
		t.Parallel()

		b := &extract.Batch{
			Extractor: &mock.URLExtractor{
				ExtractURLFn: func(ctx context.Context, url string) (*newsclip.Article, error) {
					if url == "https://example.com/blocked" {
						return nil, newsclip.NoContentError([]newsclip.Method{newsclip.MethodDirect})
					}
					return &newsclip.Article{CanonicalURL: url, Body: "body"}, nil
				},
			},
		}

		result, err := b.ExtractAll(context.Background(), []string{
			"https://example.com/ok",
			"https://example.com/blocked",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Saved)
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("waits on the domain limiter before extracting", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var domains []string

		b := &extract.Batch{
			Extractor: &mock.URLExtractor{
				ExtractURLFn: func(ctx context.Context, url string) (*newsclip.Article, error) {
					return &newsclip.Article{CanonicalURL: url, Body: "body"}, nil
				},
			},
			Limiter: &mock.DomainLimiter{
				WaitFn: func(ctx context.Context, domain string) error {
					mu.Lock()
					defer mu.Unlock()
					domains = append(domains, domain)
					return nil
				},
			},
		}

		_, err := b.ExtractAll(context.Background(), []string{"https://www.example.com/story"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com"}, domains)
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		b := &extract.Batch{
			Extractor: &mock.URLExtractor{
				ExtractURLFn: func(ctx context.Context, url string) (*newsclip.Article, error) {
					if url == "https://example.com/bad" {
						return nil, newsclip.Errorf(newsclip.ENOTFOUND, "nothing here")
					}
					return &newsclip.Article{CanonicalURL: url, Body: "body"}, nil
				},
			},
		}

		var events []extract.ProgressEvent
		_, err := b.ExtractAll(context.Background(), []string{
			"https://example.com/good",
			"https://example.com/bad",
		}, func(event extract.ProgressEvent) {
			events = append(events, event)
		})

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, extract.ProgressStarted, events[0].Type)
		assert.Equal(t, extract.ProgressFinished, events[3].Type)

		var completed, failed int
		for _, e := range events[1:3] {
			switch e.Type {
			case extract.ProgressCompleted:
				completed++
			case extract.ProgressFailed:
				failed++
				assert.Error(t, e.Error)
			}
		}
		assert.Equal(t, 1, completed)
		assert.Equal(t, 1, failed)
	})
}
