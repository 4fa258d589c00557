package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/newsclip"
	main "github.com/fwojciec/newsclip/cmd/newsclip"
	"github.com/fwojciec/newsclip/extract"
	"github.com/fwojciec/newsclip/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("discovers, extracts and saves articles", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		var saved int

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sitemaps: &mock.SitemapService{
				DiscoverArticleURLsFn: func(ctx context.Context, siteURL string) ([]string, error) {
					return []string{
						"https://example-news.com/story/1",
						"https://example-news.com/story/2",
					}, nil
				},
			},
			Batch: &extract.Batch{
				Extractor: &mock.URLExtractor{
					ExtractURLFn: func(ctx context.Context, url string) (*newsclip.Article, error) {
						return sampleArticle(url), nil
					},
				},
				Articles: &mock.ArticleService{
					CreateArticleFn: func(ctx context.Context, article *newsclip.Article) error {
						saved++
						return nil
					},
				},
			},
		}

		cmd := &main.BatchCmd{SiteURL: "https://example-news.com", Limit: 20}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 2, saved)
		assert.Contains(t, stdout.String(), "Extracting 2 URLs")
		assert.Contains(t, stdout.String(), "Saved 2 articles")
	})

	t.Run("caps the number of URLs at the limit", func(t *testing.T) {
		t.Parallel()

		var extracted int
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Sitemaps: &mock.SitemapService{
				DiscoverArticleURLsFn: func(ctx context.Context, siteURL string) ([]string, error) {
					return []string{
						"https://example-news.com/story/1",
						"https://example-news.com/story/2",
						"https://example-news.com/story/3",
					}, nil
				},
			},
			Batch: &extract.Batch{
				Extractor: &mock.URLExtractor{
					ExtractURLFn: func(ctx context.Context, url string) (*newsclip.Article, error) {
						extracted++
						return sampleArticle(url), nil
					},
				},
			},
		}

		cmd := &main.BatchCmd{SiteURL: "https://example-news.com", Limit: 1}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 1, extracted)
	})

	t.Run("reports when no URLs are found", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Sitemaps: &mock.SitemapService{
				DiscoverArticleURLsFn: func(ctx context.Context, siteURL string) ([]string, error) {
					return []string{}, nil
				},
			},
		}

		cmd := &main.BatchCmd{SiteURL: "https://example-news.com"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No article URLs found")
	})
}
