package mock

import (
	"context"

	"github.com/fwojciec/newsclip"
)

var _ newsclip.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of newsclip.ArticleExtractor.
type ArticleExtractor struct {
	ExtractFn func(doc *newsclip.SourceDocument) (*newsclip.Article, error)
}

func (e *ArticleExtractor) Extract(doc *newsclip.SourceDocument) (*newsclip.Article, error) {
	return e.ExtractFn(doc)
}

var _ newsclip.BodyExtractor = (*BodyExtractor)(nil)

// BodyExtractor is a mock implementation of newsclip.BodyExtractor.
type BodyExtractor struct {
	ExtractBodyFn func(html string) (string, error)
}

func (e *BodyExtractor) ExtractBody(html string) (string, error) {
	return e.ExtractBodyFn(html)
}

var _ newsclip.URLExtractor = (*URLExtractor)(nil)

// URLExtractor is a mock implementation of newsclip.URLExtractor.
type URLExtractor struct {
	ExtractURLFn func(ctx context.Context, url string) (*newsclip.Article, error)
}

func (e *URLExtractor) ExtractURL(ctx context.Context, url string) (*newsclip.Article, error) {
	return e.ExtractURLFn(ctx, url)
}
