package mock

import (
	"context"

	"github.com/fwojciec/newsclip"
)

var _ newsclip.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of newsclip.SitemapService.
type SitemapService struct {
	DiscoverArticleURLsFn func(ctx context.Context, siteURL string) ([]string, error)
}

func (s *SitemapService) DiscoverArticleURLs(ctx context.Context, siteURL string) ([]string, error) {
	return s.DiscoverArticleURLsFn(ctx, siteURL)
}
