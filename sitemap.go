package newsclip

import "context"

// SitemapService discovers article URLs from a publisher's sitemaps.
// Implementations hide robots.txt consultation and sitemap-index recursion.
type SitemapService interface {
	DiscoverArticleURLs(ctx context.Context, siteURL string) ([]string, error)
}
