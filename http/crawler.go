package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/newsclip"
)

// DefaultIdentityTimeout bounds the fetch attempt for a single identity.
const DefaultIdentityTimeout = 10 * time.Second

// minIdentityBytes is the smallest HTML response accepted from an identity.
// Blocked or interstitial pages served to bots tend to be much smaller than
// real articles.
const minIdentityBytes = 5000

// crawlerIdentities is the fixed pool of user agents rotated by the
// crawler-identity strategy. Publishers commonly whitelist search-engine and
// social-preview crawlers so their links unfurl; the mobile browser is a
// last-resort identity for sites that only gate desktop traffic.
var crawlerIdentities = []string{
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	"Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)",
	"facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)",
	"Twitterbot/1.0",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1",
}

// Ensure CrawlerIdentity implements newsclip.FetchStrategy at compile time.
var _ newsclip.FetchStrategy = (*CrawlerIdentity)(nil)

// CrawlerIdentity fetches a URL while rotating through a fixed pool of
// crawler user agents, stopping at the first identity that returns a
// plausibly complete HTML document.
type CrawlerIdentity struct {
	client     *http.Client
	timeout    time.Duration
	identities []string
}

// CrawlerOption configures a CrawlerIdentity strategy.
type CrawlerOption func(*CrawlerIdentity)

// WithIdentityTimeout sets the per-identity timeout.
// Defaults to DefaultIdentityTimeout (10s) if not specified.
func WithIdentityTimeout(d time.Duration) CrawlerOption {
	return func(f *CrawlerIdentity) {
		f.timeout = d
	}
}

// WithCrawlerClient sets the HTTP client used for requests.
func WithCrawlerClient(c *http.Client) CrawlerOption {
	return func(f *CrawlerIdentity) {
		f.client = c
	}
}

// NewCrawlerIdentity creates a new crawler-identity fetch strategy.
func NewCrawlerIdentity(opts ...CrawlerOption) *CrawlerIdentity {
	f := &CrawlerIdentity{
		timeout:    DefaultIdentityTimeout,
		identities: crawlerIdentities,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	return f
}

// Name identifies the strategy in results and errors.
func (f *CrawlerIdentity) Name() newsclip.Method {
	return newsclip.MethodCrawlerIdentity
}

// Attempt tries each identity in order and returns the first response with
// at least minIdentityBytes of HTML. Identities that error, return non-2xx,
// or return a short body are skipped.
func (f *CrawlerIdentity) Attempt(ctx context.Context, url string) (*newsclip.SourceDocument, error) {
	var lastStatus int
	for _, identity := range f.identities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, status, err := f.attemptIdentity(ctx, url, identity)
		if err != nil {
			if status != 0 {
				lastStatus = status
			}
			continue
		}
		return doc, nil
	}
	return nil, newsclip.FetchFailedError(newsclip.MethodCrawlerIdentity, lastStatus)
}

func (f *CrawlerIdentity) attemptIdentity(ctx context.Context, url, identity string) (*newsclip.SourceDocument, int, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", identity)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, newsclip.FetchFailedError(newsclip.MethodCrawlerIdentity, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	html := string(body)
	if len(html) < minIdentityBytes || !looksLikeHTML(html) {
		return nil, resp.StatusCode, newsclip.Errorf(newsclip.ENOTFOUND, "identity returned %d bytes", len(html))
	}

	return &newsclip.SourceDocument{
		URL:       url,
		FinalURL:  resp.Request.URL.String(),
		Status:    resp.StatusCode,
		HTML:      html,
		Method:    newsclip.MethodCrawlerIdentity,
		FetchedAt: time.Now(),
	}, resp.StatusCode, nil
}

// looksLikeHTML reports whether the head of the body contains an HTML tag.
func looksLikeHTML(body string) bool {
	head := body
	if len(head) > 1024 {
		head = head[:1024]
	}
	head = strings.ToLower(head)
	return strings.Contains(head, "<html") || strings.Contains(head, "<!doctype html")
}

// Close releases resources. No-op for HTTP strategies.
func (f *CrawlerIdentity) Close() error {
	return nil
}
