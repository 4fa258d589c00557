// Package http provides the HTTP-based fetch strategies: a direct fetch with
// browser-like headers, a crawler-identity rotation fetch, and a cache-mirror
// fetch. It also implements sitemap-based article URL discovery.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/newsclip"
)

// DefaultDirectTimeout bounds a single direct fetch attempt.
const DefaultDirectTimeout = 12 * time.Second

// browserHeaders mimic a desktop Chrome request. Sent by the direct strategy
// so that trivially bot-blocking sites serve the normal page.
var browserHeaders = map[string]string{
	"User-Agent":                "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36",
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Cache-Control":             "max-age=0",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
}

// Ensure Direct implements newsclip.FetchStrategy at compile time.
var _ newsclip.FetchStrategy = (*Direct)(nil)

// Direct fetches a URL with a single HTTP GET carrying browser-like headers.
// It is the cheapest strategy and runs first.
type Direct struct {
	client  *http.Client
	timeout time.Duration
}

// DirectOption configures a Direct strategy.
type DirectOption func(*Direct)

// WithDirectTimeout sets the per-attempt timeout.
// Defaults to DefaultDirectTimeout (12s) if not specified.
func WithDirectTimeout(d time.Duration) DirectOption {
	return func(f *Direct) {
		f.timeout = d
	}
}

// WithDirectClient sets the HTTP client used for requests.
func WithDirectClient(c *http.Client) DirectOption {
	return func(f *Direct) {
		f.client = c
	}
}

// NewDirect creates a new direct fetch strategy.
func NewDirect(opts ...DirectOption) *Direct {
	f := &Direct{
		timeout: DefaultDirectTimeout,
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
func (f *Direct) Name() newsclip.Method {
	return newsclip.MethodDirect
}

// Attempt fetches the URL once. Non-2xx responses and transport errors fail
// the attempt; the strategy never retries.
func (f *Direct) Attempt(ctx context.Context, url string) (*newsclip.SourceDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "invalid URL %q: %v", url, err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "direct fetch of %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newsclip.FetchFailedError(newsclip.MethodDirect, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "reading response from %s: %v", url, err)
	}

	return &newsclip.SourceDocument{
		URL:       url,
		FinalURL:  resp.Request.URL.String(),
		Status:    resp.StatusCode,
		HTML:      string(body),
		Method:    newsclip.MethodDirect,
		FetchedAt: time.Now(),
	}, nil
}

// Close releases resources. For HTTP strategies this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Direct) Close() error {
	return nil
}
