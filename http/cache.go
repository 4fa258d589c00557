package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/newsclip"
)

// DefaultCacheTimeout bounds a single cache-mirror fetch attempt.
const DefaultCacheTimeout = 10 * time.Second

// DefaultMirrorPrefix is the public cache mirror queried by default. The
// target URL is appended verbatim.
const DefaultMirrorPrefix = "https://webcache.googleusercontent.com/search?q=cache:"

// Ensure CacheMirror implements newsclip.FetchStrategy at compile time.
var _ newsclip.FetchStrategy = (*CacheMirror)(nil)

// CacheMirror retrieves a third-party cached snapshot of a URL. The snapshot
// is accepted only if its markup still mentions the target host, guarding
// against mirror error pages and cache misses served with HTTP 200.
type CacheMirror struct {
	client  *http.Client
	timeout time.Duration
	prefix  string
}

// CacheOption configures a CacheMirror strategy.
type CacheOption func(*CacheMirror)

// WithCacheTimeout sets the per-attempt timeout.
// Defaults to DefaultCacheTimeout (10s) if not specified.
func WithCacheTimeout(d time.Duration) CacheOption {
	return func(f *CacheMirror) {
		f.timeout = d
	}
}

// WithMirrorPrefix sets the mirror URL prefix the target URL is appended to.
// Defaults to DefaultMirrorPrefix.
func WithMirrorPrefix(prefix string) CacheOption {
	return func(f *CacheMirror) {
		f.prefix = prefix
	}
}

// WithCacheClient sets the HTTP client used for requests.
func WithCacheClient(c *http.Client) CacheOption {
	return func(f *CacheMirror) {
		f.client = c
	}
}

// NewCacheMirror creates a new cache-mirror fetch strategy.
func NewCacheMirror(opts ...CacheOption) *CacheMirror {
	f := &CacheMirror{
		timeout: DefaultCacheTimeout,
		prefix:  DefaultMirrorPrefix,
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
func (f *CacheMirror) Name() newsclip.Method {
	return newsclip.MethodCacheMirror
}

// Attempt fetches the cached snapshot of the URL. The returned document keeps
// the original target URL as FinalURL so downstream profile lookups key on
// the publisher's domain rather than the mirror's.
func (f *CacheMirror) Attempt(ctx context.Context, target string) (*newsclip.SourceDocument, error) {
	host := newsclip.ApexDomain(target)
	if host == "" {
		return nil, newsclip.Errorf(newsclip.EINVALID, "invalid URL %q", target)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	mirrorURL := f.prefix + url.QueryEscape(target)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mirrorURL, nil)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "invalid mirror URL: %v", err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "cache-mirror fetch of %s: %v", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newsclip.FetchFailedError(newsclip.MethodCacheMirror, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "reading cache-mirror response: %v", err)
	}

	html := string(body)
	if !strings.Contains(strings.ToLower(html), host) {
		return nil, newsclip.Errorf(newsclip.ENOTFOUND, "snapshot does not mention %s", host)
	}

	return &newsclip.SourceDocument{
		URL:       target,
		FinalURL:  target,
		Status:    resp.StatusCode,
		HTML:      html,
		Method:    newsclip.MethodCacheMirror,
		FetchedAt: time.Now(),
	}, nil
}

// Close releases resources. No-op for HTTP strategies.
func (f *CacheMirror) Close() error {
	return nil
}
