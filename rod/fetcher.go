package rod

import (
	"context"
	"math/rand/v2"
	"net/url"
	"time"

	"github.com/fwojciec/newsclip"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single browser fetch attempt. Browser fetches
// are the most expensive strategy and may have to sit through an anti-bot
// challenge, so the budget is far larger than the HTTP strategies'.
const DefaultFetchTimeout = 50 * time.Second

// challengeWait is the extra time allowed for an anti-bot interstitial to
// resolve itself after the initial page load.
const challengeWait = 15 * time.Second

// Ensure Fetcher implements newsclip.FetchStrategy at compile time.
var _ newsclip.FetchStrategy = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using headless Chrome with stealth patches.
// It is the last and most expensive fetch strategy, reached only when every
// HTTP strategy has failed or produced low-quality content.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-attempt timeout.
// Defaults to DefaultFetchTimeout (50s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new browser fetch strategy, launching headless Chrome.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an EUNAVAILABLE error when Chrome/Chromium cannot be found or
// launched; callers should then assemble the strategy list without the
// browser strategy.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager()
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EUNAVAILABLE, "browser automation unavailable: %v", err)
	}
	f.manager = manager

	return f, nil
}

// Name identifies the strategy in results and errors.
func (f *Fetcher) Name() newsclip.Method {
	return newsclip.MethodBrowser
}

// Attempt navigates to the URL in a stealth-patched page and returns the
// rendered HTML. The navigation mimics a human visit: the publisher's front
// page is loaded first, timing is jittered, cookie-consent overlays are
// dismissed, and the page is scrolled partway to trigger lazy-loaded content.
func (f *Fetcher) Attempt(ctx context.Context, target string) (*newsclip.SourceDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	browser := f.manager.Browser()
	defer f.manager.Release()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "creating page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if _, err := page.EvalOnNewDocument(stealthJS); err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "installing stealth patches: %v", err)
	}
	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
		UserAgent:      stealthUserAgent,
		AcceptLanguage: "en-US,en;q=0.9",
	}); err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "overriding user agent: %v", err)
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1366,
		Height:            768,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "setting viewport: %v", err)
	}

	// Arriving straight at a deep link is a bot tell; visit the front page
	// first so the article request carries a plausible navigation history.
	if front := frontPage(target); front != "" {
		if err := page.Navigate(front); err == nil {
			_ = page.WaitLoad()
			settle(300*time.Millisecond, 700*time.Millisecond)
		}
	}

	if err := page.Navigate(target); err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "navigating to %s: %v", target, err)
	}
	if err := page.WaitLoad(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "waiting for page load: %v", err)
	}
	settle(500*time.Millisecond, 1*time.Second)

	html, err := page.HTML()
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "reading page HTML: %v", err)
	}

	if isChallenge(html) {
		html, err = f.waitForChallenge(ctx, page)
		if err != nil {
			return nil, err
		}
	}

	if f.dismissConsent(page) {
		settle(300*time.Millisecond, 500*time.Millisecond)
	}

	// A partial scroll triggers lazy-loaded article bodies.
	_ = page.Mouse.Scroll(0, 600, 3)
	settle(300*time.Millisecond, 500*time.Millisecond)

	html, err = page.HTML()
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINTERNAL, "reading page HTML: %v", err)
	}

	finalURL := target
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	return &newsclip.SourceDocument{
		URL:       target,
		FinalURL:  finalURL,
		Status:    200,
		HTML:      html,
		Method:    newsclip.MethodBrowser,
		FetchedAt: time.Now(),
	}, nil
}

// waitForChallenge polls the page while an anti-bot interstitial resolves.
// Returns the post-challenge HTML, or ENOTFOUND if the challenge never
// clears within challengeWait.
func (f *Fetcher) waitForChallenge(ctx context.Context, page *rod.Page) (string, error) {
	deadline := time.Now().Add(challengeWait)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if time.Now().After(deadline) {
			return "", newsclip.Errorf(newsclip.ENOTFOUND, "anti-bot challenge did not resolve")
		}
		time.Sleep(time.Second)

		html, err := page.HTML()
		if err != nil {
			return "", newsclip.Errorf(newsclip.EINTERNAL, "reading page HTML: %v", err)
		}
		if !isChallenge(html) {
			return html, nil
		}
	}
}

// dismissConsent clicks the first visible cookie-consent button, if any.
// Reports whether a click was performed.
func (f *Fetcher) dismissConsent(page *rod.Page) bool {
	for _, label := range consentButtonTexts {
		els, err := page.ElementsX(consentButtonXPath(label))
		if err != nil || len(els) == 0 {
			continue
		}
		if err := els.First().Click(proto.InputMouseButtonLeft, 1); err == nil {
			return true
		}
	}
	return false
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// frontPage returns the root URL of the target's host, or "" when the target
// already points at the root or cannot be parsed.
func frontPage(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Path == "" || u.Path == "/" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/"
}

// settle sleeps for base plus a random jitter, making navigation timing
// non-uniform across requests.
func settle(base, jitter time.Duration) {
	time.Sleep(base + rand.N(jitter))
}
