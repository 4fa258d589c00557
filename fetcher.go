package newsclip

import "context"

// FetchStrategy retrieves the raw markup of a URL. Strategies are ranked by
// cost; the orchestrator runs them sequentially and escalates to the next
// one when the current one fails outright or yields low-quality content.
//
// Implementations apply their own per-attempt timeout, bounded by the
// caller's context, and must never be retried with identical parameters.
type FetchStrategy interface {
	// Name identifies the strategy in results and errors.
	Name() Method

	// Attempt fetches the URL once. A non-nil error means the attempt
	// failed outright and the orchestrator should escalate.
	Attempt(ctx context.Context, url string) (*SourceDocument, error)

	// Close releases any resources held by the strategy (e.g. a browser).
	// Must be called when the strategy is no longer needed.
	Close() error
}

// DomainLimiter rate limits requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain,
	// or the context is canceled.
	Wait(ctx context.Context, domain string) error
}
