package newsclip

import "time"

// Method identifies the fetch strategy that produced a document.
type Method string

// Fetch strategies in escalation order, cheapest first.
const (
	MethodDirect          Method = "direct"
	MethodCrawlerIdentity Method = "crawler_identity"
	MethodCacheMirror     Method = "cache_mirror"
	MethodBrowser         Method = "browser"
)

// SourceDocument is the raw result of one fetch attempt. It is immutable
// once created and owned exclusively by the orchestrator for the duration
// of a single attempt.
type SourceDocument struct {
	// URL is the URL the caller asked for.
	URL string

	// FinalURL is the URL after redirects. For cache-mirror fetches this is
	// the original target URL, not the mirror URL, so that downstream
	// profile lookups key on the publisher's domain.
	FinalURL string

	// Status is the HTTP status of the response that produced the document.
	Status int

	// HTML is the raw markup of the fetched page.
	HTML string

	// Method records which fetch strategy produced the document.
	Method Method

	// FetchedAt is when the fetch completed.
	FetchedAt time.Time
}
