package newsclip

import (
	"net/url"
	"regexp"
	"strings"
)

// SiteProfile holds publisher-specific extraction rules that let field
// extractors short-circuit to high-precision strategies for known sites.
// Profiles are immutable after load and safe for concurrent use.
type SiteProfile struct {
	// Domain is the apex domain the profile applies to (www.-stripped).
	Domain string

	// BodySelectors are tried, in order, before the generic content
	// container list.
	BodySelectors []string

	// AuthorSelectors are tried, in order, before the generic byline
	// heuristics.
	AuthorSelectors []string

	// AuthorPatterns are regexes run over the head of the visible text.
	AuthorPatterns []*regexp.Regexp

	// DateSelectors are tried, in order, before the generic date heuristics.
	DateSelectors []string

	// ExcludeSelectors mark elements whose text must never contribute to
	// the body (e.g. related-article rails, share toolbars).
	ExcludeSelectors []string
}

// ProfileRegistry looks up publisher profiles by apex domain.
// Implementations are read-only after construction.
type ProfileRegistry interface {
	// Lookup returns the profile for a domain, or nil if none is registered.
	Lookup(domain string) *SiteProfile
}

// ApexDomain returns the lowercased hostname of a URL with a leading "www."
// stripped. It is the lookup key for profile registries and the Domain field
// of extracted articles. Returns "" for unparsable URLs.
func ApexDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	return strings.TrimPrefix(host, "www.")
}
