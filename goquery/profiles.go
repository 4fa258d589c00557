package goquery

import (
	"regexp"

	"github.com/fwojciec/newsclip"
)

var _ newsclip.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry holds the compiled-in site profiles for major publishers.
// It is built once at startup and never mutated afterwards, so lookups are
// safe for concurrent use.
type ProfileRegistry struct {
	profiles map[string]*newsclip.SiteProfile
}

// NewProfileRegistry creates a registry populated with the builtin
// publisher profiles.
func NewProfileRegistry() *ProfileRegistry {
	r := &ProfileRegistry{profiles: make(map[string]*newsclip.SiteProfile)}
	for _, p := range builtinProfiles() {
		r.profiles[p.Domain] = p
	}
	return r
}

// Lookup returns the profile for an apex domain (www.-stripped), or nil if
// the domain has no profile.
func (r *ProfileRegistry) Lookup(domain string) *newsclip.SiteProfile {
	return r.profiles[domain]
}

// Domains returns all registered apex domains.
func (r *ProfileRegistry) Domains() []string {
	domains := make([]string, 0, len(r.profiles))
	for d := range r.profiles {
		domains = append(domains, d)
	}
	return domains
}

// builtinProfiles is the static table of publisher-specific extraction
// rules. Keyed by apex domain; selectors are ordered by precision.
func builtinProfiles() []*newsclip.SiteProfile {
	return []*newsclip.SiteProfile{
		{
			Domain:           "nytimes.com",
			BodySelectors:    []string{`section[name="articleBody"]`, "article section"},
			AuthorSelectors:  []string{`span[itemprop="name"]`, "p.byline"},
			DateSelectors:    []string{"time[datetime]"},
			ExcludeSelectors: []string{`[data-testid="related-links"]`, "#bottom-of-article"},
		},
		{
			Domain:           "theguardian.com",
			BodySelectors:    []string{`div[data-gu-name="body"]`, "div.article-body-commercial-selector"},
			AuthorSelectors:  []string{`a[rel="author"]`, `address[aria-label="Contributor info"] a`},
			DateSelectors:    []string{`details[data-component="meta-byline"] summary`, "time[datetime]"},
			ExcludeSelectors: []string{"aside", "figure"},
		},
		{
			Domain:           "bbc.com",
			BodySelectors:    []string{`[data-component="text-block"]`, "article"},
			AuthorSelectors:  []string{`[data-testid="byline-name"]`, "div.byline__name"},
			DateSelectors:    []string{"time[datetime]"},
			ExcludeSelectors: []string{`[data-component="links-block"]`, `[data-component="tag-list"]`},
		},
		{
			Domain:           "bbc.co.uk",
			BodySelectors:    []string{`[data-component="text-block"]`, "article"},
			AuthorSelectors:  []string{`[data-testid="byline-name"]`, "div.byline__name"},
			DateSelectors:    []string{"time[datetime]"},
			ExcludeSelectors: []string{`[data-component="links-block"]`, `[data-component="tag-list"]`},
		},
		{
			Domain:           "cnn.com",
			BodySelectors:    []string{"div.article__content", `[itemprop="articleBody"]`},
			AuthorSelectors:  []string{"div.byline__names", "span.byline__name"},
			AuthorPatterns:   []*regexp.Regexp{regexp.MustCompile(`By\s+([A-Z][\w.'-]*(?:\s+[A-Z][\w.'-]*){1,3}),?\s+CNN`)},
			DateSelectors:    []string{"div.timestamp"},
			ExcludeSelectors: []string{"div.related-content", "div.ad-slot"},
		},
		{
			Domain:           "reuters.com",
			BodySelectors:    []string{`[data-testid="paragraph-container"]`, "div.article-body__content"},
			AuthorSelectors:  []string{`[rel="author"]`, "a.author-name"},
			DateSelectors:    []string{"time[datetime]"},
			ExcludeSelectors: []string{"div.read-next", "div.disclaimer"},
		},
		{
			Domain:           "apnews.com",
			BodySelectors:    []string{"div.RichTextStoryBody", "main .Article"},
			AuthorSelectors:  []string{"div.Page-authors a", "span.Link"},
			DateSelectors:    []string{"bsp-timestamp", "div.Page-dateModified"},
			ExcludeSelectors: []string{"div.Enhancement"},
		},
		{
			Domain:           "washingtonpost.com",
			BodySelectors:    []string{"div.article-body", "article .teaser-content"},
			AuthorSelectors:  []string{`a[data-qa="author-name"]`, "span.author-name"},
			DateSelectors:    []string{`span[data-testid="display-date"]`, "time[datetime]"},
			ExcludeSelectors: []string{"div.interstitial", "div.newsletter-inline-unit"},
		},
		{
			Domain:           "bloomberg.com",
			BodySelectors:    []string{"div.body-content", "div.body-copy-v2"},
			AuthorSelectors:  []string{`a[rel="author"]`, "div.author-v2"},
			DateSelectors:    []string{"time[datetime]"},
			ExcludeSelectors: []string{"aside", "div.page-ad"},
		},
		{
			Domain:           "medium.com",
			BodySelectors:    []string{"article section", "div.postArticle-content"},
			AuthorSelectors:  []string{`a[data-testid="authorName"]`, `[rel="author"]`},
			DateSelectors:    []string{`[data-testid="storyPublishDate"]`, "time[datetime]"},
			ExcludeSelectors: []string{"div.speechify-ignore"},
		},
	}
}
