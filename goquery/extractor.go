package goquery

import (
	"strings"
	"time"

	"github.com/fwojciec/newsclip"
)

// Ensure Extractor implements newsclip.ArticleExtractor at compile time.
var _ newsclip.ArticleExtractor = (*Extractor)(nil)

// Extractor turns a fetched document into an article by running the field
// extractors against a freshly parsed tree. A missing author, date, title,
// or description degrades the quality score rather than failing the
// extraction; only a missing body is fatal.
type Extractor struct {
	profiles newsclip.ProfileRegistry
	fallback newsclip.BodyExtractor
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithBodyFallback sets a generic body extractor consulted when
// selector-based body extraction yields nothing.
func WithBodyFallback(f newsclip.BodyExtractor) ExtractorOption {
	return func(e *Extractor) {
		e.fallback = f
	}
}

// NewExtractor creates an Extractor. The profile registry may be nil, in
// which case only generic heuristics run.
func NewExtractor(profiles newsclip.ProfileRegistry, opts ...ExtractorOption) *Extractor {
	e := &Extractor{profiles: profiles}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses the document and recovers the article fields. The source
// is re-parsed fresh on every call; parsed trees are never shared across
// attempts.
func (e *Extractor) Extract(src *newsclip.SourceDocument) (*newsclip.Article, error) {
	doc, err := Parse(src.HTML)
	if err != nil {
		return nil, err
	}

	canonical := src.FinalURL
	if canonical == "" {
		canonical = src.URL
	}
	domain := newsclip.ApexDomain(canonical)

	var profile *newsclip.SiteProfile
	if e.profiles != nil {
		profile = e.profiles.Lookup(domain)
	}

	title := newsclip.TitleNotFound
	if c := ExtractTitle(doc); c != nil {
		title = c.Value
	}

	authors, _ := ExtractAuthors(doc, profile)

	publishedAt := ""
	if c := ExtractDate(doc, profile); c != nil {
		publishedAt = c.Value
	}

	body := ""
	if c := ExtractBody(doc, profile); c != nil {
		body = c.Value
	}
	if strings.TrimSpace(body) == "" && e.fallback != nil {
		if fb, err := e.fallback.ExtractBody(src.HTML); err == nil {
			body = strings.TrimSpace(fb)
		}
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, newsclip.Errorf(newsclip.ENOTFOUND, "no article content in document from %s", canonical)
	}

	description := ""
	if c := ExtractDescription(doc); c != nil {
		description = c.Value
	}

	return &newsclip.Article{
		Title:        title,
		Authors:      authors,
		PublishedAt:  publishedAt,
		Body:         body,
		Description:  description,
		Domain:       domain,
		CanonicalURL: canonical,
		Topic:        newsclip.ClassifyTopic(title, body),
		Quality:      newsclip.Assess(body, title, authors, publishedAt),
		Method:       src.Method,
		ExtractedAt:  time.Now().UTC(),
	}, nil
}
