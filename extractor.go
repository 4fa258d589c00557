package newsclip

import "context"

// ArticleExtractor turns a fetched document into an Article. The returned
// article always has a non-empty body and a quality score above zero; when
// that cannot be achieved the extractor returns an error instead of a
// partially populated record.
type ArticleExtractor interface {
	Extract(doc *SourceDocument) (*Article, error)
}

// BodyExtractor recovers main body text from raw HTML. It is consulted as
// a generic fallback when selector-based body extraction finds nothing.
type BodyExtractor interface {
	ExtractBody(html string) (string, error)
}

// URLExtractor runs the full pipeline for a single URL: fetch-strategy
// escalation, field extraction, and quality assessment.
type URLExtractor interface {
	ExtractURL(ctx context.Context, url string) (*Article, error)
}
