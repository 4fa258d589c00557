package newsclip

import (
	"context"
	"time"
)

// FieldStrategy identifies which sub-strategy produced a field value.
type FieldStrategy string

// Field extraction sub-strategies, in rough precision order.
const (
	StrategySiteProfile    FieldStrategy = "site_profile"
	StrategyMetaTag        FieldStrategy = "meta_tag"
	StrategyStructuredData FieldStrategy = "structured_data"
	StrategySemanticMarkup FieldStrategy = "semantic_markup"
	StrategyClassPattern   FieldStrategy = "class_pattern"
	StrategyTextPattern    FieldStrategy = "text_pattern"
	StrategyPageTitle      FieldStrategy = "page_title"
	StrategyFallback       FieldStrategy = "fallback"
)

// FieldCandidate is the result of one field extractor invocation.
type FieldCandidate struct {
	Value      string        `json:"value"`
	Strategy   FieldStrategy `json:"strategy"`
	Confidence float64       `json:"confidence"`
}

// Article is the normalized record produced by a successful extraction.
type Article struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Authors      []string  `json:"authors"`
	PublishedAt  string    `json:"publishedAt"`
	Body         string    `json:"body"`
	Description  string    `json:"description"`
	Domain       string    `json:"domain"`
	CanonicalURL string    `json:"canonicalUrl"`
	Topic        string    `json:"topic"`
	Quality      Quality   `json:"quality"`
	Method       Method    `json:"method"`
	ContentHash  string    `json:"contentHash"`
	ExtractedAt  time.Time `json:"extractedAt"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.CanonicalURL == "" {
		return Errorf(EINVALID, "article canonical URL required")
	}
	if a.Body == "" {
		return Errorf(EINVALID, "article body required")
	}
	return nil
}

// ArticleService represents a service for persisting extraction results.
type ArticleService interface {
	// CreateArticle saves a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID           *string `json:"id"`
	Domain       *string `json:"domain"`
	CanonicalURL *string `json:"canonicalUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
