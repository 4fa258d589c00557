package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/newsclip"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ newsclip.ArticleService = (*ArticleService)(nil)

// ArticleService implements newsclip.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateArticle saves a new article, assigning its ID and content hash.
func (s *ArticleService) CreateArticle(ctx context.Context, article *newsclip.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	if article.ContentHash == "" {
		article.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(article.Body))
	}
	if article.ExtractedAt.IsZero() {
		article.ExtractedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (
			id, title, authors, published_at, body, description, domain,
			canonical_url, topic, content_score, title_score, author_score,
			date_score, overall_score, grade, method, content_hash, extracted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Title, joinAuthors(article.Authors), article.PublishedAt,
		article.Body, article.Description, article.Domain, article.CanonicalURL,
		article.Topic, article.Quality.ContentScore, article.Quality.TitleScore,
		article.Quality.AuthorScore, article.Quality.DateScore, article.Quality.Overall,
		string(article.Quality.Grade), string(article.Method), article.ContentHash,
		article.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*newsclip.Article, error) {
	row := s.db.QueryRowContext(ctx, selectArticle+" WHERE id = ?", id)

	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, newsclip.Errorf(newsclip.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter newsclip.ArticleFilter) ([]*newsclip.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString(selectArticle + " WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}
	if filter.CanonicalURL != nil {
		query.WriteString(" AND canonical_url = ?")
		args = append(args, *filter.CanonicalURL)
	}

	query.WriteString(" ORDER BY extracted_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*newsclip.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return newsclip.Errorf(newsclip.ENOTFOUND, "article not found")
	}

	return nil
}

const selectArticle = `
	SELECT id, title, authors, published_at, body, description, domain,
	       canonical_url, topic, content_score, title_score, author_score,
	       date_score, overall_score, grade, method, content_hash, extracted_at
	FROM articles`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(sc scanner) (*newsclip.Article, error) {
	var article newsclip.Article
	var authors, grade, method, extractedAt string

	err := sc.Scan(&article.ID, &article.Title, &authors, &article.PublishedAt,
		&article.Body, &article.Description, &article.Domain, &article.CanonicalURL,
		&article.Topic, &article.Quality.ContentScore, &article.Quality.TitleScore,
		&article.Quality.AuthorScore, &article.Quality.DateScore,
		&article.Quality.Overall, &grade, &method, &article.ContentHash, &extractedAt)
	if err != nil {
		return nil, err
	}

	article.Authors = splitAuthors(authors)
	article.Quality.Grade = newsclip.Grade(grade)
	article.Method = newsclip.Method(method)
	article.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// joinAuthors flattens the author list for storage. Newlines cannot occur
// within a validated author name.
func joinAuthors(authors []string) string {
	return strings.Join(authors, "\n")
}

func splitAuthors(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
