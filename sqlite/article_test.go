package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB returns an open in-memory database, closed on test cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

// testArticle returns a valid article for persistence tests.
func testArticle() *newsclip.Article {
	return &newsclip.Article{
		Title:        "Markets Rally on Rate Decision",
		Authors:      []string{"Jane Doe", "John Smith"},
		PublishedAt:  "2026-08-20T09:00:00Z",
		Body:         "Stocks climbed after the central bank held rates steady.",
		Description:  "Stocks climbed after the decision.",
		Domain:       "example-news.com",
		CanonicalURL: "https://www.example-news.com/story/markets-rally",
		Topic:        "business",
		Quality: newsclip.Quality{
			ContentScore: 0.5,
			TitleScore:   1,
			AuthorScore:  1,
			DateScore:    1,
			Overall:      0.875,
			Grade:        newsclip.GradeExcellent,
		},
		Method: newsclip.MethodDirect,
	}
}

func TestArticleService_CreateArticle(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		article := testArticle()

		err := s.CreateArticle(context.Background(), article)

		require.NoError(t, err)
		assert.NotEmpty(t, article.ID)
		assert.NotEmpty(t, article.ContentHash)
		assert.False(t, article.ExtractedAt.IsZero())
	})

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		article := testArticle()
		require.NoError(t, s.CreateArticle(context.Background(), article))

		got, err := s.FindArticleByID(context.Background(), article.ID)

		require.NoError(t, err)
		assert.Equal(t, article.Title, got.Title)
		assert.Equal(t, []string{"Jane Doe", "John Smith"}, got.Authors)
		assert.Equal(t, article.PublishedAt, got.PublishedAt)
		assert.Equal(t, article.Body, got.Body)
		assert.Equal(t, article.Description, got.Description)
		assert.Equal(t, article.Domain, got.Domain)
		assert.Equal(t, article.CanonicalURL, got.CanonicalURL)
		assert.Equal(t, article.Topic, got.Topic)
		assert.Equal(t, article.Quality, got.Quality)
		assert.Equal(t, newsclip.MethodDirect, got.Method)
		assert.Equal(t, article.ContentHash, got.ContentHash)
	})

	t.Run("identical bodies produce identical hashes", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		a := testArticle()
		b := testArticle()
		b.CanonicalURL = "https://www.example-news.com/story/syndicated-copy"

		require.NoError(t, s.CreateArticle(context.Background(), a))
		require.NoError(t, s.CreateArticle(context.Background(), b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("rejects article without body", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		article := testArticle()
		article.Body = ""

		err := s.CreateArticle(context.Background(), article)

		require.Error(t, err)
		assert.Equal(t, newsclip.EINVALID, newsclip.ErrorCode(err))
	})
}

func TestArticleService_FindArticleByID(t *testing.T) {
	t.Parallel()

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))

		_, err := s.FindArticleByID(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, newsclip.ENOTFOUND, newsclip.ErrorCode(err))
	})
}

func TestArticleService_FindArticles(t *testing.T) {
	t.Parallel()

	t.Run("filters by domain", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		a := testArticle()
		require.NoError(t, s.CreateArticle(ctx, a))

		b := testArticle()
		b.Domain = "other-news.org"
		b.CanonicalURL = "https://other-news.org/story/1"
		require.NoError(t, s.CreateArticle(ctx, b))

		domain := "example-news.com"
		got, err := s.FindArticles(ctx, newsclip.ArticleFilter{Domain: &domain})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)
	})

	t.Run("filters by canonical URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		a := testArticle()
		require.NoError(t, s.CreateArticle(ctx, a))

		url := a.CanonicalURL
		got, err := s.FindArticles(ctx, newsclip.ArticleFilter{CanonicalURL: &url})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)
	})

	t.Run("returns newest first with pagination", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		old := testArticle()
		old.ExtractedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		require.NoError(t, s.CreateArticle(ctx, old))

		fresh := testArticle()
		fresh.CanonicalURL = "https://www.example-news.com/story/newer"
		fresh.ExtractedAt = time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
		require.NoError(t, s.CreateArticle(ctx, fresh))

		got, err := s.FindArticles(ctx, newsclip.ArticleFilter{Limit: 1})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, fresh.ID, got[0].ID)

		got, err = s.FindArticles(ctx, newsclip.ArticleFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, old.ID, got[0].ID)
	})
}

func TestArticleService_DeleteArticle(t *testing.T) {
	t.Parallel()

	t.Run("removes an existing article", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))
		ctx := context.Background()

		article := testArticle()
		require.NoError(t, s.CreateArticle(ctx, article))

		require.NoError(t, s.DeleteArticle(ctx, article.ID))

		_, err := s.FindArticleByID(ctx, article.ID)
		assert.Equal(t, newsclip.ENOTFOUND, newsclip.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewArticleService(mustOpenDB(t))

		err := s.DeleteArticle(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, newsclip.ENOTFOUND, newsclip.ErrorCode(err))
	})
}
