package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/newsclip"
	newshttp "github.com/fwojciec/newsclip/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articlePage is a response comfortably above the minimum accepted size.
func articlePage() string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html><html><head><title>Story</title></head><body><article>")
	for range 60 {
		sb.WriteString("<p>A paragraph of article text long enough to pad the page out to a realistic size for testing.</p>")
	}
	sb.WriteString("</article></body></html>")
	return sb.String()
}

func TestCrawlerIdentity_Attempt(t *testing.T) {
	t.Parallel()

	t.Run("stops at first whitelisted identity", func(t *testing.T) {
		t.Parallel()

		var identities []string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua := r.Header.Get("User-Agent")
			identities = append(identities, ua)
			if !strings.Contains(ua, "Googlebot") {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.Write([]byte(articlePage()))
		}))
		defer srv.Close()

		f := newshttp.NewCrawlerIdentity()
		defer f.Close()

		doc, err := f.Attempt(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, newsclip.MethodCrawlerIdentity, doc.Method)
		assert.Contains(t, doc.HTML, "article text")
		// Googlebot is the first identity, so exactly one request was made.
		assert.Len(t, identities, 1)
	})

	t.Run("skips identities returning short bodies", func(t *testing.T) {
		t.Parallel()

		var requests int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			ua := r.Header.Get("User-Agent")
			if strings.Contains(ua, "Googlebot") {
				// A 200 that is really a block page.
				w.Write([]byte("<html><body>Access denied</body></html>"))
				return
			}
			w.Write([]byte(articlePage()))
		}))
		defer srv.Close()

		f := newshttp.NewCrawlerIdentity()
		defer f.Close()

		doc, err := f.Attempt(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, 2, requests)
		assert.Contains(t, doc.HTML, "article text")
	})

	t.Run("fails when every identity is rejected", func(t *testing.T) {
		t.Parallel()

		var requests int
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		f := newshttp.NewCrawlerIdentity()
		defer f.Close()

		_, err := f.Attempt(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, 5, requests)

		var appErr *newsclip.Error
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, newsclip.MethodCrawlerIdentity, appErr.Strategy)
		assert.Equal(t, http.StatusForbidden, appErr.Status)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		f := newshttp.NewCrawlerIdentity()
		defer f.Close()

		_, err := f.Attempt(ctx, "http://example.com")

		require.ErrorIs(t, err, context.Canceled)
	})
}
