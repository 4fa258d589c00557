package goquery_test

import (
	"testing"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate_MetaTagFirst(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><head>
<meta property="article:published_time" content="2024-05-01T10:30:00Z">
<script type="application/ld+json">{"datePublished":"2023-01-01"}</script>
</head><body><time datetime="2022-02-02">Feb 2, 2022</time></body></html>`)

	c := goquery.ExtractDate(doc, nil)

	require.NotNil(t, c)
	assert.Equal(t, "2024-05-01T10:30:00Z", c.Value)
	assert.Equal(t, newsclip.StrategyMetaTag, c.Strategy)
}

func TestExtractDate_StructuredDataFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ld   string
		want string
	}{
		{"datePublished", `{"datePublished":"2024-05-01"}`, "2024-05-01"},
		{"dateCreated", `{"dateCreated":"2024-05-02"}`, "2024-05-02"},
		{"publishedDate", `{"publishedDate":"May 3, 2024"}`, "May 3, 2024"},
		{"date in @graph", `{"@graph":[{"date":"2024-05-04"}]}`, "2024-05-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := parseDoc(t, `<html><head><script type="application/ld+json">`+tt.ld+`</script></head><body></body></html>`)
			c := goquery.ExtractDate(doc, nil)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.Value)
			assert.Equal(t, newsclip.StrategyStructuredData, c.Strategy)
		})
	}
}

func TestExtractDate_TimeElement(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body><time datetime="2024-05-01T08:00:00Z">May 1</time></body></html>`)

	c := goquery.ExtractDate(doc, nil)

	require.NotNil(t, c)
	assert.Equal(t, "2024-05-01T08:00:00Z", c.Value)
	assert.Equal(t, newsclip.StrategySemanticMarkup, c.Strategy)
}

func TestExtractDate_ClassPattern(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body><span class="article-timestamp">March 12, 2024</span></body></html>`)

	c := goquery.ExtractDate(doc, nil)

	require.NotNil(t, c)
	assert.Equal(t, "March 12, 2024", c.Value)
	assert.Equal(t, newsclip.StrategyClassPattern, c.Strategy)
}

func TestExtractDate_TextPattern(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body>
<div>Published: April 2, 2024</div>
<p>Story text follows.</p>
</body></html>`)

	c := goquery.ExtractDate(doc, nil)

	require.NotNil(t, c)
	assert.Equal(t, newsclip.StrategyTextPattern, c.Strategy)
	assert.Contains(t, c.Value, "April 2, 2024")
}

func TestExtractDate_RejectsInvalidCandidates(t *testing.T) {
	t.Parallel()

	// The meta date has no year, so the strategy cascade continues to the
	// structured data.
	doc := parseDoc(t, `<html><head>
<meta name="date" content="sometime in spring">
<script type="application/ld+json">{"datePublished":"2024-05-01"}</script>
</head><body></body></html>`)

	c := goquery.ExtractDate(doc, nil)

	require.NotNil(t, c)
	assert.Equal(t, "2024-05-01", c.Value)
}

func TestExtractDate_NothingFound(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body><p>No dates here at all.</p></body></html>`)

	assert.Nil(t, goquery.ExtractDate(doc, nil))
}

func TestValidDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"iso date", "2024-05-01", true},
		{"iso timestamp", "2024-05-01T10:00:00Z", true},
		{"month name date", "May 1, 2024", true},
		{"day month year", "1 May 2024", true},
		{"slash date", "05/01/2024", true},
		{"year out of range", "May 1, 2150", false},
		{"year too old", "May 1, 1850", false},
		{"year only", "2024", false},
		{"no year", "May 1", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, goquery.ValidDate(tt.in))
		})
	}
}
