package goquery_test

import (
	"testing"

	"github.com/fwojciec/newsclip"
	"github.com/fwojciec/newsclip/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.Parse(html)
	require.NoError(t, err)
	return doc
}

func TestExtractTitle_MetaOutranksEverything(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><head>
<title>Page Title</title>
<meta property="og:title" content="Meta Headline">
<script type="application/ld+json">{"headline":"LD Headline"}</script>
</head><body><h1>H1 Headline Of Reasonable Length</h1></body></html>`)

	c := goquery.ExtractTitle(doc)

	require.NotNil(t, c)
	assert.Equal(t, "Meta Headline", c.Value)
	assert.Equal(t, newsclip.StrategyMetaTag, c.Strategy)
}

func TestExtractTitle_StructuredDataBeforeHeadings(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><head>
<script type="application/ld+json">{"@graph":[{"@type":"NewsArticle","headline":"Graph Headline"}]}</script>
</head><body><h1>Visible Heading</h1></body></html>`)

	c := goquery.ExtractTitle(doc)

	require.NotNil(t, c)
	assert.Equal(t, "Graph Headline", c.Value)
	assert.Equal(t, newsclip.StrategyStructuredData, c.Strategy)
}

func TestExtractTitle_RankedHeadings(t *testing.T) {
	t.Parallel()

	// The h1 inside an article-classed ancestor outranks the site banner h1.
	doc := parseDoc(t, `<html><body>
<div class="site-banner"><h1>Site Banner</h1></div>
<div class="article-wrapper"><h1 class="headline">The Actual Story Headline Here</h1></div>
</body></html>`)

	c := goquery.ExtractTitle(doc)

	require.NotNil(t, c)
	assert.Equal(t, "The Actual Story Headline Here", c.Value)
	assert.Equal(t, newsclip.StrategySemanticMarkup, c.Strategy)
}

func TestExtractTitle_PageTitleLastResort(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><head><title>Example</title></head><body><p>text</p></body></html>`)

	c := goquery.ExtractTitle(doc)

	require.NotNil(t, c)
	assert.Equal(t, "Example", c.Value)
	assert.Equal(t, newsclip.StrategyPageTitle, c.Strategy)
}

func TestExtractTitle_StripsSiteNameSuffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"dash separator", `Budget Vote Delayed Until Spring Session - The Daily Times`, "Budget Vote Delayed Until Spring Session"},
		{"pipe separator", `Budget Vote Delayed Until Spring Session | Example News`, "Budget Vote Delayed Until Spring Session"},
		{"em dash", `Budget Vote Delayed Until Spring Session — Herald Online`, "Budget Vote Delayed Until Spring Session"},
		{"bullet", `Budget Vote Delayed Until Spring Session • The Gazette`, "Budget Vote Delayed Until Spring Session"},
		{"site name first", `Tribune News | Budget Vote Delayed Until Spring Session`, "Budget Vote Delayed Until Spring Session"},
		{"no site name", `Why 4 - 3 Was the Final Score Nobody Predicted in the End`, "Why 4 - 3 Was the Final Score Nobody Predicted in the End"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := parseDoc(t, `<html><head><meta property="og:title" content="`+tt.raw+`"></head><body></body></html>`)
			c := goquery.ExtractTitle(doc)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.Value)
		})
	}
}

func TestExtractTitle_NothingFound(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body><p>no title anywhere</p></body></html>`)

	assert.Nil(t, goquery.ExtractTitle(doc))
}
