package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsclip"
)

// titleMetaSelectors are tried in order; the first non-empty content wins.
var titleMetaSelectors = []string{
	`meta[property="og:title"]`,
	`meta[name="twitter:title"]`,
	`meta[property="twitter:title"]`,
	`meta[property="article:title"]`,
	`meta[itemprop="headline"]`,
}

// siteNameIndicators are words that mark a title fragment as the site name
// rather than the headline.
var siteNameIndicators = []string{
	"news", "times", "post", "daily", "herald", "tribune", "journal",
	"gazette", "magazine", "media", "network", "online", "official",
	"home", ".com",
}

// titleSeparators split a headline from an appended site name.
var titleSeparators = []string{" - ", " | ", " — ", " :: ", " » ", " • "}

// ExtractTitle recovers the article headline. Strategy order: meta tags,
// structured data, ranked <h1> candidates, then the page <title> element.
func ExtractTitle(doc *Document) *newsclip.FieldCandidate {
	if title := titleFromMeta(doc); title != "" {
		return &newsclip.FieldCandidate{
			Value:      stripSiteName(title),
			Strategy:   newsclip.StrategyMetaTag,
			Confidence: 0.95,
		}
	}

	if title := titleFromStructuredData(doc); title != "" {
		return &newsclip.FieldCandidate{
			Value:      stripSiteName(title),
			Strategy:   newsclip.StrategyStructuredData,
			Confidence: 0.9,
		}
	}

	if title := titleFromHeadings(doc); title != "" {
		return &newsclip.FieldCandidate{
			Value:      stripSiteName(title),
			Strategy:   newsclip.StrategySemanticMarkup,
			Confidence: 0.7,
		}
	}

	if title := NormalizeWhitespace(doc.Find("title").First().Text()); title != "" {
		return &newsclip.FieldCandidate{
			Value:      stripSiteName(title),
			Strategy:   newsclip.StrategyPageTitle,
			Confidence: 0.5,
		}
	}

	return nil
}

func titleFromMeta(doc *Document) string {
	for _, sel := range titleMetaSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if v := NormalizeWhitespace(content); v != "" {
				return v
			}
		}
	}
	// itemprop=headline may also annotate a visible element rather than a meta tag.
	if v := NormalizeWhitespace(doc.Find(`[itemprop="headline"]`).First().Text()); v != "" {
		return v
	}
	return ""
}

func titleFromStructuredData(doc *Document) string {
	for _, obj := range doc.StructuredData() {
		if headline := ldString(obj, "headline"); headline != "" {
			return NormalizeWhitespace(headline)
		}
	}
	return ""
}

// ancestorClassHints mark containers that usually hold the real headline.
var ancestorClassHints = []string{"article", "content", "main", "story", "post"}

// ownClassHints mark an h1 that labels itself as the headline.
var ownClassHints = []string{"title", "headline"}

// titleFromHeadings scores every <h1> and returns the text of the highest
// scoring one. Ancestor class hints score +10, own class hints +5, and a
// length in the 20-200 range +3.
func titleFromHeadings(doc *Document) string {
	best := ""
	bestScore := -1

	doc.Find("h1").Each(func(_ int, sel *goquery.Selection) {
		text := NormalizeWhitespace(sel.Text())
		if text == "" {
			return
		}

		score := 0
		for parent := sel.Parent(); parent.Length() > 0; parent = parent.Parent() {
			class, _ := parent.Attr("class")
			if classContainsAny(class, ancestorClassHints) {
				score += 10
				break
			}
		}
		if class, _ := sel.Attr("class"); classContainsAny(class, ownClassHints) {
			score += 5
		}
		if len(text) >= 20 && len(text) <= 200 {
			score += 3
		}

		if score > bestScore {
			best = text
			bestScore = score
		}
	})

	return best
}

func classContainsAny(class string, hints []string) bool {
	class = strings.ToLower(class)
	for _, hint := range hints {
		if strings.Contains(class, hint) {
			return true
		}
	}
	return false
}

// stripSiteName removes a site-name fragment appended to (or prepended
// before) the headline. Fragments are compared by length and checked for
// site-name indicator words; the headline is assumed to be the longer part.
func stripSiteName(title string) string {
	for _, sep := range titleSeparators {
		if !strings.Contains(title, sep) {
			continue
		}
		parts := strings.Split(title, sep)
		if len(parts) < 2 {
			continue
		}

		first := strings.TrimSpace(parts[0])
		last := strings.TrimSpace(parts[len(parts)-1])

		if looksLikeSiteName(last, first) {
			title = strings.TrimSpace(strings.Join(parts[:len(parts)-1], sep))
			continue
		}
		// A leading fragment is dropped only on an indicator word; length
		// alone is too weak a signal at the front of a headline.
		if hasSiteIndicator(first) && len(first) < len(last) {
			title = strings.TrimSpace(strings.Join(parts[1:], sep))
		}
	}
	return title
}

// looksLikeSiteName reports whether fragment reads as a site name relative
// to the other fragment: distinctly shorter, or carrying an indicator word.
func looksLikeSiteName(fragment, other string) bool {
	if fragment == "" {
		return false
	}
	if hasSiteIndicator(fragment) {
		return true
	}
	return len(fragment)*2 < len(other) && len(fragment) <= 30
}

func hasSiteIndicator(fragment string) bool {
	lower := strings.ToLower(fragment)
	for _, word := range siteNameIndicators {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
