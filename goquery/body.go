package goquery

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsclip"
)

// Body qualification thresholds.
const (
	minBodyParagraphs  = 3
	minBodyLength      = 200
	minParagraphLength = 20
	minFallbackLength  = 50
)

// genericBodySelectors locate the article content container on sites
// without a profile, tried in order.
var genericBodySelectors = []string{
	"article",
	`[itemprop="articleBody"]`,
	"main",
	`[role="main"]`,
	"div.article-body",
	"div.article-content",
	"div.story-body",
	"div.post-content",
	"div.entry-content",
	"section.article-body",
	"div.content",
}

// bodyTextSelector picks the text-bearing elements within a container.
const bodyTextSelector = "p, h2, h3, h4, blockquote, li"

// chromeAncestors are regions whose text never belongs to the article body.
var chromeAncestors = []string{"nav", "header", "footer", "aside", "form"}

// boilerplatePhrases disqualify a paragraph regardless of length.
var boilerplatePhrases = []string{
	"cookie", "subscribe", "newsletter", "advertisement", "advertise",
	"privacy policy", "terms of service", "sign up", "sign in", "follow us",
	"read more", "related articles", "all rights reserved", "share this",
}

// ExtractBody recovers the article body text. It selects the first content
// container whose paragraphs qualify (at least minBodyParagraphs paragraphs
// totaling more than minBodyLength characters); if none qualifies it falls
// back to every paragraph on the page longer than minFallbackLength
// characters.
func ExtractBody(doc *Document, profile *newsclip.SiteProfile) *newsclip.FieldCandidate {
	selectors := genericBodySelectors
	strategy := newsclip.StrategySemanticMarkup
	confidence := 0.8
	if profile != nil && len(profile.BodySelectors) > 0 {
		// Concat rather than append: appending would write into the shared
		// profile's backing array whenever it has spare capacity.
		selectors = slices.Concat(profile.BodySelectors, genericBodySelectors)
	}

	for i, sel := range selectors {
		container := doc.Find(sel).First()
		if container.Length() == 0 {
			continue
		}

		paragraphs := collectParagraphs(container, profile)
		body := strings.Join(paragraphs, "\n\n")
		if len(paragraphs) >= minBodyParagraphs && len(body) > minBodyLength {
			if profile != nil && i < len(profile.BodySelectors) {
				strategy = newsclip.StrategySiteProfile
				confidence = 0.9
			}
			return &newsclip.FieldCandidate{Value: body, Strategy: strategy, Confidence: confidence}
		}
	}

	// No container qualified: take every sufficiently long paragraph.
	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := NormalizeWhitespace(s.Text())
		if len(text) > minFallbackLength && !isBoilerplate(text) {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return nil
	}
	return &newsclip.FieldCandidate{
		Value:      strings.Join(paragraphs, "\n\n"),
		Strategy:   newsclip.StrategyFallback,
		Confidence: 0.4,
	}
}

// collectParagraphs gathers qualifying text elements within a container,
// excluding page chrome, short paragraphs, boilerplate, and any
// profile-excluded regions.
func collectParagraphs(container *goquery.Selection, profile *newsclip.SiteProfile) []string {
	var paragraphs []string

	container.Find(bodyTextSelector).Each(func(_ int, s *goquery.Selection) {
		if underChrome(s) {
			return
		}
		if profile != nil && underExcluded(s, profile.ExcludeSelectors) {
			return
		}
		text := NormalizeWhitespace(s.Text())
		if len(text) < minParagraphLength || isBoilerplate(text) {
			return
		}
		paragraphs = append(paragraphs, text)
	})

	return paragraphs
}

// underChrome reports whether the element sits inside navigation, header,
// footer, aside, or form markup.
func underChrome(s *goquery.Selection) bool {
	for parent := s.Parent(); parent.Length() > 0; parent = parent.Parent() {
		tag := goquery.NodeName(parent)
		for _, chrome := range chromeAncestors {
			if tag == chrome {
				return true
			}
		}
	}
	return false
}

func underExcluded(s *goquery.Selection, selectors []string) bool {
	for _, sel := range selectors {
		if s.Closest(sel).Length() > 0 {
			return true
		}
	}
	return false
}

func isBoilerplate(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
