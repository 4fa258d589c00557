package goquery

import "github.com/fwojciec/newsclip"

// minDescriptionLength rejects descriptions too short to be useful.
const minDescriptionLength = 20

// descriptionMetaSelectors are tried in order.
var descriptionMetaSelectors = []string{
	`meta[property="og:description"]`,
	`meta[name="description"]`,
	`meta[name="twitter:description"]`,
	`meta[property="twitter:description"]`,
	`meta[name="sailthru.description"]`,
}

// ExtractDescription recovers the article summary from the meta-tag cascade
// or structured data. Accepted only if longer than minDescriptionLength.
func ExtractDescription(doc *Document) *newsclip.FieldCandidate {
	for _, sel := range descriptionMetaSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if v := NormalizeWhitespace(content); len(v) > minDescriptionLength {
				return &newsclip.FieldCandidate{
					Value:      v,
					Strategy:   newsclip.StrategyMetaTag,
					Confidence: 0.9,
				}
			}
		}
	}

	for _, obj := range doc.StructuredData() {
		if v := NormalizeWhitespace(ldString(obj, "description")); len(v) > minDescriptionLength {
			return &newsclip.FieldCandidate{
				Value:      v,
				Strategy:   newsclip.StrategyStructuredData,
				Confidence: 0.85,
			}
		}
	}

	return nil
}
