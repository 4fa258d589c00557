package goquery

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsclip"
)

// dateTextHead bounds how much visible text the date regexes scan.
const dateTextHead = 2000

// dateMetaSelectors are the known date meta-tag variants, tried in order.
var dateMetaSelectors = []string{
	`meta[property="article:published_time"]`,
	`meta[name="article:published_time"]`,
	`meta[itemprop="datePublished"]`,
	`meta[name="date"]`,
	`meta[name="pubdate"]`,
	`meta[name="publishdate"]`,
	`meta[name="publish-date"]`,
	`meta[name="parsely-pub-date"]`,
	`meta[name="sailthru.date"]`,
	`meta[name="dc.date"]`,
}

// dateLDFields are the structured-data date fields, tried in order.
var dateLDFields = []string{"datePublished", "dateCreated", "publishedDate", "date"}

// dateClassSelectors locate elements whose class names suggest a timestamp.
var dateClassSelectors = []string{
	`[class*="publish"]`,
	`[class*="date"]`,
	`[class*="timestamp"]`,
	`[class*="posted"]`,
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june", "july",
	"august", "september", "october", "november", "december",
	"jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept",
	"oct", "nov", "dec",
}

var (
	yearRE         = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	numericGroupRE = regexp.MustCompile(`\d{1,4}[/\-.]\d{1,2}[/\-.]\d{1,4}`)
	isoDateRE      = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
)

// dateTextREs scan the head of the visible text, in order.
var dateTextREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:published|updated)[:\s]+([^\n|]{6,60})`),
	regexp.MustCompile(`(?i)((?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2},?\s+(?:19|20)\d{2})`),
	regexp.MustCompile(`(?i)(\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+(?:19|20)\d{2})`),
	regexp.MustCompile(`(\d{1,4}[/-]\d{1,2}[/-]\d{1,4})`),
}

// ExtractDate recovers a validated publication date string. Normalization
// to a canonical timestamp is a caller responsibility; the extractor
// guarantees only a human-meaningful date string containing a plausible
// year and a month reference.
func ExtractDate(doc *Document, profile *newsclip.SiteProfile) *newsclip.FieldCandidate {
	if profile != nil {
		for _, sel := range profile.DateSelectors {
			if date := dateFromSelection(doc.Find(sel)); date != "" {
				return dateCandidate(date, newsclip.StrategySiteProfile, 0.95)
			}
		}
	}

	for _, sel := range dateMetaSelectors {
		if content, ok := doc.Find(sel).First().Attr("content"); ok {
			if date := NormalizeWhitespace(content); ValidDate(date) {
				return dateCandidate(date, newsclip.StrategyMetaTag, 0.95)
			}
		}
	}

	for _, obj := range doc.StructuredData() {
		for _, field := range dateLDFields {
			if date := NormalizeWhitespace(ldString(obj, field)); ValidDate(date) {
				return dateCandidate(date, newsclip.StrategyStructuredData, 0.9)
			}
		}
	}

	if date := dateFromSelection(doc.Find("time[datetime]")); date != "" {
		return dateCandidate(date, newsclip.StrategySemanticMarkup, 0.85)
	}

	for _, sel := range dateClassSelectors {
		if date := dateFromSelection(doc.Find(sel)); date != "" {
			return dateCandidate(date, newsclip.StrategyClassPattern, 0.6)
		}
	}

	head := doc.TextHead(dateTextHead)
	for _, re := range dateTextREs {
		for _, m := range re.FindAllStringSubmatch(head, -1) {
			if len(m) > 1 {
				if date := NormalizeWhitespace(m[1]); ValidDate(date) {
					return dateCandidate(date, newsclip.StrategyTextPattern, 0.4)
				}
			}
		}
	}

	return nil
}

func dateCandidate(value string, strategy newsclip.FieldStrategy, confidence float64) *newsclip.FieldCandidate {
	return &newsclip.FieldCandidate{Value: value, Strategy: strategy, Confidence: confidence}
}

// dateFromSelection checks the datetime attribute, then the element text,
// of every matched element and returns the first valid date string.
func dateFromSelection(sel *goquery.Selection) string {
	found := ""
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if dt, ok := s.Attr("datetime"); ok {
			if date := NormalizeWhitespace(dt); ValidDate(date) {
				found = date
				return false
			}
		}
		if date := NormalizeWhitespace(s.Text()); len(date) <= 80 && ValidDate(date) {
			found = date
			return false
		}
		return true
	})
	return found
}

// ValidDate accepts a string only if it contains a four-digit year in
// 1900-2099 and either a recognizable month name or a numeric day/month
// grouping.
func ValidDate(s string) bool {
	if s == "" {
		return false
	}

	yearMatch := yearRE.FindString(s)
	if yearMatch == "" {
		return false
	}
	year, err := strconv.Atoi(yearMatch)
	if err != nil || year < 1900 || year > 2099 {
		return false
	}

	lower := strings.ToLower(s)
	for _, month := range monthNames {
		if strings.Contains(lower, month) {
			return true
		}
	}

	return numericGroupRE.MatchString(s) || isoDateRE.MatchString(s)
}
