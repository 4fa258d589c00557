package goquery

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsclip"
)

// MaxAuthors caps the byline list on an extracted article.
const MaxAuthors = 5

// authorTextHead bounds how much visible text the byline regexes scan.
const authorTextHead = 1000

// authorMetaSelectors are the meta tag variants publishers use for bylines.
var authorMetaSelectors = []string{
	`meta[name="author"]`,
	`meta[property="article:author"]`,
	`meta[name="byl"]`,
	`meta[name="parsely-author"]`,
	`meta[name="sailthru.author"]`,
}

// authorSemanticSelectors locate byline elements by semantic markup.
var authorSemanticSelectors = []string{
	`[rel="author"]`,
	`[itemprop="author"] [itemprop="name"]`,
	`[itemprop="author"]`,
	`[itemtype*="schema.org/Person"] [itemprop="name"]`,
}

// authorClassRE matches class names that conventionally hold bylines.
var authorClassRE = regexp.MustCompile(`(?i)author|byline|writer|reporter|journalist|correspondent`)

// bylineTextREs scan the head of the visible text for "By NAME" patterns.
// Names never cross a line boundary.
var bylineTextREs = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*[Bb]y[: ]+([A-Z][\w.'-]*(?:[ \t]+[A-Z][\w.'-]*){1,3})`),
	regexp.MustCompile(`[Ww]ritten[ \t]+by[: ]+([A-Z][\w.'-]*(?:[ \t]+[A-Z][\w.'-]*){1,3})`),
	regexp.MustCompile(`[Aa]uthor[: ]+([A-Z][\w.'-]*(?:[ \t]+[A-Z][\w.'-]*){1,3})`),
}

// organizationalTerms disqualify a candidate as a person's byline.
var organizationalTerms = []string{
	"staff", "editor", "newsroom", "wire", "desk", "bureau", "agency",
	"admin", "team", "associated press", "reuters",
}

// authorPrefixRE strips byline lead-ins before validation.
var authorPrefixRE = regexp.MustCompile(`(?i)^(by|written by|author|story by|reported by)[:\s]+`)

var (
	emailRE       = regexp.MustCompile(`\S+@\S+`)
	handleRE      = regexp.MustCompile(`@\w+`)
	parentheticRE = regexp.MustCompile(`\([^)]*\)`)
)

// ExtractAuthors aggregates byline candidates from five independent
// strategies into a deduplicated list of at most MaxAuthors names. The
// returned strategy identifies the highest-precision strategy that
// contributed a validated name.
func ExtractAuthors(doc *Document, profile *newsclip.SiteProfile) ([]string, newsclip.FieldStrategy) {
	agg := newAuthorSet()

	if profile != nil {
		for _, sel := range profile.AuthorSelectors {
			doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
				agg.add(s.Text(), newsclip.StrategySiteProfile)
			})
		}
	}

	for _, sel := range authorMetaSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			if content, ok := s.Attr("content"); ok {
				agg.add(content, newsclip.StrategyMetaTag)
			}
		})
	}

	for _, obj := range doc.StructuredData() {
		if v, ok := obj["author"]; ok {
			for _, name := range ldNames(v) {
				agg.add(name, newsclip.StrategyStructuredData)
			}
		}
	}

	for _, sel := range authorSemanticSelectors {
		doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			agg.add(s.Text(), newsclip.StrategySemanticMarkup)
		})
	}

	// Byline-named classes, queried on the parsed tree rather than
	// reconstructed from raw markup.
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		class, _ := s.Attr("class")
		if !authorClassRE.MatchString(class) {
			return
		}
		// Skip containers; a byline element holds a short run of text.
		text := NormalizeWhitespace(s.Text())
		if len(text) > 120 {
			return
		}
		agg.add(text, newsclip.StrategyClassPattern)
	})

	head := doc.TextHead(authorTextHead)
	textREs := bylineTextREs
	if profile != nil && len(profile.AuthorPatterns) > 0 {
		// Concat rather than append: appending would write into the shared
		// profile's backing array whenever it has spare capacity.
		textREs = slices.Concat(profile.AuthorPatterns, bylineTextREs)
	}
	for _, re := range textREs {
		for _, m := range re.FindAllStringSubmatch(head, -1) {
			if len(m) > 1 {
				agg.add(m[1], newsclip.StrategyTextPattern)
			}
		}
	}

	return agg.names, agg.strategy
}

// authorSet deduplicates validated byline names case-insensitively and
// remembers the best strategy that contributed one.
type authorSet struct {
	names    []string
	seen     map[string]bool
	strategy newsclip.FieldStrategy
}

func newAuthorSet() *authorSet {
	return &authorSet{seen: make(map[string]bool)}
}

func (a *authorSet) add(raw string, strategy newsclip.FieldStrategy) {
	if len(a.names) >= MaxAuthors {
		return
	}

	// Byline elements often list several names.
	for _, part := range splitAuthorList(raw) {
		if len(a.names) >= MaxAuthors {
			return
		}
		name := CleanAuthor(part)
		if !ValidAuthor(name) {
			continue
		}
		key := strings.ToLower(name)
		if a.seen[key] {
			continue
		}
		a.seen[key] = true
		a.names = append(a.names, name)
		if a.strategy == "" {
			a.strategy = strategy
		}
	}
}

func splitAuthorList(raw string) []string {
	raw = strings.ReplaceAll(raw, " and ", ",")
	raw = strings.ReplaceAll(raw, " & ", ",")
	return strings.Split(raw, ",")
}

// CleanAuthor strips byline prefixes, email addresses, social handles, and
// parenthetical asides before validation.
func CleanAuthor(s string) string {
	s = authorPrefixRE.ReplaceAllString(strings.TrimSpace(s), "")
	s = emailRE.ReplaceAllString(s, "")
	s = handleRE.ReplaceAllString(s, "")
	s = parentheticRE.ReplaceAllString(s, "")
	s = NormalizeWhitespace(s)
	return strings.Trim(s, " ,;|-")
}

// ValidAuthor applies the first-plus-last-name heuristic: length 3-100, no
// organizational terms, a space or period present, leading uppercase, and
// all-caps strings rejected unless every token is short enough to be
// initials.
func ValidAuthor(name string) bool {
	if len(name) < 3 || len(name) > 100 {
		return false
	}

	lower := strings.ToLower(name)
	for _, term := range organizationalTerms {
		if strings.Contains(lower, term) {
			return false
		}
	}

	if !strings.ContainsAny(name, " .") {
		return false
	}

	first := []rune(name)[0]
	if !unicode.IsUpper(first) {
		return false
	}

	if name == strings.ToUpper(name) && strings.ContainsFunc(name, unicode.IsLetter) {
		for _, token := range strings.Fields(name) {
			if len(strings.Trim(token, ".")) > 3 {
				return false
			}
		}
	}

	return true
}
