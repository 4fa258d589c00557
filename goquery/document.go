// Package goquery provides the markup parser, field extractors, and site
// profile registry used by the extraction pipeline. HTML is parsed
// permissively (matching browser leniency) since publisher markup is
// frequently invalid.
package goquery

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/newsclip"
)

// Document wraps a parsed HTML page with the queries the field extractors
// need. It is a read-only view scoped to a single extraction attempt.
type Document struct {
	doc *goquery.Document
	raw string
}

// Parse builds a queryable Document from raw markup. It fails with EINVALID
// only when the input cannot be tokenized at all (empty or binary input);
// unbalanced tags are tolerated.
func Parse(raw string) (*Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, newsclip.Errorf(newsclip.EINVALID, "empty document")
	}
	if strings.ContainsRune(raw, '\x00') {
		return nil, newsclip.Errorf(newsclip.EINVALID, "binary input is not a document")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, newsclip.Errorf(newsclip.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Document{doc: doc, raw: raw}, nil
}

// Find returns all elements matching the CSS selector.
func (d *Document) Find(selector string) *goquery.Selection {
	return d.doc.Find(selector)
}

// Raw returns the original markup the document was parsed from.
func (d *Document) Raw() string {
	return d.raw
}

var whitespaceRE = regexp.MustCompile(`\s+`)

// Text returns the visible body text of the page. Script, style, and
// template contents are excluded so byline and date patterns never match
// embedded JSON-LD or JavaScript. When normalize is true, runs of whitespace
// are collapsed to single spaces.
func (d *Document) Text(normalize bool) string {
	sel := d.doc.Find("body")
	if sel.Length() == 0 {
		sel = d.doc.Selection
	}
	// Clone before pruning so the parsed tree stays intact for selector
	// queries.
	sel = sel.Clone()
	sel.Find("script, style, noscript, template").Remove()
	text := sel.Text()
	if normalize {
		text = NormalizeWhitespace(text)
	}
	return text
}

// NormalizeWhitespace collapses runs of whitespace to single spaces and
// trims the result.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

var spacesRE = regexp.MustCompile(`[ \t]+`)

// TextHead returns up to n characters of visible text with line structure
// preserved: spaces are collapsed within lines but newlines survive, so
// line-anchored byline and date patterns still match.
func (d *Document) TextHead(n int) string {
	var lines []string
	for _, line := range strings.Split(d.Text(false), "\n") {
		line = strings.TrimSpace(spacesRE.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	head := strings.Join(lines, "\n")
	if len(head) > n {
		head = head[:n]
	}
	return head
}

// StructuredData locates embedded JSON-LD blocks and returns the objects
// they describe. Top-level arrays and @graph arrays are flattened so callers
// can scan a single list. Blocks that fail to parse are skipped rather than
// aborting the whole document.
func (d *Document) StructuredData() []map[string]any {
	var objects []map[string]any

	d.doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var v any
		if err := json.Unmarshal([]byte(sel.Text()), &v); err != nil {
			return
		}
		objects = append(objects, flattenLD(v)...)
	})

	return objects
}

// flattenLD expands arrays and @graph members into a flat object list,
// preserving document order.
func flattenLD(v any) []map[string]any {
	var out []map[string]any
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			out = append(out, flattenLD(item)...)
		}
	case map[string]any:
		out = append(out, t)
		if graph, ok := t["@graph"]; ok {
			out = append(out, flattenLD(graph)...)
		}
	}
	return out
}
