package trafilatura

import (
	"strings"

	"github.com/fwojciec/newsclip"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements newsclip.BodyExtractor at compile time.
var _ newsclip.BodyExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura as a last-resort body extractor for pages
// where selector-based extraction finds no usable content.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractBody processes raw HTML and returns the main content as plain text.
func (e *Extractor) ExtractBody(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", newsclip.Errorf(newsclip.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", newsclip.Errorf(newsclip.ENOTFOUND, "content extraction failed: %v", err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" && result.ContentNode != nil {
		text = strings.TrimSpace(nodeText(result.ContentNode))
	}
	if text == "" {
		return "", newsclip.Errorf(newsclip.ENOTFOUND, "no content found")
	}
	return text, nil
}

// nodeText collects the text content of an html.Node subtree, separating
// block-level elements with newlines.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "li", "h1", "h2", "h3", "h4", "blockquote":
				sb.WriteString("\n")
			}
		}
	}
	walk(n)
	return sb.String()
}
