package rod

import "strings"

// stealthJS is evaluated on every new document before any site script runs.
// It patches the fingerprints headless Chrome leaks: the webdriver flag, the
// missing chrome runtime object, the empty plugin list, and the permissions
// API behavior that differs from a real browser.
const stealthJS = `
Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
window.chrome = window.chrome || { runtime: {} };
Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
Object.defineProperty(navigator, 'plugins', {
	get: () => [
		{ name: 'Chrome PDF Plugin' },
		{ name: 'Chrome PDF Viewer' },
		{ name: 'Native Client' },
	],
});
if (navigator.permissions && navigator.permissions.query) {
	const originalQuery = navigator.permissions.query.bind(navigator.permissions);
	navigator.permissions.query = (parameters) =>
		parameters.name === 'notifications'
			? Promise.resolve({ state: Notification.permission })
			: originalQuery(parameters);
}
`

// stealthUserAgent is presented instead of the HeadlessChrome default.
const stealthUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

// challengeMarkers identify interstitial anti-bot pages that resolve on their
// own after a few seconds of JavaScript execution.
var challengeMarkers = []string{
	"checking your browser",
	"just a moment",
	"verifying you are human",
	"cf-challenge",
	"cf-browser-verification",
	"attention required",
	"ddos protection by",
}

// isChallenge reports whether the page markup looks like an anti-bot
// interstitial rather than real content.
func isChallenge(html string) bool {
	lower := strings.ToLower(html)
	for _, marker := range challengeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// consentButtonTexts are button labels matched when dismissing cookie-consent
// overlays that hide article content.
var consentButtonTexts = []string{
	"Accept all",
	"Accept All",
	"I Accept",
	"I agree",
	"Agree",
	"Accept",
	"Got it",
	"OK",
}

// consentButtonXPath builds an XPath matching a clickable element whose
// visible text equals the given label.
func consentButtonXPath(label string) string {
	lit := xpathLiteral(label)
	return "//button[normalize-space(.)=" + lit + "] | //a[normalize-space(.)=" + lit + "]"
}

// xpathLiteral quotes a string for embedding in an XPath expression. XPath
// 1.0 has no escape syntax, so strings containing both quote characters are
// assembled with concat().
func xpathLiteral(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	var sb strings.Builder
	sb.WriteString("concat(")
	for i, part := range parts {
		if i > 0 {
			sb.WriteString(`, "'", `)
		}
		sb.WriteString("'" + part + "'")
	}
	sb.WriteString(")")
	return sb.String()
}
