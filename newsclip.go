// Package newsclip provides a resilient article-extraction pipeline.
// Given a news-article URL it recovers the canonical title, bylines,
// publication date, and body text despite heterogeneous markup, paywalls,
// and anti-automation defenses, by escalating through progressively more
// expensive fetch strategies and merging the results of multiple field
// extraction heuristics.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/), with
// orchestration in extract/.
package newsclip
