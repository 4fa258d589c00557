package newsclip

import "strings"

// topicKeywords maps topic buckets to indicator words. Matching is a plain
// case-insensitive substring count over the title and the head of the body.
var topicKeywords = map[string][]string{
	"politics":      {"election", "senate", "congress", "parliament", "minister", "president", "policy", "government", "vote", "campaign"},
	"business":      {"market", "stocks", "economy", "earnings", "investor", "revenue", "inflation", "startup", "merger", "trade"},
	"technology":    {"software", "startup", " ai ", "artificial intelligence", "chip", "app ", "silicon", "cyber", "crypto", "internet"},
	"science":       {"research", "study finds", "scientist", "climate", "species", "physics", "telescope", "experiment", "nasa"},
	"health":        {"health", "vaccine", "disease", "hospital", "patient", "drug", "virus", "cancer", "medical"},
	"sports":        {"game", "season", "coach", "league", "championship", "tournament", "match", "playoff", "olympic"},
	"entertainment": {"film", "movie", "album", "celebrity", "actor", "actress", "box office", "netflix", "premiere"},
	"world":         {"united nations", "border", "refugee", "embassy", "foreign", "treaty", "war ", "conflict", "sanctions"},
}

// topicSampleLength bounds how much body text participates in tagging.
const topicSampleLength = 1500

// ClassifyTopic assigns a coarse topic bucket from the title and the head
// of the body text. Returns "general" when no bucket dominates.
func ClassifyTopic(title, body string) string {
	if len(body) > topicSampleLength {
		body = body[:topicSampleLength]
	}
	sample := " " + strings.ToLower(title) + " " + strings.ToLower(body) + " "

	best := "general"
	bestScore := 0
	for topic, words := range topicKeywords {
		score := 0
		for _, w := range words {
			score += strings.Count(sample, w)
		}
		// Title matches weigh double.
		lt := " " + strings.ToLower(title) + " "
		for _, w := range words {
			score += strings.Count(lt, w)
		}
		if score > bestScore || (score == bestScore && score > 0 && topic < best) {
			best = topic
			bestScore = score
		}
	}
	if bestScore == 0 {
		return "general"
	}
	return best
}
