package openai

import "strings"

// splitKeywords parses a comma-separated completion into keywords,
// trimming whitespace and dropping empty tokens.
func splitKeywords(completion string) []string {
	parts := strings.Split(completion, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		if keyword := strings.TrimSpace(part); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}
	return keywords
}
