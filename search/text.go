package search

import (
	"regexp"
	"strings"
)

// Stop words excluded from the TF-IDF vocabulary
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "were": true, "to": true, "of": true, "and": true, "in": true,
	"that": true, "have": true, "has": true, "it": true, "for": true, "not": true,
	"on": true, "with": true, "as": true, "you": true, "do": true, "at": true,
	"this": true, "but": true, "by": true, "from": true, "or": true, "his": true,
	"her": true, "their": true, "they": true, "we": true, "our": true, "its": true,
	"he": true, "she": true,
}

// tokenRegex is compiled once at package initialization
var tokenRegex = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// tokenize splits text into lowercase terms, dropping stop words and
// tokens shorter than two characters.
func tokenize(text string) []string {
	raw := tokenRegex.Split(strings.ToLower(text), -1)
	terms := make([]string, 0, len(raw))
	for _, term := range raw {
		if len(term) < 2 || stopWords[term] {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}
