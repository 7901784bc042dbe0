package mock

import (
	"context"
	"strings"
)

// MockKeywordExpander is a test double for ai.KeywordExpander.
// It allows custom behavior injection via function fields.
type MockKeywordExpander struct {
	// ExpandQueryFunc is called by ExpandQuery if set.
	// If nil, uses default word-splitting expansion.
	ExpandQueryFunc func(ctx context.Context, query string) ([]string, error)

	callCount int
}

// NewMockKeywordExpander creates a mock keyword expander with default behavior.
// Note: Returns concrete type to allow test assertions via CallCount().
func NewMockKeywordExpander() *MockKeywordExpander {
	return &MockKeywordExpander{}
}

// ExpandQuery returns mock keywords for the query.
// Default behavior: splits the query into lowercased words.
func (m *MockKeywordExpander) ExpandQuery(ctx context.Context, query string) ([]string, error) {
	m.callCount++

	if m.ExpandQueryFunc != nil {
		return m.ExpandQueryFunc(ctx, query)
	}

	words := strings.Fields(strings.ToLower(query))
	keywords := make([]string, 0, len(words))
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if word != "" {
			keywords = append(keywords, word)
		}
	}
	return keywords, nil
}

// CallCount returns the number of times ExpandQuery was called.
func (m *MockKeywordExpander) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockKeywordExpander) Reset() {
	m.callCount = 0
	m.ExpandQueryFunc = nil
}
