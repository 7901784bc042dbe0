// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.KeywordExpander and
// ai.AIProvider for use in unit tests. The mocks allow tests to run
// without external AI service dependencies and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	keywords, err := mockProvider.KeywordExpander().ExpandQuery(ctx, "test")
//
//	// Custom behavior injection
//	mockExpander := mock.NewMockKeywordExpander()
//	mockExpander.ExpandQueryFunc = func(ctx context.Context, query string) ([]string, error) {
//	    return []string{"fixed", "keywords"}, nil
//	}
//
//	// Check call counts
//	count := mockExpander.CallCount()
//
// # Default Behavior
//
// MockKeywordExpander splits the query into its words, a cheap stand-in
// for model-driven expansion that keeps tests deterministic.
package mock
