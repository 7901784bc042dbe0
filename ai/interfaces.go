package ai

import "context"

// KeywordExpander converts a free-text query into a bounded list of
// topical keywords via an external language model.
// Implementations must be thread-safe for concurrent use.
type KeywordExpander interface {
	// ExpandQuery returns keywords relevant to the query, in model output
	// order. On failure it returns an empty (non-nil) slice together with
	// an error wrapping ErrExternalService or ErrMalformedResponse; an
	// empty keyword list is a valid input to the ranking pipeline.
	ExpandQuery(ctx context.Context, query string) ([]string, error)
}

// AIProvider aggregates AI services for convenient initialization and
// lifecycle management.
type AIProvider interface {
	// KeywordExpander returns the query expansion service.
	// The returned KeywordExpander is safe for concurrent use.
	KeywordExpander() KeywordExpander

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
