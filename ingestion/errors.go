package ingestion

import "errors"

var (
	// ErrProfileRepositoryRequired is returned when a profile repository is not provided.
	ErrProfileRepositoryRequired = errors.New("profile repository required")

	// ErrPageSourceRequired is returned when a page source is not provided.
	ErrPageSourceRequired = errors.New("page source required")

	// ErrExtractorRequired is returned when an extractor is not provided.
	ErrExtractorRequired = errors.New("extractor required")

	// ErrFetchFailed is returned when a page cannot be retrieved from its source.
	ErrFetchFailed = errors.New("page fetch failed")
)
