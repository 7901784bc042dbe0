package extract

import "errors"

var (
	// ErrUnparsableDocument is returned when the HTML source cannot be parsed at all.
	ErrUnparsableDocument = errors.New("unparsable document")

	// ErrStrategyFailed indicates a single extraction strategy failed.
	// It is logged at the point of failure and never propagates out of Extract.
	ErrStrategyFailed = errors.New("extraction strategy failed")
)
