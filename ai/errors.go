package ai

import "errors"

var (
	// ErrExternalService indicates a transport or API failure talking to
	// the language model. These are not retried.
	ErrExternalService = errors.New("external service failure")

	// ErrMalformedResponse indicates the model returned an empty or
	// unparseable completion after all retries were exhausted.
	ErrMalformedResponse = errors.New("malformed model response")
)
