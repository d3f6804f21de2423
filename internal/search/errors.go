package search

import "errors"

var (
	// ErrModelUnavailable covers network failures, non-OK statuses and
	// empty responses from the similarity model. Retrying the whole
	// search is safe.
	ErrModelUnavailable = errors.New("similarity model unavailable")

	// ErrMalformedResponse means the model returned text that violates
	// the declared schema. This is a contract mismatch, not transient
	// unavailability, so it should not be silently retried.
	ErrMalformedResponse = errors.New("malformed model response")
)
