package provider

import "errors"

// Sentinel kinds for adapter failures. All of them mean the same thing to
// the pool loader: this fetch produced nothing usable, fall back.
var (
	ErrFetch            = errors.New("provider fetch failed")
	ErrMalformedPayload = errors.New("malformed provider payload")
	ErrEmptyResult      = errors.New("provider returned no usable players")
)
