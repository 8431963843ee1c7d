package playstore

import "errors"

var (
	// ErrInvalidInput is returned when a ReviewQuery fails validation, no request
	// has been made when this is returned.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTransport wraps any error returned by the Transport that isn't the
	// pagination end signal, the original error (ex. *StatusError) is kept in the chain.
	ErrTransport = errors.New("transport failed")
	// ErrMalformedResponse is returned when the response body could not be decoded
	// into a review list.
	ErrMalformedResponse = errors.New("malformed response")
)
