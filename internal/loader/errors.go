package loader

import "errors"

var (
	// ErrUnavailable means the bank could not be fetched.
	ErrUnavailable = errors.New("question bank unavailable")

	// ErrMalformed means the bank was fetched but is not a usable CSV.
	ErrMalformed = errors.New("question bank malformed")
)
