package brokerage

import "errors"

var (
	// ErrNilExecutor indicates the client was built without an executor.
	ErrNilExecutor = errors.New("brokerage: executor is required")

	// ErrMissingArgument indicates a required method argument was empty.
	ErrMissingArgument = errors.New("brokerage: missing required argument")
)
