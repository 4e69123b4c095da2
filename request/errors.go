package request

import (
	"errors"
	"fmt"
)

// Sentinel errors for the request executor.
var (
	// ErrMissingMinter is returned when a private request is attempted
	// without a configured credential minter.
	ErrMissingMinter = errors.New("request: no credential minter configured")

	// ErrInvalidRequest is returned for requests missing a method or URL.
	ErrInvalidRequest = errors.New("request: invalid request")

	// ErrPaginationExhausted is returned when a pagination loop hits its
	// defensive page cap while the upstream still reports more pages.
	ErrPaginationExhausted = errors.New("request: pagination exceeded page cap")
)

// Kind classifies a normalized request failure.
type Kind int

const (
	// KindConfig marks credential configuration failures: missing or
	// malformed signing material. Never retried.
	KindConfig Kind = iota

	// KindTransient marks retryable failures: HTTP 429/500/502/503/504
	// or transport-level errors.
	KindTransient

	// KindPermanent marks non-retryable HTTP failures (4xx other than 429).
	KindPermanent

	// KindProtocol marks malformed JSON in an otherwise successful response.
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTransient:
		return "transient"
	case KindPermanent:
		return "permanent"
	case KindProtocol:
		return "protocol"
	default:
		return "unknown"
	}
}

// Error is the normalized failure record carried by an Outcome. It
// marshals to the wire shape {"error", "status_code", "body"} so callers
// can surface it verbatim.
type Error struct {
	Message    string `json:"error"`
	StatusCode int    `json:"status_code,omitempty"`
	Body       string `json:"body,omitempty"`
	Kind       Kind   `json:"-"`

	cause error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request: %s (status %d)", e.Message, e.StatusCode)
	}
	return "request: " + e.Message
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Retryable reports whether the failure may be retried.
func (e *Error) Retryable() bool {
	return e.Kind == KindTransient
}
