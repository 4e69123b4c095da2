package secret

import "context"

// Provider resolves secrets by reference string.
//
// Implementations must be safe for concurrent use and must never log
// resolved values.
type Provider interface {
	// Name identifies the provider (for example "env" or "static").
	Name() string

	// Resolve returns the secret for ref. Unknown references fail with
	// an error wrapping ErrNotFound.
	Resolve(ctx context.Context, ref string) (string, error)

	// Close releases any resources held by the provider.
	Close() error
}
