package token

import "errors"

// Configuration errors. All of these are detected when a Signer is
// constructed or when a mint is attempted, never deferred to the upstream
// verifier: a credential that cannot verify must not be produced at all.
var (
	// ErrMissingKeyID indicates the API key identifier is empty.
	ErrMissingKeyID = errors.New("token: missing key ID")

	// ErrMissingPrivateKey indicates the private key blob is empty.
	ErrMissingPrivateKey = errors.New("token: missing private key")

	// ErrMalformedPrivateKey indicates the private key blob is not valid
	// base64 or decodes to fewer bytes than an Ed25519 seed.
	ErrMalformedPrivateKey = errors.New("token: malformed private key")

	// ErrNotConfigured indicates a mint was attempted on a zero or
	// invalid Signer.
	ErrNotConfigured = errors.New("token: signer not configured")

	// ErrInvalidMethod indicates an empty HTTP method.
	ErrInvalidMethod = errors.New("token: invalid method")

	// ErrInvalidPath indicates a request path that is not absolute.
	ErrInvalidPath = errors.New("token: invalid path")
)
