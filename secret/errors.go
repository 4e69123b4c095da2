package secret

import "errors"

// ErrNotFound is returned when a provider cannot resolve a reference.
var ErrNotFound = errors.New("secret: not found")
