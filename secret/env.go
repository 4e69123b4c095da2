package secret

import (
	"context"
	"fmt"
	"os"
)

// EnvProvider resolves references as environment variable names.
//
// Resolution is strict: a reference naming an unset variable is an error.
// An empty value for a set variable is returned as-is; distinguishing
// "unset" from "empty" is the caller's signal that wiring is broken.
type EnvProvider struct{}

// NewEnvProvider creates an environment-backed provider.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

// Name returns "env".
func (p *EnvProvider) Name() string {
	return "env"
}

// Resolve looks up ref in the process environment.
func (p *EnvProvider) Resolve(_ context.Context, ref string) (string, error) {
	v, ok := os.LookupEnv(ref)
	if !ok {
		return "", fmt.Errorf("%w: environment variable %s is not set", ErrNotFound, ref)
	}
	return v, nil
}

// Close is a no-op.
func (p *EnvProvider) Close() error {
	return nil
}

var _ Provider = (*EnvProvider)(nil)
