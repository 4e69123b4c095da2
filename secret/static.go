package secret

import (
	"context"
	"fmt"
)

// StaticProvider serves secrets from a fixed in-memory map.
//
// The map is copied at construction, so the provider is read-only and
// safe for concurrent use afterward.
type StaticProvider struct {
	values map[string]string
}

// NewStaticProvider creates a provider over a copy of values.
func NewStaticProvider(values map[string]string) *StaticProvider {
	cp := make(map[string]string, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &StaticProvider{values: cp}
}

// Name returns "static".
func (p *StaticProvider) Name() string {
	return "static"
}

// Resolve returns the mapped value for ref.
func (p *StaticProvider) Resolve(_ context.Context, ref string) (string, error) {
	v, ok := p.values[ref]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, ref)
	}
	return v, nil
}

// Close is a no-op.
func (p *StaticProvider) Close() error {
	return nil
}

var _ Provider = (*StaticProvider)(nil)
