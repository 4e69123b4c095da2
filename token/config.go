package token

import (
	"context"
	"fmt"

	"github.com/jonwraymond/brokerops/secret"
)

// Environment variable names the upstream tooling uses for key material.
const (
	EnvKeyID      = "COINBASE_KEY_ID"
	EnvPrivateKey = "COINBASE_ED25519_KEY"
)

// ConfigFromProvider resolves signer configuration through a secret
// provider. Both references must resolve; a missing key identifier or key
// blob is a configuration error, not an empty-string signer.
func ConfigFromProvider(ctx context.Context, p secret.Provider) (SignerConfig, error) {
	keyID, err := p.Resolve(ctx, EnvKeyID)
	if err != nil {
		return SignerConfig{}, fmt.Errorf("%w: %v", ErrMissingKeyID, err)
	}
	key, err := p.Resolve(ctx, EnvPrivateKey)
	if err != nil {
		return SignerConfig{}, fmt.Errorf("%w: %v", ErrMissingPrivateKey, err)
	}
	return SignerConfig{KeyID: keyID, PrivateKey: key}, nil
}
