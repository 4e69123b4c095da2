package token

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// DefaultHost is the canonical Advanced Trade API hostname.
	DefaultHost = "api.coinbase.com"

	// TTL is the validity window of a minted credential. The upstream
	// verifier requires exp - nbf to be exactly 120 seconds.
	TTL = 120 * time.Second

	// nonceSize is the number of random bytes in the per-credential
	// nonce before hex encoding.
	nonceSize = 16
)

// SignerConfig configures a Signer.
type SignerConfig struct {
	// KeyID is the API key identifier. It appears both as the kid header
	// and the sub claim of every minted credential.
	KeyID string

	// PrivateKey is the base64-encoded private key blob. Only the first
	// 32 decoded bytes are the Ed25519 seed; Coinbase key exports carry
	// trailing material after the seed that the verifier ignores.
	PrivateKey string

	// Host is the host used when a mint does not name one.
	// Default: DefaultHost.
	Host string
}

// Signer mints single-use bearer credentials for private endpoints.
//
// A Signer is immutable after construction and safe for concurrent use:
// every mint is an independent computation over the read-only key, so no
// locking is needed. The key material is decoded and validated exactly
// once, in NewSigner.
type Signer struct {
	keyID string
	key   ed25519.PrivateKey
	host  string
	now   func() time.Time
}

// NewSigner builds a Signer from explicit configuration.
//
// Key material is validated here rather than at first use so that a
// malformed key surfaces at wiring time. The decoded blob must hold at
// least ed25519.SeedSize bytes; anything past the seed is discarded.
func NewSigner(cfg SignerConfig) (*Signer, error) {
	if cfg.KeyID == "" {
		return nil, ErrMissingKeyID
	}
	if cfg.PrivateKey == "" {
		return nil, ErrMissingPrivateKey
	}

	raw, err := base64.StdEncoding.DecodeString(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPrivateKey, err)
	}
	if len(raw) < ed25519.SeedSize {
		return nil, fmt.Errorf("%w: decoded blob is %d bytes, need at least %d",
			ErrMalformedPrivateKey, len(raw), ed25519.SeedSize)
	}

	host := cfg.Host
	if host == "" {
		host = DefaultHost
	}

	return &Signer{
		keyID: cfg.KeyID,
		key:   ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize]),
		host:  host,
		now:   time.Now,
	}, nil
}

// Mint produces a fresh credential authorizing exactly one call of method
// against host and path. The method is normalized to upper case in the
// signed claim. An empty host selects the signer's default.
//
// Two mints for the same inputs always differ: each carries a fresh
// 16-byte random nonce and its own timestamps. Mint performs no I/O.
func (s *Signer) Mint(method, path, host string) (string, error) {
	if s == nil || s.keyID == "" || len(s.key) != ed25519.PrivateKeySize {
		return "", ErrNotConfigured
	}
	if method == "" {
		return "", ErrInvalidMethod
	}
	if !strings.HasPrefix(path, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	if host == "" {
		host = s.host
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("token: nonce: %w", err)
	}

	now := s.now().Unix()
	tok := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwt.MapClaims{
		"iss": "cdp",
		"sub": s.keyID,
		"nbf": now,
		"exp": now + int64(TTL/time.Second),
		"uri": strings.ToUpper(method) + " " + host + path,
	})
	tok.Header["kid"] = s.keyID
	tok.Header["nonce"] = hex.EncodeToString(nonce)

	signed, err := tok.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("token: sign: %w", err)
	}
	return signed, nil
}

// KeyID returns the configured key identifier.
func (s *Signer) KeyID() string {
	return s.keyID
}

// Public returns the verification key matching the signer's seed.
func (s *Signer) Public() ed25519.PublicKey {
	return s.key.Public().(ed25519.PublicKey)
}
