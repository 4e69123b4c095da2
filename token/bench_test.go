package token

import (
	"crypto/ed25519"
	"encoding/base64"
	"testing"
)

func BenchmarkMint(b *testing.B) {
	seed := make([]byte, ed25519.SeedSize)
	s, err := NewSigner(SignerConfig{
		KeyID:      "bench",
		PrivateKey: base64.StdEncoding.EncodeToString(seed),
	})
	if err != nil {
		b.Fatalf("NewSigner() error = %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Mint("GET", "/api/v3/brokerage/accounts", ""); err != nil {
			b.Fatal(err)
		}
	}
}
