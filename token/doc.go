// Package token mints the short-lived signed credentials the Coinbase
// Advanced Trade API requires on private endpoints.
//
// Each credential is a compact JWS: three base64url segments (header,
// claims, Ed25519 signature) joined by periods. A credential is bound to
// a single request — its uri claim names the exact method, host and path
// it may accompany — and expires 120 seconds after mint. Credentials are
// never cached or reused; callers mint one per call.
package token
