// Package secret provides a small, dependency-light secret resolution layer.
//
// Signing key material (the API key identifier and the private key blob)
// reaches the process through a Provider rather than ambient globals, so
// tests can inject synthetic keys without mutating the environment.
//
// Two providers are included:
//   - EnvProvider resolves references as environment variable names,
//     strictly: an unset variable is an error, never an empty string.
//   - StaticProvider serves a fixed in-memory map, for tests and local wiring.
package secret
