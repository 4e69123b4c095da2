// Package brokerage wraps the Coinbase Advanced Trade REST endpoints.
//
// Every method resolves to exactly one executed request (or one
// pagination loop) through the request executor. Responses are returned
// as raw JSON; failures are typed *request.Error values carrying the
// upstream error text, status code and body verbatim, so callers can
// present them without reshaping.
package brokerage
