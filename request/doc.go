// Package request executes HTTP calls against the brokerage API and
// normalizes every result into an Outcome.
//
// An Executor owns the shared connection pool and the retry policy. For
// private endpoints it mints a fresh single-use credential per attempt
// through the Minter seam; public endpoints carry no credential and
// bypass upstream caching. Transient failures (HTTP 429/500/502/503/504
// and transport errors) are retried with exponential backoff; everything
// else fails on the first attempt. No failure escapes as a panic — the
// caller always receives an Outcome carrying either the decoded body or
// a typed error record.
package request
