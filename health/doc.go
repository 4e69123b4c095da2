// Package health provides health checking primitives for the access layer.
//
// A Checker reports the health of one dependency; APIChecker probes the
// brokerage API through its public server-time endpoint. An Aggregator
// fans out over registered checkers in parallel and folds their results
// into a single overall status.
package health
