package health

import (
	"context"
	"time"

	"github.com/jonwraymond/brokerops/brokerage"
)

// APICheckerConfig configures an APIChecker.
type APICheckerConfig struct {
	// Client issues the probe. Required.
	Client *brokerage.Client

	// SlowThreshold degrades the status when the probe takes longer.
	// Default: 2 seconds.
	SlowThreshold time.Duration
}

// APIChecker reports whether the brokerage API answers its public
// server-time endpoint. The probe is unauthenticated, so it checks
// reachability without spending a credential.
type APIChecker struct {
	client *brokerage.Client
	slow   time.Duration
}

// NewAPIChecker creates an APIChecker.
func NewAPIChecker(cfg APICheckerConfig) *APIChecker {
	slow := cfg.SlowThreshold
	if slow <= 0 {
		slow = 2 * time.Second
	}
	return &APIChecker{client: cfg.Client, slow: slow}
}

// Name returns "brokerage-api".
func (c *APIChecker) Name() string {
	return "brokerage-api"
}

// Check probes the server-time endpoint.
func (c *APIChecker) Check(ctx context.Context) Result {
	start := time.Now()
	_, err := c.client.GetServerTime(ctx)
	elapsed := time.Since(start)

	if err != nil {
		return Unhealthy("server time unreachable", err).WithDuration(elapsed)
	}
	if elapsed > c.slow {
		return Degraded("server time responded slowly").WithDuration(elapsed)
	}
	return Healthy("ok").WithDuration(elapsed)
}

var _ Checker = (*APIChecker)(nil)
