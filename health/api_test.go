package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonwraymond/brokerops/brokerage"
	"github.com/jonwraymond/brokerops/request"
)

func newProbeClient(t *testing.T, handler http.Handler) *brokerage.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	exec, err := request.NewExecutor(request.Config{
		Retry: request.RetryConfig{MaxAttempts: 2, InitialDelay: time.Millisecond},
	})
	if err != nil {
		t.Fatalf("NewExecutor() error = %v", err)
	}
	c, err := brokerage.NewClient(brokerage.Config{
		Executor: exec,
		BaseURL:  srv.URL + "/api/v3/brokerage",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c
}

func TestAPIChecker_Healthy(t *testing.T) {
	client := newProbeClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/brokerage/time" {
			t.Errorf("probe path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"iso":"2026-01-01T00:00:00Z","epochSeconds":"1767225600"}`))
	}))

	checker := NewAPIChecker(APICheckerConfig{Client: client})
	res := checker.Check(context.Background())

	if res.Status != StatusHealthy {
		t.Errorf("status = %v (%s), want healthy", res.Status, res.Message)
	}
	if res.Duration <= 0 {
		t.Error("duration not populated")
	}
}

func TestAPIChecker_Unhealthy(t *testing.T) {
	client := newProbeClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	checker := NewAPIChecker(APICheckerConfig{Client: client})
	res := checker.Check(context.Background())

	if res.Status != StatusUnhealthy {
		t.Errorf("status = %v, want unhealthy", res.Status)
	}
	if res.Error == nil {
		t.Error("error not populated")
	}
}

func TestAPIChecker_DegradedWhenSlow(t *testing.T) {
	client := newProbeClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
		w.Write([]byte(`{"iso":"2026-01-01T00:00:00Z"}`))
	}))

	checker := NewAPIChecker(APICheckerConfig{Client: client, SlowThreshold: time.Millisecond})
	res := checker.Check(context.Background())

	if res.Status != StatusDegraded {
		t.Errorf("status = %v, want degraded", res.Status)
	}
}

func TestAPIChecker_Name(t *testing.T) {
	checker := NewAPIChecker(APICheckerConfig{})
	if got := checker.Name(); got != "brokerage-api" {
		t.Errorf("Name() = %q, want brokerage-api", got)
	}
}
