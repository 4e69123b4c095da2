package request

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/brokerops/observe"
)

// DefaultAttemptTimeout bounds a single HTTP attempt. The upstream client
// sets no timeout at all; indefinite blocking is not acceptable here, so
// each attempt gets its own deadline.
const DefaultAttemptTimeout = 10 * time.Second

// Auth selects the credential requirement for a request.
type Auth int

const (
	// AuthPublic sends no credential and disables upstream response
	// caching, so real-time market data stays live.
	AuthPublic Auth = iota

	// AuthPrivate attaches a freshly minted bearer credential. A new
	// credential is minted for every attempt; none is ever reused.
	AuthPrivate
)

func (a Auth) String() string {
	if a == AuthPrivate {
		return "private"
	}
	return "public"
}

// Minter produces a single-use signed credential for one request.
// *token.Signer satisfies this interface; tests inject fakes.
type Minter interface {
	Mint(method, path, host string) (string, error)
}

// Config configures an Executor.
type Config struct {
	// HTTPClient is the shared transport for all calls. Default: a
	// client over the pooled default transport. The client should not
	// set its own overall timeout; attempts are bounded individually.
	HTTPClient *http.Client

	// Minter mints credentials for private requests. Required only when
	// private requests are issued.
	Minter Minter

	// Retry is the retry policy. Zero values take the documented defaults.
	Retry RetryConfig

	// AttemptTimeout bounds each individual attempt.
	// Default: DefaultAttemptTimeout.
	AttemptTimeout time.Duration

	// MaxConcurrent caps in-flight requests across the executor.
	// 0 means unlimited.
	MaxConcurrent int

	// Logger receives structured request logs. Default: discard.
	Logger observe.Logger

	// Meter instruments request counts and durations. Default: no-op.
	Meter metric.Meter

	// Tracer produces one client span per logical request. Default: no-op.
	Tracer trace.Tracer
}

// Executor issues HTTP requests against the brokerage API.
//
// It is safe for concurrent use: call paths share only the connection
// pool, the read-only configuration and the optional concurrency cap.
// Retries are synchronous backoff sleeps local to one logical call; no
// call cancels another.
type Executor struct {
	client  *http.Client
	minter  Minter
	retry   *retrier
	timeout time.Duration
	bh      *bulkhead
	logger  observe.Logger
	tracer  observe.Tracer
	metrics observe.Metrics
}

// NewExecutor builds an Executor from explicit configuration.
func NewExecutor(cfg Config) (*Executor, error) {
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}
	timeout := cfg.AttemptTimeout
	if timeout <= 0 {
		timeout = DefaultAttemptTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = observe.NopLogger()
	}
	metrics := observe.NewNoopMetrics()
	if cfg.Meter != nil {
		m, err := observe.NewMetrics(cfg.Meter)
		if err != nil {
			return nil, fmt.Errorf("request: metrics: %w", err)
		}
		metrics = m
	}

	return &Executor{
		client:  client,
		minter:  cfg.Minter,
		retry:   newRetrier(cfg.Retry),
		timeout: timeout,
		bh:      newBulkhead(cfg.MaxConcurrent),
		logger:  logger,
		tracer:  observe.NewTracer(cfg.Tracer),
		metrics: metrics,
	}, nil
}

// Request describes one HTTP call.
type Request struct {
	// Method is the HTTP verb, case-insensitive.
	Method string

	// URL is the fully qualified request URL, without query parameters.
	URL string

	// Path is the request path embedded in the signed claim. Required
	// for private requests; ignored for public ones.
	Path string

	// Query is encoded onto the URL when non-empty.
	Query url.Values

	// Body is JSON-encoded into the request body when non-nil.
	Body any

	// Auth selects public or private credential handling.
	Auth Auth
}

// Do executes the request and returns a normalized Outcome. Every
// failure path — configuration, transport, HTTP status, malformed body —
// ends in an Outcome; Do never panics and never returns a raw error.
func (e *Executor) Do(ctx context.Context, req Request) Outcome {
	if req.Method == "" || req.URL == "" {
		return fail(&Error{
			Message: "method and URL are required",
			Kind:    KindPermanent,
			cause:   ErrInvalidRequest,
		})
	}

	method := strings.ToUpper(req.Method)
	target := req.URL
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	meta := observe.RequestMeta{
		Method: method,
		Path:   req.Path,
		Host:   hostOf(req.URL),
		Auth:   req.Auth.String(),
	}
	ctx, span := e.tracer.StartSpan(ctx, meta)
	start := time.Now()

	out, attempts := e.run(ctx, method, target, req)

	e.metrics.RecordRequest(ctx, meta, time.Since(start), attempts, out.Status, out.Err())
	e.tracer.EndSpan(span, out.Err())

	if err := out.Err(); err != nil {
		e.logger.Warn(ctx, "request failed",
			observe.F("method", method),
			observe.F("path", req.Path),
			observe.F("host", meta.Host),
			observe.F("status", out.Status),
			observe.F("attempts", attempts),
			observe.F("error", err.Error()),
		)
	} else {
		e.logger.Debug(ctx, "request completed",
			observe.F("method", method),
			observe.F("path", req.Path),
			observe.F("status", out.Status),
			observe.F("attempts", attempts),
		)
	}
	return out
}

func (e *Executor) run(ctx context.Context, method, target string, req Request) (Outcome, int) {
	if err := e.bh.acquire(ctx); err != nil {
		return fail(&Error{Message: err.Error(), Kind: KindTransient, cause: err}), 0
	}
	defer e.bh.release()

	var payload []byte
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return fail(&Error{
				Message: "encode request body: " + err.Error(),
				Kind:    KindProtocol,
				cause:   err,
			}), 0
		}
		payload = b
	}

	var out Outcome
	attempts := 0
	err := e.retry.run(ctx, func(ctx context.Context) error {
		attempts++
		o, err := e.attempt(ctx, method, target, req, payload)
		if err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		var re *Error
		if !errors.As(err, &re) {
			// Context cancellation or deadline surfaced by the retry loop.
			re = &Error{Message: err.Error(), Kind: KindTransient, cause: err}
		}
		out = fail(re)
	}
	return out, attempts
}

// attempt performs one HTTP round trip. Private requests mint a fresh
// credential here so that every attempt carries its own nonce and window.
func (e *Executor) attempt(ctx context.Context, method, target string, req Request, payload []byte) (Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	hreq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return Outcome{}, &Error{
			Message: "build request: " + err.Error(),
			Kind:    KindPermanent,
			cause:   err,
		}
	}

	hreq.Header.Set("Content-Type", "application/json")
	switch req.Auth {
	case AuthPrivate:
		if e.minter == nil {
			return Outcome{}, &Error{
				Message: ErrMissingMinter.Error(),
				Kind:    KindConfig,
				cause:   ErrMissingMinter,
			}
		}
		cred, err := e.minter.Mint(method, req.Path, hreq.URL.Host)
		if err != nil {
			return Outcome{}, &Error{
				Message: "mint credential: " + err.Error(),
				Kind:    KindConfig,
				cause:   err,
			}
		}
		hreq.Header.Set("Authorization", "Bearer "+cred)
	case AuthPublic:
		// The upstream caches public market data for one second; bypass
		// it so real-time endpoints return live values.
		hreq.Header.Set("Cache-Control", "no-cache")
	}

	resp, err := e.client.Do(hreq)
	if err != nil {
		return Outcome{}, &Error{Message: err.Error(), Kind: KindTransient, cause: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{}, &Error{
			Message:    "read response: " + err.Error(),
			StatusCode: resp.StatusCode,
			Kind:       KindTransient,
			cause:      err,
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(raw) == 0 {
			return succeed(resp.StatusCode, nil), nil
		}
		if !json.Valid(raw) {
			return Outcome{}, &Error{
				Message:    "malformed response body",
				StatusCode: resp.StatusCode,
				Body:       string(raw),
				Kind:       KindProtocol,
			}
		}
		return succeed(resp.StatusCode, raw), nil
	}

	kind := KindPermanent
	if retryableStatuses[resp.StatusCode] {
		kind = KindTransient
	}
	return Outcome{}, &Error{
		Message:    fmt.Sprintf("%s %s returned %s", method, hreq.URL.Path, resp.Status),
		StatusCode: resp.StatusCode,
		Body:       string(raw),
		Kind:       kind,
	}
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
