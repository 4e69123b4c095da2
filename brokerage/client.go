package brokerage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/jonwraymond/brokerops/request"
)

const (
	// BaseURL is the authenticated Advanced Trade API root.
	BaseURL = "https://api.coinbase.com/api/v3/brokerage"

	// PublicBaseURL is the unauthenticated market data root.
	PublicBaseURL = "https://api.coinbase.com/api/v3/brokerage/market"

	// DefaultPageLimit is the API's default page size for listings.
	DefaultPageLimit = 100
)

// Config configures a Client.
type Config struct {
	// Executor issues all HTTP calls. Required.
	Executor *request.Executor

	// BaseURL overrides the authenticated API root (tests).
	// Default: BaseURL.
	BaseURL string

	// PublicBaseURL overrides the market data root (tests).
	// Default: PublicBaseURL.
	PublicBaseURL string
}

// Client exposes the Advanced Trade endpoints over a request executor.
// It holds no mutable state and is safe for concurrent use.
type Client struct {
	exec     *request.Executor
	baseURL  string
	pubURL   string
	basePath string
}

// NewClient builds a Client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Executor == nil {
		return nil, ErrNilExecutor
	}
	base := cfg.BaseURL
	if base == "" {
		base = BaseURL
	}
	pub := cfg.PublicBaseURL
	if pub == "" {
		pub = PublicBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, err
	}
	return &Client{
		exec:     cfg.Executor,
		baseURL:  base,
		pubURL:   pub,
		basePath: u.Path,
	}, nil
}

// do issues one authenticated call. suffix is appended both to the base
// URL and to the signed claim path, mirroring the upstream convention.
func (c *Client) do(ctx context.Context, method, suffix string, q url.Values, body any) (json.RawMessage, error) {
	out := c.exec.Do(ctx, request.Request{
		Method: method,
		URL:    c.baseURL + suffix,
		Path:   c.basePath + suffix,
		Query:  q,
		Body:   body,
		Auth:   request.AuthPrivate,
	})
	return result(out)
}

func (c *Client) get(ctx context.Context, suffix string, q url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, suffix, q, nil)
}

func (c *Client) post(ctx context.Context, suffix string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, suffix, nil, body)
}

// public issues one unauthenticated call against an absolute URL. No
// claim path is needed since nothing is signed.
func (c *Client) public(ctx context.Context, target string, q url.Values) (json.RawMessage, error) {
	out := c.exec.Do(ctx, request.Request{
		Method: http.MethodGet,
		URL:    target,
		Query:  q,
		Auth:   request.AuthPublic,
	})
	return result(out)
}

func result(o request.Outcome) (json.RawMessage, error) {
	if err := o.Err(); err != nil {
		return nil, err
	}
	return o.Data, nil
}

// GetKeyPermissions reports the permissions of the configured API key.
func (c *Client) GetKeyPermissions(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/key_permissions", nil)
}
