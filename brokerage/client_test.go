package brokerage

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonwraymond/brokerops/request"
)

type recordingMinter struct {
	mu    sync.Mutex
	paths []string
}

func (m *recordingMinter) Mint(method, path, host string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paths = append(m.paths, method+" "+path)
	return "h.c.s", nil
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *recordingMinter, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	minter := &recordingMinter{}
	exec, err := request.NewExecutor(request.Config{
		Minter: minter,
		Retry:  request.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond},
	})
	if err != nil {
		t.Fatalf("NewExecutor() error = %v", err)
	}

	c, err := NewClient(Config{
		Executor:      exec,
		BaseURL:       srv.URL + "/api/v3/brokerage",
		PublicBaseURL: srv.URL + "/api/v3/brokerage/market",
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return c, minter, srv
}

func TestNewClient_RequiresExecutor(t *testing.T) {
	if _, err := NewClient(Config{}); !errors.Is(err, ErrNilExecutor) {
		t.Errorf("NewClient() error = %v, want ErrNilExecutor", err)
	}
}

func TestListAccounts_FollowsCursor(t *testing.T) {
	var calls int
	var cursors []string
	c, minter, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/brokerage/accounts" {
			t.Errorf("path = %q", r.URL.Path)
		}
		cursors = append(cursors, r.URL.Query().Get("cursor"))
		calls++
		if calls == 1 {
			w.Write([]byte(`{"accounts":[{"uuid":"a"},{"uuid":"b"}],"cursor":"next","has_next":true}`))
			return
		}
		w.Write([]byte(`{"accounts":[{"uuid":"c"}],"has_next":false}`))
	}))

	accounts, err := c.ListAccounts(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListAccounts() error = %v", err)
	}
	if len(accounts) != 3 {
		t.Errorf("ListAccounts() returned %d accounts, want 3", len(accounts))
	}
	if calls != 2 {
		t.Errorf("server saw %d calls, want 2", calls)
	}
	if cursors[0] != "" || cursors[1] != "next" {
		t.Errorf("cursors = %v", cursors)
	}
	if len(minter.paths) != 2 || minter.paths[0] != "GET /api/v3/brokerage/accounts" {
		t.Errorf("minted claims = %v", minter.paths)
	}
}

func TestCreateOrder(t *testing.T) {
	c, minter, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v3/brokerage/orders" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["side"] != "BUY" {
			t.Errorf("side = %v, want BUY (upper-cased)", body["side"])
		}
		if body["client_order_id"] != "c1" || body["product_id"] != "BTC-USD" {
			t.Errorf("body = %v", body)
		}
		w.Write([]byte(`{"success":true}`))
	}))

	raw, err := c.CreateOrder(context.Background(), CreateOrderParams{
		ClientOrderID:      "c1",
		ProductID:          "BTC-USD",
		Side:               "buy",
		OrderConfiguration: map[string]any{"market_market_ioc": map[string]any{"quote_size": "10"}},
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if raw == nil {
		t.Fatal("CreateOrder() returned nil body")
	}
	if len(minter.paths) != 1 || minter.paths[0] != "POST /api/v3/brokerage/orders" {
		t.Errorf("minted claims = %v", minter.paths)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request reached the server")
	}))

	_, err := c.CreateOrder(context.Background(), CreateOrderParams{ProductID: "BTC-USD"})
	if !errors.Is(err, ErrMissingArgument) {
		t.Errorf("CreateOrder() error = %v, want ErrMissingArgument", err)
	}
}

func TestGetServerTime_IsPublic(t *testing.T) {
	c, minter, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/brokerage/time" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("public call carried Authorization header %q", got)
		}
		w.Write([]byte(`{"iso":"2026-01-01T00:00:00Z"}`))
	}))

	if _, err := c.GetServerTime(context.Background()); err != nil {
		t.Fatalf("GetServerTime() error = %v", err)
	}
	if len(minter.paths) != 0 {
		t.Errorf("public call minted a credential: %v", minter.paths)
	}
}

func TestGetPublicProduct_UsesMarketRoot(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/brokerage/market/products/BTC-USD" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"product_id":"BTC-USD"}`))
	}))

	if _, err := c.GetPublicProduct(context.Background(), "BTC-USD"); err != nil {
		t.Fatalf("GetPublicProduct() error = %v", err)
	}
}

func TestGetAccount_SurfacesUpstreamError(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"PERMISSION_DENIED"}`))
	}))

	_, err := c.GetAccount(context.Background(), "acct-1")
	var re *request.Error
	if !errors.As(err, &re) {
		t.Fatalf("GetAccount() error = %T, want *request.Error", err)
	}
	if re.StatusCode != 403 {
		t.Errorf("StatusCode = %d, want 403", re.StatusCode)
	}
	if re.Body != `{"error":"PERMISSION_DENIED"}` {
		t.Errorf("Body = %q, want upstream body verbatim", re.Body)
	}
}

func TestEditPortfolio_UsesPut(t *testing.T) {
	c, minter, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/v3/brokerage/portfolios/p1" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))

	if _, err := c.EditPortfolio(context.Background(), "p1", "renamed"); err != nil {
		t.Fatalf("EditPortfolio() error = %v", err)
	}
	if len(minter.paths) != 1 || minter.paths[0] != "PUT /api/v3/brokerage/portfolios/p1" {
		t.Errorf("minted claims = %v", minter.paths)
	}
}

func TestDeletePortfolio_UsesDelete(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.Write([]byte(`{}`))
	}))

	if _, err := c.DeletePortfolio(context.Background(), "p1"); err != nil {
		t.Fatalf("DeletePortfolio() error = %v", err)
	}
}

func TestGetBestBidAsk_JoinsProductIDs(t *testing.T) {
	c, _, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("product_ids"); got != "BTC-USD,ETH-USD" {
			t.Errorf("product_ids = %q", got)
		}
		w.Write([]byte(`{}`))
	}))

	if _, err := c.GetBestBidAsk(context.Background(), []string{"BTC-USD", "ETH-USD"}); err != nil {
		t.Fatalf("GetBestBidAsk() error = %v", err)
	}
}
