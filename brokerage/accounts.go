package brokerage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jonwraymond/brokerops/request"
)

type accountsPage struct {
	Accounts []json.RawMessage `json:"accounts"`
	Cursor   string            `json:"cursor"`
	HasNext  bool              `json:"has_next"`
}

// ListAccounts returns every account, following the cursor until the
// upstream reports no further pages. limit is the per-page size;
// non-positive values take DefaultPageLimit.
func (c *Client) ListAccounts(ctx context.Context, limit int) ([]json.RawMessage, error) {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	return request.Paginate(ctx, func(ctx context.Context, cursor string) (request.Page[json.RawMessage], error) {
		q := url.Values{}
		q.Set("limit", strconv.Itoa(limit))
		if cursor != "" {
			q.Set("cursor", cursor)
		}
		raw, err := c.do(ctx, http.MethodGet, "/accounts", q, nil)
		if err != nil {
			return request.Page[json.RawMessage]{}, err
		}
		var page accountsPage
		if err := json.Unmarshal(raw, &page); err != nil {
			return request.Page[json.RawMessage]{}, fmt.Errorf("brokerage: decode accounts page: %w", err)
		}
		return request.Page[json.RawMessage]{
			Items:      page.Accounts,
			NextCursor: page.Cursor,
			HasNext:    page.HasNext,
		}, nil
	})
}

// GetAccount returns a single account by UUID.
func (c *Client) GetAccount(ctx context.Context, accountID string) (json.RawMessage, error) {
	if accountID == "" {
		return nil, fmt.Errorf("%w: account_id", ErrMissingArgument)
	}
	return c.get(ctx, "/accounts/"+accountID, nil)
}
