package brokerage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ConvertParams identifies the accounts and amount of a conversion.
type ConvertParams struct {
	FromAccount string `json:"from_account"`
	ToAccount   string `json:"to_account"`
	Amount      string `json:"amount"`
}

func (p ConvertParams) validate(needAmount bool) error {
	if p.FromAccount == "" || p.ToAccount == "" {
		return fmt.Errorf("%w: from_account and to_account", ErrMissingArgument)
	}
	if needAmount && p.Amount == "" {
		return fmt.Errorf("%w: amount", ErrMissingArgument)
	}
	return nil
}

// CreateConvertQuote requests a quote for converting between accounts.
func (c *Client) CreateConvertQuote(ctx context.Context, p ConvertParams) (json.RawMessage, error) {
	if err := p.validate(true); err != nil {
		return nil, err
	}
	return c.post(ctx, "/convert/quote", p)
}

// CommitConvertTrade commits a previously quoted conversion.
func (c *Client) CommitConvertTrade(ctx context.Context, tradeID string, p ConvertParams) (json.RawMessage, error) {
	if tradeID == "" {
		return nil, fmt.Errorf("%w: trade_id", ErrMissingArgument)
	}
	if err := p.validate(true); err != nil {
		return nil, err
	}
	return c.post(ctx, "/convert/"+tradeID, p)
}

// GetConvertTrade returns the state of a conversion.
func (c *Client) GetConvertTrade(ctx context.Context, tradeID string, p ConvertParams) (json.RawMessage, error) {
	if tradeID == "" {
		return nil, fmt.Errorf("%w: trade_id", ErrMissingArgument)
	}
	if err := p.validate(false); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("from_account", p.FromAccount)
	q.Set("to_account", p.ToAccount)
	return c.get(ctx, "/convert/"+tradeID, q)
}
