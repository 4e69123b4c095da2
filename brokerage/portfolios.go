package brokerage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListPortfolios returns all portfolios.
func (c *Client) ListPortfolios(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/portfolios", nil)
}

// CreatePortfolio creates a named portfolio.
func (c *Client) CreatePortfolio(ctx context.Context, name string) (json.RawMessage, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingArgument)
	}
	return c.post(ctx, "/portfolios", map[string]string{"name": name})
}

// GetPortfolioBreakdown returns the holdings of a portfolio.
func (c *Client) GetPortfolioBreakdown(ctx context.Context, portfolioUUID string) (json.RawMessage, error) {
	if portfolioUUID == "" {
		return nil, fmt.Errorf("%w: portfolio_uuid", ErrMissingArgument)
	}
	return c.get(ctx, "/portfolios/"+portfolioUUID, nil)
}

// MovePortfolioFunds transfers funds between two portfolios. funds is
// the amount/currency pair the API expects.
func (c *Client) MovePortfolioFunds(ctx context.Context, funds map[string]string, sourceUUID, targetUUID string) (json.RawMessage, error) {
	if len(funds) == 0 {
		return nil, fmt.Errorf("%w: funds", ErrMissingArgument)
	}
	if sourceUUID == "" || targetUUID == "" {
		return nil, fmt.Errorf("%w: source and target portfolio UUIDs", ErrMissingArgument)
	}
	return c.post(ctx, "/portfolios/move_funds", map[string]any{
		"funds":                 funds,
		"source_portfolio_uuid": sourceUUID,
		"target_portfolio_uuid": targetUUID,
	})
}

// EditPortfolio renames a portfolio.
func (c *Client) EditPortfolio(ctx context.Context, portfolioUUID, name string) (json.RawMessage, error) {
	if portfolioUUID == "" {
		return nil, fmt.Errorf("%w: portfolio_uuid", ErrMissingArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingArgument)
	}
	return c.do(ctx, http.MethodPut, "/portfolios/"+portfolioUUID, nil, map[string]string{"name": name})
}

// DeletePortfolio deletes a portfolio.
func (c *Client) DeletePortfolio(ctx context.Context, portfolioUUID string) (json.RawMessage, error) {
	if portfolioUUID == "" {
		return nil, fmt.Errorf("%w: portfolio_uuid", ErrMissingArgument)
	}
	return c.do(ctx, http.MethodDelete, "/portfolios/"+portfolioUUID, nil, nil)
}
