package brokerage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// CreateOrderParams configures CreateOrder.
type CreateOrderParams struct {
	ClientOrderID      string         `json:"client_order_id"`
	ProductID          string         `json:"product_id"`
	Side               string         `json:"side"`
	OrderConfiguration map[string]any `json:"order_configuration"`
	RetailPortfolioID  string         `json:"retail_portfolio_id,omitempty"`
}

// CreateOrder places an order. The side is normalized to upper case.
func (c *Client) CreateOrder(ctx context.Context, p CreateOrderParams) (json.RawMessage, error) {
	switch {
	case p.ClientOrderID == "":
		return nil, fmt.Errorf("%w: client_order_id", ErrMissingArgument)
	case p.ProductID == "":
		return nil, fmt.Errorf("%w: product_id", ErrMissingArgument)
	case p.Side == "":
		return nil, fmt.Errorf("%w: side", ErrMissingArgument)
	case len(p.OrderConfiguration) == 0:
		return nil, fmt.Errorf("%w: order_configuration", ErrMissingArgument)
	}
	p.Side = strings.ToUpper(p.Side)
	return c.post(ctx, "/orders", p)
}

// PreviewOrderParams configures PreviewOrder.
type PreviewOrderParams struct {
	ProductID          string         `json:"product_id"`
	Side               string         `json:"side"`
	OrderConfiguration map[string]any `json:"order_configuration"`
	CommissionRate     map[string]any `json:"commission_rate,omitempty"`
}

// PreviewOrder simulates an order without placing it.
func (c *Client) PreviewOrder(ctx context.Context, p PreviewOrderParams) (json.RawMessage, error) {
	if p.ProductID == "" || p.Side == "" || len(p.OrderConfiguration) == 0 {
		return nil, fmt.Errorf("%w: product_id, side and order_configuration", ErrMissingArgument)
	}
	p.Side = strings.ToUpper(p.Side)
	return c.post(ctx, "/orders/preview", p)
}

// CancelOrders cancels a batch of orders by ID.
func (c *Client) CancelOrders(ctx context.Context, orderIDs []string) (json.RawMessage, error) {
	if len(orderIDs) == 0 {
		return nil, fmt.Errorf("%w: order_ids", ErrMissingArgument)
	}
	return c.post(ctx, "/orders/batch_cancel", map[string]any{"order_ids": orderIDs})
}

// ListOrdersParams filters ListOrders. Zero values are omitted.
type ListOrdersParams struct {
	ProductID   string
	OrderStatus string
	Limit       int
	StartDate   string
	EndDate     string
}

// ListOrders returns historical orders matching the filter.
func (c *Client) ListOrders(ctx context.Context, p ListOrdersParams) (json.RawMessage, error) {
	limit := p.Limit
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if p.ProductID != "" {
		q.Set("product_id", p.ProductID)
	}
	if p.OrderStatus != "" {
		q.Set("order_status", p.OrderStatus)
	}
	if p.StartDate != "" {
		q.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("end_date", p.EndDate)
	}
	return c.get(ctx, "/orders/historical/batch", q)
}

// GetOrder returns a single historical order by ID.
func (c *Client) GetOrder(ctx context.Context, orderID string) (json.RawMessage, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order_id", ErrMissingArgument)
	}
	return c.get(ctx, "/orders/historical/"+orderID, nil)
}

// GetFills returns completed trades, optionally filtered by product.
func (c *Client) GetFills(ctx context.Context, productID string, limit int) (json.RawMessage, error) {
	q := url.Values{}
	if productID != "" {
		q.Set("product_id", productID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return c.get(ctx, "/orders/historical/fills", q)
}
