package brokerage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// GetServerTime returns the API server time. No credential is sent.
func (c *Client) GetServerTime(ctx context.Context) (json.RawMessage, error) {
	return c.public(ctx, c.baseURL+"/time", nil)
}

// GetPublicProductBook returns the order book without authentication.
func (c *Client) GetPublicProductBook(ctx context.Context, productID string, limit int) (json.RawMessage, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id", ErrMissingArgument)
	}
	q := url.Values{}
	q.Set("product_id", productID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return c.public(ctx, c.pubURL+"/product_book", q)
}

// ListPublicProducts lists products without authentication.
func (c *Client) ListPublicProducts(ctx context.Context, productType string, productIDs []string) (json.RawMessage, error) {
	q := url.Values{}
	if productType != "" {
		q.Set("product_type", productType)
	}
	if len(productIDs) > 0 {
		q.Set("product_ids", strings.Join(productIDs, ","))
	}
	return c.public(ctx, c.pubURL+"/products", q)
}

// GetPublicProduct returns product details without authentication.
func (c *Client) GetPublicProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id", ErrMissingArgument)
	}
	return c.public(ctx, c.pubURL+"/products/"+productID, nil)
}

// GetPublicCandles returns OHLCV candles without authentication.
func (c *Client) GetPublicCandles(ctx context.Context, productID string, p CandleParams) (json.RawMessage, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id", ErrMissingArgument)
	}
	q := url.Values{}
	q.Set("start", p.Start)
	q.Set("end", p.End)
	q.Set("granularity", p.Granularity)
	return c.public(ctx, c.pubURL+"/products/"+productID+"/candles", q)
}

// GetPublicMarketTrades returns recent trades without authentication.
func (c *Client) GetPublicMarketTrades(ctx context.Context, productID string, limit int) (json.RawMessage, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id", ErrMissingArgument)
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return c.public(ctx, c.pubURL+"/products/"+productID+"/ticker", q)
}
