package brokerage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// GetBestBidAsk returns the best bid and ask for the given products.
func (c *Client) GetBestBidAsk(ctx context.Context, productIDs []string) (json.RawMessage, error) {
	if len(productIDs) == 0 {
		return nil, fmt.Errorf("%w: product_ids", ErrMissingArgument)
	}
	q := url.Values{}
	q.Set("product_ids", strings.Join(productIDs, ","))
	return c.get(ctx, "/best_bid_ask", q)
}

// GetProductBook returns the order book for a product. limit caps the
// number of levels when positive.
func (c *Client) GetProductBook(ctx context.Context, productID string, limit int) (json.RawMessage, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id", ErrMissingArgument)
	}
	q := url.Values{}
	q.Set("product_id", productID)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return c.get(ctx, "/product_book", q)
}

// ListProductsParams filters ListProducts. Zero values are omitted.
type ListProductsParams struct {
	ProductType        string
	ProductIDs         []string
	ContractExpiryType string
}

// ListProducts returns the tradable products.
func (c *Client) ListProducts(ctx context.Context, p ListProductsParams) (json.RawMessage, error) {
	q := url.Values{}
	if p.ProductType != "" {
		q.Set("product_type", p.ProductType)
	}
	if len(p.ProductIDs) > 0 {
		q.Set("product_ids", strings.Join(p.ProductIDs, ","))
	}
	if p.ContractExpiryType != "" {
		q.Set("contract_expiry_type", p.ContractExpiryType)
	}
	return c.get(ctx, "/products", q)
}

// GetProduct returns a single product.
func (c *Client) GetProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id", ErrMissingArgument)
	}
	return c.get(ctx, "/products/"+productID, nil)
}

// CandleParams bounds a candle query. All fields are required by the API.
type CandleParams struct {
	Start       string
	End         string
	Granularity string
}

// GetCandles returns OHLCV candles for a product.
func (c *Client) GetCandles(ctx context.Context, productID string, p CandleParams) (json.RawMessage, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id", ErrMissingArgument)
	}
	q := url.Values{}
	q.Set("start", p.Start)
	q.Set("end", p.End)
	q.Set("granularity", p.Granularity)
	return c.get(ctx, "/products/"+productID+"/candles", q)
}

// GetMarketTrades returns recent trades for a product.
func (c *Client) GetMarketTrades(ctx context.Context, productID string, limit int) (json.RawMessage, error) {
	if productID == "" {
		return nil, fmt.Errorf("%w: product_id", ErrMissingArgument)
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "/products/"+productID+"/ticker", q)
}

// TransactionsSummaryParams filters GetTransactionsSummary.
type TransactionsSummaryParams struct {
	StartDate          string
	EndDate            string
	UserNativeCurrency string
	ProductType        string
	ContractExpiryType string
}

// GetTransactionsSummary returns fee and volume totals.
func (c *Client) GetTransactionsSummary(ctx context.Context, p TransactionsSummaryParams) (json.RawMessage, error) {
	q := url.Values{}
	if p.StartDate != "" {
		q.Set("start_date", p.StartDate)
	}
	if p.EndDate != "" {
		q.Set("end_date", p.EndDate)
	}
	if p.UserNativeCurrency != "" {
		q.Set("user_native_currency", p.UserNativeCurrency)
	}
	if p.ProductType != "" {
		q.Set("product_type", p.ProductType)
	}
	if p.ContractExpiryType != "" {
		q.Set("contract_expiry_type", p.ContractExpiryType)
	}
	return c.get(ctx, "/transaction_summary", q)
}
