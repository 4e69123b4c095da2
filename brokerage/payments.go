package brokerage

import (
	"context"
	"encoding/json"
	"fmt"
)

// ListPaymentMethods returns all payment methods on the account.
func (c *Client) ListPaymentMethods(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "/payment_methods", nil)
}

// GetPaymentMethod returns a single payment method by ID.
func (c *Client) GetPaymentMethod(ctx context.Context, paymentMethodID string) (json.RawMessage, error) {
	if paymentMethodID == "" {
		return nil, fmt.Errorf("%w: payment_method_id", ErrMissingArgument)
	}
	return c.get(ctx, "/payment_methods/"+paymentMethodID, nil)
}
