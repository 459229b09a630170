package service

import (
	"context"
	"fmt"
)

// CancelAllOpenOrders снимает все активные заявки по символу.
func (c *Client) CancelAllOpenOrders(ctx context.Context, symbol string) error {
	if err := c.api.NewCancelAllOpenOrdersService().Symbol(symbol).Do(ctx); err != nil {
		return fmt.Errorf("cancel all open orders %s: %w", symbol, err)
	}
	return nil
}
