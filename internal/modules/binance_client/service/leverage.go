package service

import (
	"context"
	"fmt"
)

// SetLeverage выставляет плечо на символ для всего аккаунта.
func (c *Client) SetLeverage(ctx context.Context, symbol string, leverage int) error {
	_, err := c.api.NewChangeLeverageService().
		Symbol(symbol).
		Leverage(leverage).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("change leverage %s -> %dx: %w", symbol, leverage, err)
	}
	return nil
}
