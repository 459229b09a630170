package service

import (
	"context"
	"fmt"
	"strconv"
)

// FetchMarkPrice — текущая маркировочная цена символа (premium index).
func (c *Client) FetchMarkPrice(ctx context.Context, symbol string) (float64, error) {
	index, err := c.api.NewPremiumIndexService().Symbol(symbol).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("premium index %s: %w", symbol, err)
	}
	if len(index) == 0 {
		return 0, fmt.Errorf("premium index %s: empty response", symbol)
	}

	px, err := strconv.ParseFloat(index[0].MarkPrice, 64)
	if err != nil {
		return 0, fmt.Errorf("parse markPrice %q: %w", index[0].MarkPrice, err)
	}
	if px <= 0 {
		return 0, fmt.Errorf("markPrice <= 0: %.10f", px)
	}
	return px, nil
}
