package service

import (
	"context"
	"fmt"
	"strconv"
)

// FetchPosition возвращает знаковый объём позиции по символу.
// Ноль — позиции нет. В hedge-режиме берём первую ненулевую ногу,
// как и весь остальной флоу (бот рассчитан на one-way).
func (c *Client) FetchPosition(ctx context.Context, symbol string) (float64, error) {
	positions, err := c.api.NewGetPositionRiskService().Symbol(symbol).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("position risk %s: %w", symbol, err)
	}

	for _, p := range positions {
		if p.Symbol != symbol {
			continue
		}
		amt, err := strconv.ParseFloat(p.PositionAmt, 64)
		if err != nil {
			return 0, fmt.Errorf("parse positionAmt %q: %w", p.PositionAmt, err)
		}
		if amt != 0 {
			return amt, nil
		}
	}
	return 0, nil
}
