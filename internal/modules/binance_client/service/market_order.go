package service

import (
	"context"
	"errors"
	"fmt"

	"binance_bot/internal/models"

	"github.com/adshao/go-binance/v2/common"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/google/uuid"
)

// CreateMarketOrder шлёт рыночный ордер. Количество уже отформатировано
// под шаг лота вызывающей стороной.
func (c *Client) CreateMarketOrder(ctx context.Context, symbol string, side models.OrderSide, quantity string) (int64, error) {
	order, err := c.api.NewCreateOrderService().
		Symbol(symbol).
		Side(futures.SideType(side)).
		Type(futures.OrderTypeMarket).
		Quantity(quantity).
		NewClientOrderID(uuid.NewString()).
		Do(ctx)
	if err != nil {
		var apiErr *common.APIError
		if errors.As(err, &apiErr) && apiErr.Code == codeWouldNotReduce {
			return 0, fmt.Errorf("market order %s %s: %w", symbol, side, models.ErrWouldNotReduce)
		}
		return 0, fmt.Errorf("market order %s %s: %w", symbol, side, err)
	}
	return order.OrderID, nil
}
