package service

import (
	"context"
	"fmt"
	"strconv"

	"binance_bot/internal/models"

	"github.com/adshao/go-binance/v2/futures"
	"github.com/google/uuid"
)

// CreateTrailingStopOrder ставит TRAILING_STOP_MARKET с отступом callbackRate
// в процентах от маркировочной цены. Binance принимает не больше одного
// знака после запятой.
func (c *Client) CreateTrailingStopOrder(
	ctx context.Context,
	symbol string,
	side models.OrderSide,
	quantity string,
	callbackRate float64,
) (int64, error) {
	order, err := c.api.NewCreateOrderService().
		Symbol(symbol).
		Side(futures.SideType(side)).
		Type(futures.OrderTypeTrailingStopMarket).
		Quantity(quantity).
		CallbackRate(strconv.FormatFloat(callbackRate, 'f', 1, 64)).
		WorkingType(futures.WorkingTypeMarkPrice).
		NewClientOrderID(uuid.NewString()).
		Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("trailing stop %s %s rate=%.1f: %w", symbol, side, callbackRate, err)
	}
	return order.OrderID, nil
}
