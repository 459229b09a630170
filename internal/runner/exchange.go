package runner

import (
	"context"

	"binance_bot/internal/models"
)

// Exchange — всё, что транслятору нужно от биржи. Живой клиент
// отдаёт Binance, в тестах вместо него стоит фейк.
type Exchange interface {
	FetchPosition(ctx context.Context, symbol string) (float64, error)
	CancelAllOpenOrders(ctx context.Context, symbol string) error
	SetLeverage(ctx context.Context, symbol string, leverage int) error
	FetchMarkPrice(ctx context.Context, symbol string) (float64, error)
	CreateMarketOrder(ctx context.Context, symbol string, side models.OrderSide, quantity string) (int64, error)
	CreateTrailingStopOrder(ctx context.Context, symbol string, side models.OrderSide, quantity string, callbackRate float64) (int64, error)
}

// FilterSource — источник фильтров символа (кэш инструментов).
type FilterSource interface {
	GetFilters(ctx context.Context, symbol string) (models.SymbolFilters, error)
}
