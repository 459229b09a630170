package runner

import (
	"context"
	"fmt"

	"binance_bot/internal/metrics"
	"binance_bot/internal/models"
	"binance_bot/pkg/logger"
)

// openPosition — директивная ветка (LONG/BUY/SHORT/SELL).
// Жёсткий порядок: сначала подтверждённое закрытие старой позиции,
// входа поверх неподтверждённого состояния не бывает.
func (t *Translator) openPosition(ctx context.Context, symbol, side string, sig models.Signal) Result {
	t.locks.Lock(symbol)
	defer t.locks.Unlock(symbol)

	// 1. Закрываем всё, что висит по символу. Ошибка здесь фатальна.
	if _, err := t.ClosePosition(ctx, symbol); err != nil {
		logger.Error("[OPEN] %s: close before open failed: %v", symbol, err)
		return Result{
			Status:  StatusExchangeError,
			Message: "failed to close existing position before opening a new one",
		}
	}

	// 2. Параметры входа. Валидируем после закрытия, как и весь флоу:
	// CLOSE-часть сигнала уже отработала.
	if sig.Lev == nil {
		return invalid("missing or invalid field: lev")
	}
	leverage := int(*sig.Lev)
	if leverage < 1 {
		return invalid("leverage must be an integer >= 1")
	}
	if sig.Usdt == nil {
		return invalid("missing or invalid field: usdt")
	}
	usdt := *sig.Usdt
	if usdt <= 0 {
		return invalid("usdt must be positive")
	}

	orderSide := models.OrderSideBuy
	if side == models.SideShort || side == models.SideSell {
		orderSide = models.OrderSideSell
	}

	// 3. Плечо и маркировочная цена.
	if err := t.ex.SetLeverage(ctx, symbol, leverage); err != nil {
		logger.Error("[OPEN] %s: %v", symbol, err)
		return exchangeFailed(err)
	}
	mark, err := t.ex.FetchMarkPrice(ctx, symbol)
	if err != nil {
		logger.Error("[OPEN] %s: %v", symbol, err)
		return exchangeFailed(err)
	}

	// 4. Размер: notional / markPrice, обрезанный под шаг лота.
	filters, err := t.filters.GetFilters(ctx, symbol)
	if err != nil {
		logger.Error("[OPEN] %s: symbol filters: %v", symbol, err)
		return exchangeFailed(fmt.Errorf("symbol filters: %w", err))
	}
	raw := usdt * float64(leverage) / mark
	qty := Normalize(raw, filters.StepSize, filters.MinQty)
	if qty <= 0 {
		logger.Error("[OPEN] %s: computed quantity %.8f below exchange minimum %.8f", symbol, raw, filters.MinQty)
		return invalid(fmt.Sprintf("computed quantity (%.8f) is below the exchange minimum", raw))
	}
	quantity := FormatQuantity(qty, filters.StepSize)

	// 5. Рыночный вход.
	logger.Info("[OPEN] %s %s qty=%s lev=%dx mark=%.8f", symbol, orderSide, quantity, leverage, mark)
	orderID, err := t.ex.CreateMarketOrder(ctx, symbol, orderSide, quantity)
	if err != nil {
		logger.Error("[OPEN] %s: %v", symbol, err)
		return exchangeFailed(err)
	}
	metrics.Orders.WithLabelValues("market", string(orderSide)).Inc()
	logger.Info("[OPEN] %s: market order placed, orderId=%d", symbol, orderID)
	t.n.Sendf("✅ [%s] OPEN %s qty=%s lev=%dx (orderId=%d)", symbol, side, quantity, leverage, orderID)

	// 6. Трейлинг-стоп по желанию. Вход уже случился, поэтому
	// любая ошибка дальше запрос не валит.
	t.placeTrailingStop(ctx, symbol, orderSide, quantity, sig.Tsl)

	return Result{Status: StatusOpened, OrderID: orderID, Message: "operation completed"}
}

// placeTrailingStop вешает TRAILING_STOP_MARKET противоположной стороной
// на тот же объём. Значения вне [0.1, 5.0] молча пропускаем.
func (t *Translator) placeTrailingStop(ctx context.Context, symbol string, entrySide models.OrderSide, quantity string, tsl *float64) {
	if tsl == nil {
		return
	}
	rate := *tsl
	if rate < minCallbackRate || rate > maxCallbackRate {
		if rate != 0 {
			logger.Info("[TSL] %s: callback rate %.2f outside [%.1f, %.1f], skipped", symbol, rate, minCallbackRate, maxCallbackRate)
		}
		return
	}

	side := entrySide.Opposite()
	orderID, err := t.ex.CreateTrailingStopOrder(ctx, symbol, side, quantity, rate)
	if err != nil {
		logger.Error("[TSL] %s: trailing stop not placed: %v", symbol, err)
		t.n.Sendf("⚠️ [%s] trailing stop %.1f%% failed: %v", symbol, rate, err)
		return
	}
	metrics.Orders.WithLabelValues("trailing_stop", string(side)).Inc()
	logger.Info("[TSL] %s: trailing stop %.1f%% placed, orderId=%d", symbol, rate, orderID)
}
