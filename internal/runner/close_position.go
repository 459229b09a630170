package runner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"binance_bot/internal/metrics"
	"binance_bot/internal/models"
	"binance_bot/pkg/logger"
)

// CloseOutcome — чем кончилась попытка закрыть позицию.
type CloseOutcome int

const (
	CloseFilled      CloseOutcome = iota + 1 // закрыли своим рыночным ордером
	CloseAlreadyFlat                         // позиции не было, закрывать нечего
	CloseRaced                               // биржа ответила -2022: позиция закрылась раньше нас
)

// CloseResult — результат закрытия. Ошибка уровня биржи возвращается
// отдельно и фатальна для всего запроса.
type CloseResult struct {
	Outcome CloseOutcome
	OrderID int64
	Detail  string
}

// ClosePosition идемпотентно сводит позицию по символу в ноль:
// 1) читаем позицию, ноль — выходим сразу;
// 2) снимаем активные заявки (best-effort, ошибку только логируем);
// 3) шлём рыночный ордер противоположной стороной на весь объём.
func (t *Translator) ClosePosition(ctx context.Context, symbol string) (CloseResult, error) {
	amt, err := t.ex.FetchPosition(ctx, symbol)
	if err != nil {
		metrics.Closes.WithLabelValues("failed").Inc()
		return CloseResult{}, fmt.Errorf("fetch position: %w", err)
	}

	if amt == 0 {
		logger.Info("[CLOSE] %s: no open position, nothing to do", symbol)
		metrics.Closes.WithLabelValues("no_position").Inc()
		return CloseResult{Outcome: CloseAlreadyFlat, Detail: "no position to close"}, nil
	}

	side := models.OrderSideSell
	if amt < 0 {
		side = models.OrderSideBuy
	}
	quantity := math.Abs(amt)

	if err := t.ex.CancelAllOpenOrders(ctx, symbol); err != nil {
		logger.Error("[CLOSE] %s: cancel open orders: %v", symbol, err)
	} else {
		logger.Info("[CLOSE] %s: all open orders cancelled", symbol)
	}

	logger.Info("[CLOSE] %s: closing %s qty=%.8f", symbol, side, quantity)
	orderID, err := t.ex.CreateMarketOrder(ctx, symbol, side, strconv.FormatFloat(quantity, 'f', -1, 64))
	if err != nil {
		if errors.Is(err, models.ErrWouldNotReduce) {
			logger.Info("[CLOSE] %s: position likely already closed (%v)", symbol, err)
			metrics.Closes.WithLabelValues("already_closed").Inc()
			return CloseResult{Outcome: CloseRaced, Detail: "position likely already closed"}, nil
		}
		metrics.Closes.WithLabelValues("failed").Inc()
		return CloseResult{}, fmt.Errorf("close order: %w", err)
	}

	logger.Info("[CLOSE] %s: closed, orderId=%d", symbol, orderID)
	metrics.Closes.WithLabelValues("closed").Inc()
	return CloseResult{
		Outcome: CloseFilled,
		OrderID: orderID,
		Detail:  strconv.FormatInt(orderID, 10),
	}, nil
}
