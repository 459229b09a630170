package runner

import (
	"context"
	"fmt"
	"strings"

	"binance_bot/internal/models"
	"binance_bot/pkg/logger"
)

// HandleSignal гонит сигнал через все ворота по порядку: секрет,
// обязательные поля, разбор стороны. До биржи доходит только то,
// что прошло авторизацию и валидацию.
func (t *Translator) HandleSignal(ctx context.Context, sig models.Signal) Result {
	// 1. Секрет проверяем раньше всего остального.
	if sig.Secret != t.secret {
		logger.Error("[SIGNAL] rejected: invalid webhook secret")
		return Result{Status: StatusUnauthorized, Message: "unauthorized"}
	}

	// 2. Обязательные поля.
	if strings.TrimSpace(sig.Symbol) == "" {
		return invalid("missing required field: symbol")
	}
	if strings.TrimSpace(sig.Side) == "" {
		return invalid("missing required field: side")
	}

	symbol := strings.ToUpper(strings.TrimSpace(sig.Symbol))
	side := models.NormalizeSide(sig.Side)

	// 3. Ветка действия.
	switch {
	case side == models.SideClose:
		return t.closeOnly(ctx, symbol)
	case models.IsDirectional(side):
		return t.openPosition(ctx, symbol, side, sig)
	default:
		return invalid(fmt.Sprintf("unrecognized side %q: use LONG, BUY, SHORT, SELL or CLOSE", sig.Side))
	}
}

// closeOnly — ветка CLOSE: только закрытие, без нового входа.
func (t *Translator) closeOnly(ctx context.Context, symbol string) Result {
	t.locks.Lock(symbol)
	defer t.locks.Unlock(symbol)

	res, err := t.ClosePosition(ctx, symbol)
	if err != nil {
		logger.Error("[CLOSE] %s: %v", symbol, err)
		return exchangeFailed(err)
	}

	if res.Outcome == CloseFilled {
		t.n.Sendf("✅ [%s] position closed (orderId=%d)", symbol, res.OrderID)
	}
	return Result{
		Status:  StatusClosed,
		Message: fmt.Sprintf("close processed for %s", symbol),
		Details: res.Detail,
		OrderID: res.OrderID,
	}
}
