package runner_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"binance_bot/internal/models"
	"binance_bot/internal/runner"

	"github.com/stretchr/testify/require"
)

func Test_HandleSignal_RejectsBadSecret(t *testing.T) {
	ex := newFakeExchange()
	tr, n := newTranslator(ex, newFakeFilters())

	sig := openSignal(models.SideLong, 10, 100)
	sig.Secret = "guess"

	res := tr.HandleSignal(context.Background(), sig)
	require.Equal(t, runner.StatusUnauthorized, res.Status)
	require.Equal(t, "unauthorized", res.Message)

	// до биржи чужой сигнал не доходит
	require.Empty(t, ex.lastSymbol)
	require.Empty(t, ex.marketOrders)
	require.Empty(t, n.msgs)
}

func Test_HandleSignal_MissingSymbol(t *testing.T) {
	tr, _ := newTranslator(newFakeExchange(), newFakeFilters())

	sig := signal(models.SideClose)
	sig.Symbol = "   "

	res := tr.HandleSignal(context.Background(), sig)
	require.Equal(t, runner.StatusInvalid, res.Status)
	require.Equal(t, "missing required field: symbol", res.Message)
}

func Test_HandleSignal_MissingSide(t *testing.T) {
	tr, _ := newTranslator(newFakeExchange(), newFakeFilters())

	sig := signal("")

	res := tr.HandleSignal(context.Background(), sig)
	require.Equal(t, runner.StatusInvalid, res.Status)
	require.Equal(t, "missing required field: side", res.Message)
}

func Test_HandleSignal_UnknownSide(t *testing.T) {
	ex := newFakeExchange()
	tr, _ := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), signal("HOLD"))
	require.Equal(t, runner.StatusInvalid, res.Status)
	require.Contains(t, res.Message, `unrecognized side "HOLD"`)
	require.Empty(t, ex.marketOrders)
}

func Test_HandleSignal_CloseHappyPath(t *testing.T) {
	ex := newFakeExchange()
	ex.position = 1.5
	tr, n := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), signal(models.SideClose))
	require.Equal(t, runner.StatusClosed, res.Status)
	require.Equal(t, "close processed for BTCUSDT", res.Message)
	require.Equal(t, "1001", res.Details)
	require.Equal(t, int64(1001), res.OrderID)

	require.Len(t, n.msgs, 1)
	require.Contains(t, n.msgs[0], "position closed")
}

func Test_HandleSignal_CloseWhenFlat(t *testing.T) {
	ex := newFakeExchange()
	tr, n := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), signal(models.SideClose))
	require.Equal(t, runner.StatusClosed, res.Status)
	require.Equal(t, "no position to close", res.Details)
	require.Empty(t, ex.marketOrders)
	require.Empty(t, n.msgs)
}

func Test_HandleSignal_NormalizesCase(t *testing.T) {
	ex := newFakeExchange()
	tr, _ := newTranslator(ex, newFakeFilters())

	sig := signal("close")
	sig.Symbol = " btcusdt "

	res := tr.HandleSignal(context.Background(), sig)
	require.Equal(t, runner.StatusClosed, res.Status)
	require.Equal(t, "BTCUSDT", ex.lastSymbol)
}

func Test_HandleSignal_OpenLong(t *testing.T) {
	ex := newFakeExchange() // mark = 50000
	tr, n := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 10, 100))
	require.Equal(t, runner.StatusOpened, res.Status)
	require.Equal(t, int64(1001), res.OrderID)
	require.Equal(t, "operation completed", res.Message)

	require.Equal(t, []int{10}, ex.leverages)
	require.Len(t, ex.marketOrders, 1)
	require.Equal(t, models.OrderSideBuy, ex.marketOrders[0].side)
	// 100 USDT * 10x / 50000 = 0.02, шаг 0.001
	require.Equal(t, "0.020", ex.marketOrders[0].quantity)

	require.Len(t, n.msgs, 1)
	require.Contains(t, n.msgs[0], "OPEN LONG")
}

func Test_HandleSignal_OpenShortUsesSell(t *testing.T) {
	ex := newFakeExchange()
	tr, _ := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideSell, 5, 200))
	require.Equal(t, runner.StatusOpened, res.Status)
	require.Len(t, ex.marketOrders, 1)
	require.Equal(t, models.OrderSideSell, ex.marketOrders[0].side)
}

func Test_HandleSignal_ClosesBeforeOpening(t *testing.T) {
	ex := newFakeExchange()
	ex.position = 2 // старый лонг, сигнал снова LONG
	tr, _ := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 10, 100))
	require.Equal(t, runner.StatusOpened, res.Status)

	// сперва закрывающий SELL всего объёма, затем новый вход BUY
	require.Len(t, ex.marketOrders, 2)
	require.Equal(t, models.OrderSideSell, ex.marketOrders[0].side)
	require.Equal(t, "2", ex.marketOrders[0].quantity)
	require.Equal(t, models.OrderSideBuy, ex.marketOrders[1].side)
}

func Test_HandleSignal_MissingLevStillCloses(t *testing.T) {
	ex := newFakeExchange()
	ex.position = 1
	tr, _ := newTranslator(ex, newFakeFilters())

	sig := signal(models.SideLong)
	sig.Usdt = f64(100)

	res := tr.HandleSignal(context.Background(), sig)
	require.Equal(t, runner.StatusInvalid, res.Status)
	require.Equal(t, "missing or invalid field: lev", res.Message)

	// закрытие уже произошло: валидация входа идёт после него
	require.Len(t, ex.marketOrders, 1)
	require.Equal(t, models.OrderSideSell, ex.marketOrders[0].side)
	require.Empty(t, ex.leverages)
}

func Test_HandleSignal_LeverageBelowOne(t *testing.T) {
	tr, _ := newTranslator(newFakeExchange(), newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 0.5, 100))
	require.Equal(t, runner.StatusInvalid, res.Status)
	require.Equal(t, "leverage must be an integer >= 1", res.Message)
}

func Test_HandleSignal_MissingUsdt(t *testing.T) {
	tr, _ := newTranslator(newFakeExchange(), newFakeFilters())

	sig := signal(models.SideLong)
	sig.Lev = f64(10)

	res := tr.HandleSignal(context.Background(), sig)
	require.Equal(t, runner.StatusInvalid, res.Status)
	require.Equal(t, "missing or invalid field: usdt", res.Message)
}

func Test_HandleSignal_NonPositiveUsdt(t *testing.T) {
	tr, _ := newTranslator(newFakeExchange(), newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 10, -5))
	require.Equal(t, runner.StatusInvalid, res.Status)
	require.Equal(t, "usdt must be positive", res.Message)
}

func Test_HandleSignal_QuantityBelowMinimum(t *testing.T) {
	ex := newFakeExchange() // mark = 50000
	tr, _ := newTranslator(ex, newFakeFilters())

	// 1 USDT * 1x / 50000 = 0.00002 — меньше шага и minQty
	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 1, 1))
	require.Equal(t, runner.StatusInvalid, res.Status)
	require.Contains(t, res.Message, "below the exchange minimum")
	require.Empty(t, ex.marketOrders)
}

func Test_HandleSignal_CloseFailureAbortsOpen(t *testing.T) {
	ex := newFakeExchange()
	ex.position = 1
	ex.marketErr = errors.New("boom")
	tr, _ := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 10, 100))
	require.Equal(t, runner.StatusExchangeError, res.Status)
	require.Equal(t, "failed to close existing position before opening a new one", res.Message)

	// до выставления плеча и нового входа дело не дошло
	require.Empty(t, ex.leverages)
	require.Empty(t, ex.marketOrders)
}

func Test_HandleSignal_RacedCloseStillOpens(t *testing.T) {
	ex := newFakeExchange()
	ex.position = 1
	ex.marketErr = fmt.Errorf("create order: %w", models.ErrWouldNotReduce)
	ex.marketFailOnce = true
	tr, _ := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 10, 100))
	require.Equal(t, runner.StatusOpened, res.Status)

	// закрывающий ордер словил -2022, вход всё равно состоялся
	require.Len(t, ex.marketOrders, 1)
	require.Equal(t, models.OrderSideBuy, ex.marketOrders[0].side)
}

func Test_HandleSignal_SetLeverageError(t *testing.T) {
	ex := newFakeExchange()
	ex.leverageErr = errors.New("leverage rejected")
	tr, _ := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 10, 100))
	require.Equal(t, runner.StatusExchangeError, res.Status)
	require.Empty(t, ex.marketOrders)
}

func Test_HandleSignal_MarkPriceError(t *testing.T) {
	ex := newFakeExchange()
	ex.markErr = errors.New("no premium index")
	tr, _ := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 10, 100))
	require.Equal(t, runner.StatusExchangeError, res.Status)
}

func Test_HandleSignal_FiltersError(t *testing.T) {
	filters := newFakeFilters()
	filters.err = fmt.Errorf("BTCUSDT: %w", models.ErrSymbolNotFound)
	tr, _ := newTranslator(newFakeExchange(), filters)

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 10, 100))
	require.Equal(t, runner.StatusExchangeError, res.Status)
	require.Contains(t, res.Message, "symbol filters")
}

func Test_HandleSignal_OpenOrderError(t *testing.T) {
	ex := newFakeExchange()
	ex.marketErr = errors.New("margin is insufficient")
	tr, _ := newTranslator(ex, newFakeFilters())

	res := tr.HandleSignal(context.Background(), openSignal(models.SideLong, 10, 100))
	require.Equal(t, runner.StatusExchangeError, res.Status)
	require.Contains(t, res.Message, "margin is insufficient")
}

func Test_HandleSignal_TrailingStopPlaced(t *testing.T) {
	ex := newFakeExchange()
	tr, _ := newTranslator(ex, newFakeFilters())

	sig := openSignal(models.SideLong, 10, 100)
	sig.Tsl = f64(1.5)

	res := tr.HandleSignal(context.Background(), sig)
	require.Equal(t, runner.StatusOpened, res.Status)

	require.Len(t, ex.tslOrders, 1)
	require.Equal(t, models.OrderSideSell, ex.tslOrders[0].side) // противоположная входу
	require.Equal(t, "0.020", ex.tslOrders[0].quantity)
	require.Equal(t, 1.5, ex.tslOrders[0].rate)
}

func Test_HandleSignal_TrailingStopOutOfRangeSkipped(t *testing.T) {
	for _, rate := range []float64{0, 0.05, 5.1, -1} {
		ex := newFakeExchange()
		tr, _ := newTranslator(ex, newFakeFilters())

		sig := openSignal(models.SideLong, 10, 100)
		sig.Tsl = f64(rate)

		res := tr.HandleSignal(context.Background(), sig)
		require.Equal(t, runner.StatusOpened, res.Status, "rate %v", rate)
		require.Empty(t, ex.tslOrders, "rate %v", rate)
	}
}

func Test_HandleSignal_TrailingStopFailureNonFatal(t *testing.T) {
	ex := newFakeExchange()
	ex.tslErr = errors.New("trailing rejected")
	tr, n := newTranslator(ex, newFakeFilters())

	sig := openSignal(models.SideLong, 10, 100)
	sig.Tsl = f64(2)

	// вход уже состоялся, упавший трейлинг не меняет исход
	res := tr.HandleSignal(context.Background(), sig)
	require.Equal(t, runner.StatusOpened, res.Status)
	require.Equal(t, int64(1001), res.OrderID)

	require.Len(t, n.msgs, 2)
	require.Contains(t, n.msgs[1], "trailing stop")
}
