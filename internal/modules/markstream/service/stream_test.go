package service

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"binance_bot/internal/metrics"
	appcfg "binance_bot/internal/modules/config"
	health "binance_bot/internal/modules/health/service"
)

func newTestStream(testnet bool, watch ...string) *Stream {
	cfg := &appcfg.Config{Watchlist: watch}
	cfg.Binance.Testnet = testnet
	return NewStream(cfg, health.NewState())
}

func Test_StreamURL(t *testing.T) {
	s := newTestStream(true, " btcusdt", "ETHUSDT")
	require.Equal(t,
		"wss://stream.binancefuture.com/stream?streams=btcusdt@markPrice/ethusdt@markPrice",
		s.streamURL())

	s = newTestStream(false, "BTCUSDT")
	require.Equal(t,
		"wss://fstream.binance.com/stream?streams=btcusdt@markPrice",
		s.streamURL())
}

func Test_HandleFrame(t *testing.T) {
	s := newTestStream(true, "BTCUSDT")

	s.handleFrame([]byte(`{"stream":"btcusdt@markPrice","data":{"e":"markPriceUpdate","s":"BTCUSDT","p":"50123.45"}}`))
	require.False(t, s.state.LastTick().IsZero())
	require.Equal(t, 50123.45, testutil.ToFloat64(metrics.MarkPrice.WithLabelValues("BTCUSDT")))
}

func Test_HandleFrame_IgnoresGarbage(t *testing.T) {
	s := newTestStream(true, "BTCUSDT")

	s.handleFrame([]byte(`not json`))
	s.handleFrame([]byte(`{"data":{"e":"kline","s":"BTCUSDT","p":"1"}}`))
	s.handleFrame([]byte(`{"data":{"e":"markPriceUpdate","s":"ETHUSDT","p":"-5"}}`))
	s.handleFrame([]byte(`{"data":{"e":"markPriceUpdate","s":"","p":"1"}}`))

	require.True(t, s.state.LastTick().IsZero())
}
