package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Ручная отправка сигнала в вебхук — проверить деплой без TradingView:
//
//	signal --side LONG --symbol BTCUSDT --lev 10 --usdt 100 --tsl 1.5
//	signal --side CLOSE --symbol BTCUSDT
func main() {
	pflag.String("url", "http://localhost:5000/webhook", "webhook endpoint")
	pflag.String("symbol", "BTCUSDT", "futures symbol")
	pflag.String("side", "LONG", "LONG, BUY, SHORT, SELL or CLOSE")
	pflag.Float64("lev", 10, "leverage")
	pflag.Float64("usdt", 100, "notional in USDT")
	pflag.Float64("tsl", 0, "trailing stop percent, 0 = off")
	pflag.String("secret", "", "webhook secret (defaults to WEBHOOK_SECRET env)")
	pflag.Parse()

	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(errors.Wrap(err, "bind flags"))
	}
	_ = viper.BindEnv("secret", "WEBHOOK_SECRET")

	secret := viper.GetString("secret")
	if secret == "" {
		panic("has no webhook secret: pass --secret or set WEBHOOK_SECRET")
	}

	side := viper.GetString("side")
	payload := map[string]any{
		"secret": secret,
		"symbol": viper.GetString("symbol"),
		"side":   side,
	}
	if !strings.EqualFold(side, "CLOSE") {
		payload["lev"] = viper.GetFloat64("lev")
		payload["usdt"] = viper.GetFloat64("usdt")
		if tsl := viper.GetFloat64("tsl"); tsl > 0 {
			payload["tsl"] = tsl
		}
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		panic(errors.Wrap(err, "marshal payload"))
	}

	resp, err := http.Post(viper.GetString("url"), "application/json", bytes.NewReader(body))
	if err != nil {
		panic(errors.Wrap(err, "send signal"))
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	out, err := io.ReadAll(resp.Body)
	if err != nil {
		panic(errors.Wrap(err, "read response"))
	}

	fmt.Printf("%s\n%s\n", resp.Status, out)
	if resp.StatusCode >= http.StatusBadRequest {
		os.Exit(1)
	}
}
