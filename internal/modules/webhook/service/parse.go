package service

import (
	"strconv"
	"strings"

	"binance_bot/internal/models"
)

// signalFromPayload собирает сигнал из сырого JSON-объекта.
// Числа TradingView шлёт и числами, и строками; что не распарсилось —
// nil, разбираться с отсутствием будет транслятор.
func signalFromPayload(p map[string]any) models.Signal {
	return models.Signal{
		Secret: stringField(p, "secret"),
		Symbol: stringField(p, "symbol"),
		Side:   stringField(p, "side"),
		Lev:    numberField(p, "lev"),
		Usdt:   numberField(p, "usdt"),
		Tsl:    numberField(p, "tsl"),
	}
}

func stringField(p map[string]any, key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func numberField(p map[string]any, key string) *float64 {
	v, ok := p[key]
	if !ok {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		return &parsed
	}
	return nil
}
