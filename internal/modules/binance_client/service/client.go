package service

import (
	"binance_bot/internal/modules/config"
	"binance_bot/pkg/logger"

	"github.com/adshao/go-binance/v2/futures"
)

// Код ошибки Binance "ReduceOnly Order is rejected":
// закрывающий ордер пришёл, когда позиции уже нет.
const codeWouldNotReduce = -2022

// Client — клиент USDT-M фьючерсов Binance. Все вызовы синхронные,
// один запрос наружу на вызов, без ретраев.
type Client struct {
	api *futures.Client
}

func NewClient(cfg *config.Config) *Client {
	futures.UseTestnet = cfg.Binance.Testnet
	if cfg.Binance.Testnet {
		logger.Info("binance futures client initialized in testnet mode")
	} else {
		logger.Info("binance futures client initialized")
	}
	return &Client{
		api: futures.NewClient(cfg.Binance.APIKey, cfg.Binance.APISecret),
	}
}
