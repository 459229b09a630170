package binance_client

import (
	"binance_bot/internal/modules/binance_client/service"

	"go.uber.org/fx"
)

// Module поднимает REST-клиент фьючерсов Binance.
func Module() fx.Option {
	return fx.Module("binance_client",
		fx.Provide(
			service.NewClient,
		),
	)
}
