package instruments

import (
	binance "binance_bot/internal/modules/binance_client/service"
	"binance_bot/internal/modules/instruments/service"

	"go.uber.org/fx"
)

// Module поднимает кэш фильтров символов поверх клиента биржи.
func Module() fx.Option {
	return fx.Module("instruments",
		fx.Provide(
			func(c *binance.Client) service.Source { return c },
			service.NewCache,
		),
	)
}
