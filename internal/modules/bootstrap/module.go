package bootstrap

import (
	"context"
	"log"
	"time"

	"go.uber.org/fx"

	bootstrap "binance_bot/internal/modules/bootstrap/service"
	"binance_bot/internal/modules/config"
	health "binance_bot/internal/modules/health/service"
	instruments "binance_bot/internal/modules/instruments/service"
)

const warmupTimeout = 30 * time.Second

func Module() fx.Option {
	return fx.Module("bootstrap",
		fx.Provide(
			func(c *instruments.Cache) bootstrap.FilterWarmer { return c },
			bootstrap.NewWarmuper, // -> bootstrap.Warmuper
		),
		fx.Invoke(func(lc fx.Lifecycle, cfg *config.Config, wu *bootstrap.Warmuper, state *health.State) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					// контекст старта гаснет сразу после OnStart,
					// прогреву нужен свой
					go func() {
						ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
						defer cancel()

						if err := wu.Warmup(ctx, cfg.Watchlist); err != nil {
							log.Printf("[BOOT] warmup error: %v", err)
						} else {
							log.Printf("[BOOT] warmup done: %d symbols", len(cfg.Watchlist))
						}
						// сервис готов в любом случае: холодный символ
						// догреется при первом сигнале
						state.SetReady(true)
					}()
					return nil
				},
			})
		}),
	)
}
