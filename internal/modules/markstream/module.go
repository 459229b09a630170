package markstream

import (
	"context"

	"go.uber.org/fx"

	"binance_bot/internal/modules/markstream/service"
)

// Module поднимает поток mark price по watchlist'у.
func Module() fx.Option {
	return fx.Module("markstream",
		fx.Provide(
			service.NewStream,
		),
		fx.Invoke(func(lc fx.Lifecycle, s *service.Stream) {
			// контекст OnStart живёт только время старта,
			// стримеру нужен свой
			var cancel context.CancelFunc
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					ctx, c := context.WithCancel(context.Background())
					cancel = c
					go s.Run(ctx)
					return nil
				},
				OnStop: func(_ context.Context) error {
					if cancel != nil {
						cancel()
					}
					return nil
				},
			})
		}),
	)
}
