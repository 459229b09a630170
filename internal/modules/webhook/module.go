package webhook

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/fx"

	appcfg "binance_bot/internal/modules/config"
	"binance_bot/internal/modules/webhook/service"
	"binance_bot/internal/runner"
)

// Config — адрес публичного сервера: вебхук и keep-alive ручки.
type Config struct {
	Addr string
}

func NewConfig(cfg *appcfg.Config) Config {
	return Config{Addr: fmt.Sprintf("%s:%d", cfg.Service.Host, cfg.Service.PublicPort)}
}

func RunHTTP(lc fx.Lifecycle, cfg Config, srv *service.Server) {
	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			go func() { _ = httpSrv.Serve(ln) }()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return httpSrv.Shutdown(ctx)
		},
	})
}

func Module() fx.Option {
	return fx.Module("webhook",
		fx.Provide(
			NewConfig,
			func(t *runner.Translator) service.SignalHandler { return t },
			service.NewServer,
		),
		fx.Invoke(RunHTTP),
	)
}
