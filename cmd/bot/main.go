package main

import (
	"context"
	"log"

	"github.com/opentracing/opentracing-go"
	"go.uber.org/fx"

	binance "binance_bot/internal/modules/binance_client"
	binanceservice "binance_bot/internal/modules/binance_client/service"
	"binance_bot/internal/modules/bootstrap"
	"binance_bot/internal/modules/config"
	"binance_bot/internal/modules/health"
	"binance_bot/internal/modules/instruments"
	instrservice "binance_bot/internal/modules/instruments/service"
	"binance_bot/internal/modules/markstream"
	"binance_bot/internal/modules/webhook"
	"binance_bot/internal/notify"
	"binance_bot/internal/runner"
	"binance_bot/pkg/logger"
	"binance_bot/pkg/tracing"
)

func main() {
	if err := logger.Init("binance-bot"); err != nil {
		log.Fatalf("logger init: %v", err)
	}

	app := fx.New(
		config.Module(),
		binance.Module(),
		instruments.Module(),
		runner.Module(),
		webhook.Module(),
		health.Module(),
		markstream.Module(),
		bootstrap.Module(),

		fx.Provide(
			// транслятор видит биржу и кэш только через интерфейсы
			func(c *binanceservice.Client) runner.Exchange { return c },
			func(c *instrservice.Cache) runner.FilterSource { return c },

			// Notifier: если TELEGRAM_* нет — используем stdout
			func(cfg *config.Config) notify.Notifier {
				if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
					if tg, err := notify.NewTelegram(cfg.Telegram.Token, cfg.Telegram.ChatID); err == nil {
						return tg
					}
				}
				return notify.NewStdout()
			},

			func(lc fx.Lifecycle, cfg *config.Config) (opentracing.Tracer, error) {
				tracing.SetServiceName(cfg.Service.Name)
				tracer, closeTracer, err := tracing.InitTracer(tracing.Config{
					Host: cfg.Jaeger.Host,
					Port: cfg.Jaeger.Port,
				})
				if err != nil {
					return nil, err
				}
				lc.Append(fx.Hook{
					OnStop: func(context.Context) error {
						closeTracer()
						return nil
					},
				})
				return tracer, nil
			},
		),
	)

	app.Run()
}
