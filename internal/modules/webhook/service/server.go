package service

import (
	"context"
	"net/http"

	"github.com/opentracing/opentracing-go"

	"binance_bot/internal/models"
	appcfg "binance_bot/internal/modules/config"
	health "binance_bot/internal/modules/health/service"
	"binance_bot/internal/runner"
)

// SignalHandler — то, что стоит за вебхуком. Живая реализация —
// транслятор, в тестах вместо него фейк.
type SignalHandler interface {
	HandleSignal(ctx context.Context, sig models.Signal) runner.Result
}

// Server — публичная HTTP-поверхность: / и /ping для keep-alive
// (Render и подобные усыпляют простаивающие инстансы), /webhook
// для сигналов TradingView.
type Server struct {
	service string
	handler SignalHandler
	state   *health.State
	tracer  opentracing.Tracer
}

func NewServer(cfg *appcfg.Config, h SignalHandler, state *health.State, tracer opentracing.Tracer) *Server {
	return &Server{
		service: cfg.Service.Name,
		handler: h,
		state:   state,
		tracer:  tracer,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/ping", s.handlePing)
	mux.HandleFunc("/webhook", s.handleWebhook)
	return mux
}
