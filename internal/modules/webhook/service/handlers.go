package service

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/opentracing/opentracing-go"

	"binance_bot/internal/metrics"
	"binance_bot/internal/models"
	"binance_bot/internal/runner"
	"binance_bot/pkg/logger"
)

// TradingView шлёт крошечные payload'ы, мегабайта хватит с запасом.
const maxBodyBytes = 1 << 20

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// "/" у ServeMux ловит всё подряд, отсекаем чужие пути
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, webhookResponse{Status: "error", Message: "not found"})
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeJSON(w, http.StatusMethodNotAllowed, webhookResponse{Status: "error", Message: "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, rootResponse{
		Status:        "ok",
		Service:       s.service,
		UptimeSeconds: s.state.UptimeSeconds(),
	})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeJSON(w, http.StatusMethodNotAllowed, webhookResponse{Status: "error", Message: "method not allowed"})
		return
	}

	writeJSON(w, http.StatusOK, pingResponse{
		Status:        "alive",
		TimeUTC:       time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds: s.state.UptimeSeconds(),
	})
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respond(w, http.StatusMethodNotAllowed, webhookResponse{Status: "error", Message: "method not allowed"})
		return
	}

	span := s.tracer.StartSpan("webhook_signal")
	defer span.Finish()
	ctx := opentracing.ContextWithSpan(r.Context(), span)

	// Content-Type не проверяем: TradingView шлёт JSON как text/plain
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.respond(w, http.StatusBadRequest, webhookResponse{Status: "error", Message: "malformed or empty JSON"})
		return
	}

	var payload map[string]any
	if err := sonic.Unmarshal(body, &payload); err != nil || payload == nil {
		span.SetTag("error", true)
		s.respond(w, http.StatusBadRequest, webhookResponse{Status: "error", Message: "malformed or empty JSON"})
		return
	}

	sig := signalFromPayload(payload)
	// секрет в лог не пишем
	logger.Info("[WEBHOOK] signal received: symbol=%q side=%q", sig.Symbol, sig.Side)
	s.state.TouchSignal(time.Now())
	metrics.Signals.WithLabelValues(sideLabel(sig.Side)).Inc()

	span.SetTag("signal.symbol", strings.ToUpper(strings.TrimSpace(sig.Symbol)))
	span.SetTag("signal.side", models.NormalizeSide(sig.Side))

	res := s.handler.HandleSignal(ctx, sig)
	code, resp := toHTTP(res)
	span.SetTag("http.status_code", code)
	s.respond(w, code, resp)
}

// toHTTP переводит исход транслятора в статус и тело ответа.
func toHTTP(res runner.Result) (int, webhookResponse) {
	switch res.Status {
	case runner.StatusUnauthorized:
		return http.StatusUnauthorized, webhookResponse{Status: "error", Message: res.Message}
	case runner.StatusInvalid:
		return http.StatusBadRequest, webhookResponse{Status: "error", Message: res.Message}
	case runner.StatusExchangeError:
		return http.StatusInternalServerError, webhookResponse{Status: "error", Message: res.Message}
	case runner.StatusOpened:
		return http.StatusOK, webhookResponse{Status: "success", OrderID: res.OrderID, Message: res.Message}
	case runner.StatusClosed:
		// в details уходит либо orderId закрывающего ордера,
		// либо пояснение, почему закрывать было нечего
		var details any = res.Details
		if res.OrderID != 0 {
			details = res.OrderID
		}
		return http.StatusOK, webhookResponse{Status: "success", Message: res.Message, Details: details}
	default:
		return http.StatusInternalServerError, webhookResponse{Status: "error", Message: "internal error"}
	}
}

func sideLabel(side string) string {
	s := models.NormalizeSide(side)
	if s == models.SideClose || models.IsDirectional(s) {
		return s
	}
	return "unknown"
}
