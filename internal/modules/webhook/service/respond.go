package service

import (
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"

	"binance_bot/internal/metrics"
)

type rootResponse struct {
	Status        string `json:"status"`
	Service       string `json:"service"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

type pingResponse struct {
	Status        string `json:"status"`
	TimeUTC       string `json:"time_utc"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

type webhookResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
	OrderID int64  `json:"orderId,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	buf, err := sonic.Marshal(body)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(buf)
}

// respond — как writeJSON, но со счётчиком ответов вебхука.
func (s *Server) respond(w http.ResponseWriter, code int, body webhookResponse) {
	writeJSON(w, code, body)
	metrics.Responses.WithLabelValues(strconv.Itoa(code)).Inc()
}
