package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	Signals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_signals_total",
			Help: "Webhook signals by side",
		},
		[]string{"side"},
	)

	Orders = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_orders_total",
			Help: "Orders placed",
		},
		[]string{"type", "side"},
	)

	Closes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_closes_total",
			Help: "Position close attempts by result",
		},
		[]string{"result"},
	)

	Responses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_webhook_responses_total",
			Help: "Webhook HTTP responses by status code",
		},
		[]string{"code"},
	)

	MarkPrice = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bot_mark_price",
			Help: "Last mark price from the futures stream",
		},
		[]string{"symbol"},
	)

	WSConnected = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "bot_ws_connected",
			Help: "Mark price stream connection state (0/1)",
		},
	)
)

func init() {
	prometheus.MustRegister(Signals, Orders, Closes, Responses, MarkPrice, WSConnected)
}
