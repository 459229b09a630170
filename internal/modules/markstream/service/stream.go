package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"binance_bot/internal/metrics"
	appcfg "binance_bot/internal/modules/config"
	health "binance_bot/internal/modules/health/service"
)

const (
	liveStreamHost    = "wss://fstream.binance.com"
	testnetStreamHost = "wss://stream.binancefuture.com"
)

// Stream держит один WebSocket на весь watchlist и гонит mark price
// в метрики и health-состояние. На торговый путь не влияет:
// цена для входа всегда берётся свежим REST-запросом.
type Stream struct {
	watch   []string
	testnet bool
	state   *health.State
	dialer  *websocket.Dialer
}

func NewStream(cfg *appcfg.Config, state *health.State) *Stream {
	watch := make([]string, 0, len(cfg.Watchlist))
	for _, s := range cfg.Watchlist {
		if s = strings.TrimSpace(s); s != "" {
			watch = append(watch, strings.ToUpper(s))
		}
	}
	return &Stream{
		watch:   watch,
		testnet: cfg.Binance.Testnet,
		state:   state,
		dialer:  &websocket.Dialer{},
	}
}

// streamURL — combined stream, все символы в одном соединении.
func (s *Stream) streamURL() string {
	host := liveStreamHost
	if s.testnet {
		host = testnetStreamHost
	}
	streams := make([]string, 0, len(s.watch))
	for _, sym := range s.watch {
		streams = append(streams, strings.ToLower(sym)+"@markPrice")
	}
	return host + "/stream?streams=" + strings.Join(streams, "/")
}

// Run — reconnect-цикл на всю жизнь процесса, выход только по ctx.
func (s *Stream) Run(ctx context.Context) {
	if len(s.watch) == 0 {
		log.Println("[WS] watchlist is empty, mark price stream disabled")
		return
	}
	url := s.streamURL()

	for {
		log.Printf("[WS] connect %d symbols", len(s.watch))
		conn, _, err := s.dialer.DialContext(ctx, url, nil)
		if err != nil {
			log.Printf("[WS] dial error: %v", err)
			s.setConnected(false)
			select {
			case <-ctx.Done():
				return
			default:
				time.Sleep(time.Second)
				continue
			}
		}
		s.setConnected(true)

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				log.Printf("[WS] read error: %v", err)
				_ = conn.Close()
				s.setConnected(false)
				break
			}
			s.handleFrame(msg)
		}

		select {
		case <-ctx.Done():
			return
		default:
			time.Sleep(time.Second)
		}
	}
}

func (s *Stream) handleFrame(msg []byte) {
	var frame struct {
		Stream string `json:"stream"`
		Data   struct {
			Event  string `json:"e"`
			Symbol string `json:"s"`
			Price  string `json:"p"`
		} `json:"data"`
	}
	if err := json.Unmarshal(msg, &frame); err != nil {
		return
	}
	if frame.Data.Event != "markPriceUpdate" || frame.Data.Symbol == "" {
		return
	}

	px, err := strconv.ParseFloat(frame.Data.Price, 64)
	if err != nil || px <= 0 {
		return
	}

	metrics.MarkPrice.WithLabelValues(frame.Data.Symbol).Set(px)
	s.state.TouchTick(time.Now())
}

func (s *Stream) setConnected(v bool) {
	s.state.SetWSConnected(v)
	if v {
		metrics.WSConnected.Set(1)
		return
	}
	metrics.WSConnected.Set(0)
}
