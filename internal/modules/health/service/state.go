package service

import (
	"sync/atomic"
	"time"
)

// State — живое состояние процесса: готовность, аптайм, связь с биржей.
// Пишут сюда bootstrap, вебхук и поток mark price, читают хелсчеки
// и публичные ручки.
type State struct {
	ready     atomic.Bool
	startedAt time.Time

	wsConnected  atomic.Bool
	lastTickUnix atomic.Int64 // unix seconds, последний mark price из стрима

	lastSignalUnix atomic.Int64 // unix seconds, последний принятый сигнал
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

func (s *State) SetWSConnected(v bool) { s.wsConnected.Store(v) }
func (s *State) WSConnected() bool     { return s.wsConnected.Load() }

func (s *State) TouchTick(t time.Time) { s.lastTickUnix.Store(t.Unix()) }
func (s *State) LastTick() time.Time   { return unixOrZero(s.lastTickUnix.Load()) }

func (s *State) TouchSignal(t time.Time) { s.lastSignalUnix.Store(t.Unix()) }
func (s *State) LastSignal() time.Time   { return unixOrZero(s.lastSignalUnix.Load()) }

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }

// UptimeSeconds — аптайм целыми секундами, как его отдаём наружу.
func (s *State) UptimeSeconds() int64 { return int64(s.Uptime().Seconds()) }

func unixOrZero(u int64) time.Time {
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}
