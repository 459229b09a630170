package runner

import "sync"

// symbolLocks сериализует работу с одним символом: два почти одновременных
// сигнала не должны перемешать свои close-then-open последовательности.
// Разные символы друг другу не мешают.
type symbolLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSymbolLocks() *symbolLocks {
	return &symbolLocks{locks: make(map[string]*sync.Mutex)}
}

func (s *symbolLocks) get(symbol string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.locks[symbol]
	if !ok {
		m = &sync.Mutex{}
		s.locks[symbol] = m
	}
	return m
}

func (s *symbolLocks) Lock(symbol string)   { s.get(symbol).Lock() }
func (s *symbolLocks) Unlock(symbol string) { s.get(symbol).Unlock() }
