package service

import (
	"context"
	"fmt"
	"sync"

	"binance_bot/internal/models"
	"binance_bot/internal/notify"
)

// FilterWarmer — кэш фильтров, который прогреваем на старте.
type FilterWarmer interface {
	GetFilters(ctx context.Context, symbol string) (models.SymbolFilters, error)
}

type Warmuper struct {
	filters FilterWarmer
	n       notify.Notifier

	// ограничитель параллелизма, чтобы не словить rate limit
	sem chan struct{}
}

func NewWarmuper(filters FilterWarmer, n notify.Notifier) *Warmuper {
	return &Warmuper{
		filters: filters,
		n:       n,
		sem:     make(chan struct{}, 8), // 8 параллельных символов
	}
}

// Warmup тянет фильтры по всем символам watchlist'а, чтобы первый
// боевой сигнал не платил за холодный кэш. Ошибка не фатальна:
// недогретый символ догреется при первом сигнале.
func (w *Warmuper) Warmup(ctx context.Context, symbols []string) error {
	if len(symbols) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	for _, sym := range symbols {
		sym := sym
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.sem <- struct{}{}
			defer func() { <-w.sem }()

			if _, err := w.filters.GetFilters(ctx, sym); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("warmup %s: %w", sym, err)
				}
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	if firstErr != nil {
		w.n.Sendf("⚠️ filters warmup finished with error: %v", firstErr)
		return firstErr
	}

	w.n.Sendf("🔥 filters warmup finished: %d symbols cached", len(symbols))
	return nil
}
