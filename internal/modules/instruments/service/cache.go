package service

import (
	"context"
	"fmt"
	"sync"

	"binance_bot/internal/models"
	"binance_bot/pkg/logger"
)

// Source отдаёт фильтры по всем символам биржи разом.
type Source interface {
	FetchInstruments(ctx context.Context) (map[string]models.SymbolFilters, error)
}

// Cache — read-through кэш фильтров символов. Живёт всё время процесса,
// записей не вытесняет: фильтры на бирже меняются редко, устаревание
// принимаем как известное ограничение (лечится рестартом).
type Cache struct {
	src Source

	mu      sync.RWMutex
	filters map[string]models.SymbolFilters
}

func NewCache(src Source) *Cache {
	return &Cache{
		src:     src,
		filters: make(map[string]models.SymbolFilters),
	}
}

// GetFilters возвращает фильтры символа, при промахе тянет весь список
// инструментов и запоминает только запрошенный символ. Гонка двух промахов
// по одному ключу безвредна: выигрывает первая запись.
func (c *Cache) GetFilters(ctx context.Context, symbol string) (models.SymbolFilters, error) {
	c.mu.RLock()
	f, ok := c.filters[symbol]
	c.mu.RUnlock()
	if ok {
		return f, nil
	}

	logger.Info("[FILTERS] %s: first request, fetching exchange info", symbol)
	all, err := c.src.FetchInstruments(ctx)
	if err != nil {
		return models.SymbolFilters{}, fmt.Errorf("fetch instruments: %w", err)
	}

	f, ok = all[symbol]
	if !ok {
		return models.SymbolFilters{}, fmt.Errorf("%s: %w", symbol, models.ErrSymbolNotFound)
	}

	c.mu.Lock()
	if cur, exists := c.filters[symbol]; exists {
		f = cur
	} else {
		c.filters[symbol] = f
	}
	c.mu.Unlock()

	return f, nil
}

// Len — сколько символов уже закэшировано (для health-лога).
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.filters)
}
