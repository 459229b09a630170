package service

import (
	"context"
	"fmt"
	"strconv"

	"binance_bot/internal/models"
)

// FetchInstruments забирает весь exchangeInfo и выжимает из него
// только нужные фильтры по каждому символу.
func (c *Client) FetchInstruments(ctx context.Context) (map[string]models.SymbolFilters, error) {
	info, err := c.api.NewExchangeInfoService().Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("exchange info: %w", err)
	}

	out := make(map[string]models.SymbolFilters, len(info.Symbols))
	for _, s := range info.Symbols {
		filters := models.SymbolFilters{Symbol: s.Symbol}
		for _, f := range s.Filters {
			switch f["filterType"] {
			case "PRICE_FILTER":
				filters.TickSize, err = filterFloat(f, "tickSize")
			case "LOT_SIZE":
				filters.StepSize, err = filterFloat(f, "stepSize")
				if err == nil {
					filters.MinQty, err = filterFloat(f, "minQty")
				}
			}
			if err != nil {
				break
			}
		}
		// символы с кривыми или неполными фильтрами не кэшируем
		if err != nil || filters.TickSize <= 0 || filters.StepSize <= 0 || filters.MinQty <= 0 {
			err = nil
			continue
		}
		out[s.Symbol] = filters
	}
	return out, nil
}

func filterFloat(f map[string]interface{}, name string) (float64, error) {
	s, ok := f[name].(string)
	if !ok || s == "" {
		return 0, fmt.Errorf("%s empty", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s parse: %v (%q)", name, err, s)
	}
	return v, nil
}
