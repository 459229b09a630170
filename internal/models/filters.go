package models

// SymbolFilters — биржевые ограничения по символу из exchangeInfo.
// После первого получения не меняются до рестарта процесса.
type SymbolFilters struct {
	Symbol   string
	TickSize float64 // PRICE_FILTER.tickSize
	StepSize float64 // LOT_SIZE.stepSize
	MinQty   float64 // LOT_SIZE.minQty
}
