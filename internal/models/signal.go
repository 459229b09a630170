package models

import "strings"

// Стороны сигнала, как их шлёт вебхук.
const (
	SideLong  = "LONG"
	SideBuy   = "BUY"
	SideShort = "SHORT"
	SideSell  = "SELL"
	SideClose = "CLOSE"
)

// Signal — один входящий сигнал вебхука. Живёт ровно один запрос,
// никуда не сохраняется. Числовые поля nil, если их не прислали
// или прислали мусор (разбираемся на этапе валидации).
type Signal struct {
	Secret string
	Symbol string
	Side   string

	Lev  *float64
	Usdt *float64
	Tsl  *float64
}

// NormalizeSide приводит сторону к верхнему регистру.
func NormalizeSide(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// IsDirectional — сигнал открытия позиции (не CLOSE).
func IsDirectional(side string) bool {
	switch side {
	case SideLong, SideBuy, SideShort, SideSell:
		return true
	}
	return false
}

// OrderSide — сторона ордера на бирже.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// Opposite — противоположная сторона (для закрытия и трейлинг-стопа).
func (s OrderSide) Opposite() OrderSide {
	if s == OrderSideBuy {
		return OrderSideSell
	}
	return OrderSideBuy
}
