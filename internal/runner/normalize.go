package runner

import (
	"math"
	"strconv"
)

// QuantityPrecision — сколько знаков после запятой допускает шаг лота.
// Шаг 0.001 -> 3, шаг 1 -> 0, шаг 10 -> 0 (отрицательную точность
// при форматировании не используем).
func QuantityPrecision(step float64) int {
	p := int(math.Round(-math.Log10(step)))
	if p < 0 {
		p = 0
	}
	return p
}

// Normalize приводит сырое количество к допустимому для биржи:
// обрезает вниз до точности шага лота (никогда не округляет вверх)
// и возвращает 0, если после обрезки вышло меньше minQty.
// Ноль означает "на такой размер не войти", это штатный исход.
func Normalize(raw, step, minQty float64) float64 {
	if raw <= 0 || step <= 0 {
		return 0
	}

	precision := int(math.Round(-math.Log10(step)))
	factor := math.Pow(10, float64(precision))
	// 1e-9 гасит двоичный хвост, из-за которого floor мог бы
	// срезать лишний шаг (0.29*100 -> 28.999...)
	qty := math.Floor(raw*factor+1e-9) / factor

	if qty < minQty {
		return 0
	}
	return qty
}

// FormatQuantity — строка количества с точностью шага лота,
// ровно так её и ждёт API биржи.
func FormatQuantity(qty, step float64) string {
	return strconv.FormatFloat(qty, 'f', QuantityPrecision(step), 64)
}
