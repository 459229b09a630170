package runner

import (
	"binance_bot/internal/modules/config"
	"binance_bot/internal/notify"
)

// Границы callbackRate трейлинг-стопа. То, что вне диапазона,
// молча пропускаем, чтобы не ловить реджект от биржи.
const (
	minCallbackRate = 0.1
	maxCallbackRate = 5.0
)

// Translator превращает сигнал вебхука в последовательность вызовов биржи:
// закрыть старое, выставить плечо, посчитать размер, войти, повесить трейлинг.
type Translator struct {
	secret  string
	ex      Exchange
	filters FilterSource
	n       notify.Notifier

	locks *symbolLocks
}

func New(cfg *config.Config, ex Exchange, filters FilterSource, n notify.Notifier) *Translator {
	return &Translator{
		secret:  cfg.WebhookSecret,
		ex:      ex,
		filters: filters,
		n:       n,
		locks:   newSymbolLocks(),
	}
}
