package runner

import (
	"go.uber.org/fx"
)

// Module отдаёт транслятор сигналов. Вызывается синхронно из вебхука,
// фонового цикла тут нет.
func Module() fx.Option {
	return fx.Module("runner",
		fx.Provide(
			New, // *Translator
		),
	)
}
