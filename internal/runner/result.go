package runner

// Status — итог обработки сигнала. Транспортного слоя здесь нет,
// в HTTP-коды это превращает вебхук.
type Status int

const (
	StatusClosed        Status = iota + 1 // закрытие обработано (включая "позиции не было")
	StatusOpened                          // вход размещён
	StatusUnauthorized                    // секрет не совпал
	StatusInvalid                         // мусор на входе: поля, сторона, размер ниже минимума
	StatusExchangeError                   // биржа отказала или недоступна
)

// Result — ответ транслятора на один сигнал.
type Result struct {
	Status  Status
	Message string

	// Details заполняется для закрытий: orderId закрывающего ордера
	// или пояснение, почему закрывать было нечего.
	Details string

	// OrderID — ордер входа, для закрытий — закрывающий ордер.
	OrderID int64
}

func invalid(msg string) Result {
	return Result{Status: StatusInvalid, Message: msg}
}

func exchangeFailed(err error) Result {
	return Result{Status: StatusExchangeError, Message: err.Error()}
}
