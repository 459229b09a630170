package models

import "errors"

var (
	// ErrWouldNotReduce — биржа отклонила закрывающий ордер, потому что
	// позиции уже нет (код -2022). Для закрытия это успех, а не ошибка.
	ErrWouldNotReduce = errors.New("order would not reduce position")

	// ErrSymbolNotFound — символа нет в списке инструментов биржи.
	ErrSymbolNotFound = errors.New("symbol not found in exchange info")
)
