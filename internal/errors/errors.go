package errors

import (
	"errors"
	"fmt"
)

// Ошибки сценария конвертации. Транспорт переводит их в errcode и текст для пользователя.
var (
	ErrMissingField        = errors.New("missing field")
	ErrUnknownCurrencyCode = errors.New("unknown currency code")
	ErrUnknownFromCurrency = fmt.Errorf("from: %w", ErrUnknownCurrencyCode)
	ErrUnknownToCurrency   = fmt.Errorf("to: %w", ErrUnknownCurrencyCode)
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrNoKnownCurrencies   = errors.New("known currency set is empty")
	ErrUpstream            = errors.New("upstream api error")
	ErrSymbolNotFound      = errors.New("symbol not found")
)
