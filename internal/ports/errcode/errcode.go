package errcode

import (
	"errors"

	errs "github.com/NastyaGoryachaya/forex-converter/internal/errors"
)

type Code string

const (
	MissingField        Code = "MISSING_FIELD"
	UnknownFromCurrency Code = "UNKNOWN_FROM_CURRENCY"
	UnknownToCurrency   Code = "UNKNOWN_TO_CURRENCY"
	InvalidAmount       Code = "INVALID_AMOUNT"
	NoKnownCurrencies   Code = "NO_KNOWN_CURRENCIES"
	Upstream            Code = "UPSTREAM_API_ERROR"

	Internal Code = "INTERNAL_ERROR"
)

// FromError — сопоставляет ошибку сценария с кодом.
func FromError(err error) Code {
	switch {
	case errors.Is(err, errs.ErrMissingField):
		return MissingField
	case errors.Is(err, errs.ErrNoKnownCurrencies):
		return NoKnownCurrencies
	case errors.Is(err, errs.ErrUnknownFromCurrency):
		return UnknownFromCurrency
	case errors.Is(err, errs.ErrUnknownToCurrency):
		return UnknownToCurrency
	case errors.Is(err, errs.ErrInvalidAmount):
		return InvalidAmount
	case errors.Is(err, errs.ErrUpstream):
		return Upstream
	default:
		return Internal
	}
}
