package interfaces

import (
	"context"

	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -destination=../service/convert/mocks/mock_interfaces.go -package=mocks github.com/NastyaGoryachaya/forex-converter/internal/interfaces RatesProvider,SymbolResolver
//go:generate mockgen -destination=../transport/httptransport/mocks/mock_converter.go -package=mocks github.com/NastyaGoryachaya/forex-converter/internal/interfaces Converter
//go:generate mockgen -destination=../bot/mocks/mock_converter.go -package=mocks github.com/NastyaGoryachaya/forex-converter/internal/interfaces Converter

// RatesProvider — внешний источник курсов (exchangerate.host).
type RatesProvider interface {
	ListCurrencies(ctx context.Context) (domain.Currencies, error)
	Convert(ctx context.Context, from, to, amount string) (decimal.Decimal, error)
}

// SymbolResolver — таблица символов валют.
type SymbolResolver interface {
	Resolve(code string) string
}

// Converter — сценарий конвертации, который используют HTTP-транспорт и бот.
type Converter interface {
	Currencies(ctx context.Context) (domain.Currencies, error)
	Convert(ctx context.Context, req domain.ConversionRequest, known domain.KnownSet) (domain.ConversionResult, error)
}
