package api_client

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	"github.com/NastyaGoryachaya/forex-converter/internal/interfaces"
	"github.com/shopspring/decimal"
)

// loggingProvider — декоратор провайдера курсов: пишет в лог метод, аргументы, время и ошибку
type loggingProvider struct {
	next   interfaces.RatesProvider
	logger *slog.Logger
}

// NewLoggingProvider оборачивает провайдер логированием.
func NewLoggingProvider(logger *slog.Logger, next interfaces.RatesProvider) interfaces.RatesProvider {
	return &loggingProvider{next: next, logger: logger}
}

func (p *loggingProvider) ListCurrencies(ctx context.Context) (list domain.Currencies, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			slog.String("method", "list_currencies"),
			slog.Int("count", len(list)),
			slog.Duration("took", time.Since(begin)),
		}
		if err != nil {
			p.logger.Warn("rates api call failed", append(attrs, slog.String("error", err.Error()))...)
			return
		}
		p.logger.Debug("rates api call", attrs...)
	}(time.Now())
	return p.next.ListCurrencies(ctx)
}

func (p *loggingProvider) Convert(ctx context.Context, from, to, amount string) (price decimal.Decimal, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			slog.String("method", "convert"),
			slog.String("from", from),
			slog.String("to", to),
			slog.String("amount", amount),
			slog.String("price", price.String()),
			slog.Duration("took", time.Since(begin)),
		}
		if err != nil {
			p.logger.Warn("rates api call failed", append(attrs, slog.String("error", err.Error()))...)
			return
		}
		p.logger.Debug("rates api call", attrs...)
	}(time.Now())
	return p.next.Convert(ctx, from, to, amount)
}
