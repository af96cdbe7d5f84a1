package convert

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/forex-converter/internal/consts"
	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	errs "github.com/NastyaGoryachaya/forex-converter/internal/errors"
	"github.com/NastyaGoryachaya/forex-converter/internal/interfaces"
	"github.com/NastyaGoryachaya/forex-converter/internal/validation"
)

// Сценарий: валидация -> запрос к API -> символы валют -> результат

type Service struct {
	provider  interfaces.RatesProvider
	symbols   interfaces.SymbolResolver
	validator *validation.Validator
	logger    *slog.Logger
}

// NewService — конструктор сервиса конвертации.
func NewService(provider interfaces.RatesProvider, symbols interfaces.SymbolResolver, logger *slog.Logger) *Service {
	return &Service{
		provider:  provider,
		symbols:   symbols,
		validator: validation.New(),
		logger:    logger,
	}
}

// Currencies — список валют провайдера; из него транспорт строит KnownSet.
func (s *Service) Currencies(ctx context.Context) (domain.Currencies, error) {
	list, err := s.provider.ListCurrencies(ctx)
	if err != nil {
		s.logger.Error("list currencies", "err", err)
		return nil, fmt.Errorf("list currencies: %w", errs.ErrUpstream)
	}
	return list, nil
}

// Convert — конвертация по данным формы. known передаётся явно: без него сценарий не начинается.
func (s *Service) Convert(ctx context.Context, req domain.ConversionRequest, known domain.KnownSet) (domain.ConversionResult, error) {
	req.From = consts.NormalizeCode(req.From)
	req.To = consts.NormalizeCode(req.To)

	if err := s.validator.Validate(req, known); err != nil {
		s.logger.Debug("conversion rejected", "stage", StageValidating, "err", err)
		return domain.ConversionResult{}, &StageError{Stage: StageValidating, Err: err}
	}

	price, err := s.provider.Convert(ctx, req.From, req.To, req.Amount)
	if err != nil {
		s.logger.Error("conversion failed", "stage", StageConverting, "from", req.From, "to", req.To, "err", err)
		return domain.ConversionResult{}, &StageError{
			Stage: StageConverting,
			Err:   fmt.Errorf("%w: %v", errs.ErrUpstream, err),
		}
	}

	// неизвестный символ не прерывает сценарий — будет заглушка
	result := domain.ConversionResult{
		From:           req.From,
		To:             req.To,
		Amount:         req.Amount,
		ConvertedPrice: price,
		FromSymbol:     s.symbols.Resolve(req.From),
		ToSymbol:       s.symbols.Resolve(req.To),
	}
	if result.FromSymbol == consts.UnknownSymbol || result.ToSymbol == consts.UnknownSymbol {
		s.logger.Warn("symbol lookup failed", "stage", StageResolvingSymbols, "from", req.From, "to", req.To, "err", errs.ErrSymbolNotFound)
	}

	s.logger.Debug("conversion done", "stage", StageDone, "from", result.From, "to", result.To, "amount", result.Amount)
	return result, nil
}
