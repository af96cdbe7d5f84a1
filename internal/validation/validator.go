// Package validation проверяет данные формы конвертации.
//
// Порядок правил фиксирован, срабатывает первое нарушенное:
//  1. все поля заполнены;
//  2. известный набор валют не пуст;
//  3. from есть в наборе;
//  4. to есть в наборе;
//  5. amount — число >= 0.
package validation

import (
	"errors"
	"fmt"

	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	errs "github.com/NastyaGoryachaya/forex-converter/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate — проверка запроса против набора известных валют.
func (val *Validator) Validate(req domain.ConversionRequest, known domain.KnownSet) error {
	if err := val.v.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s", errs.ErrMissingField, verrs[0].Field())
		}
		return fmt.Errorf("%w: %v", errs.ErrMissingField, err)
	}

	if known.Empty() {
		return errs.ErrNoKnownCurrencies
	}
	if !known.Contains(req.From) {
		return fmt.Errorf("%w: %q", errs.ErrUnknownFromCurrency, req.From)
	}
	if !known.Contains(req.To) {
		return fmt.Errorf("%w: %q", errs.ErrUnknownToCurrency, req.To)
	}

	if _, err := ParseAmount(req.Amount); err != nil {
		return err
	}
	return nil
}

// ParseAmount — разбор суммы; отрицательные значения и не-числа отклоняются.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", errs.ErrInvalidAmount, raw)
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: negative %q", errs.ErrInvalidAmount, raw)
	}
	return amount, nil
}
