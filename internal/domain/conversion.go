package domain

import "github.com/shopspring/decimal"

// ConversionRequest — данные формы конвертации (коды уже нормализованы)
type ConversionRequest struct {
	From   string `json:"from" validate:"required"`
	To     string `json:"to" validate:"required"`
	Amount string `json:"amount" validate:"required"`
}

// ConversionResult — результат конвертации, готовый к отображению
type ConversionResult struct {
	From           string          `json:"from"`
	To             string          `json:"to"`
	Amount         string          `json:"amount"` // сумма в том виде, в каком её ввёл пользователь
	ConvertedPrice decimal.Decimal `json:"price"`
	FromSymbol     string          `json:"symbol_from"`
	ToSymbol       string          `json:"symbol_to"`
}
