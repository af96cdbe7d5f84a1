package httptransport

import "github.com/NastyaGoryachaya/forex-converter/internal/ports/errcode"

// flashMessage — текст flash-сообщения для кода ошибки.
func flashMessage(code errcode.Code) string {
	switch code {
	case errcode.MissingField:
		return "Please fill all the fields"
	case errcode.UnknownFromCurrency:
		return "Please enter valid value in field : Converting from"
	case errcode.UnknownToCurrency:
		return "Please enter valid value in field : Converting to"
	case errcode.InvalidAmount:
		return "Please enter a valid amount in the form below"
	case errcode.NoKnownCurrencies:
		return "Currency list is not loaded, please try again"
	default:
		return "API error, please try again!"
	}
}
