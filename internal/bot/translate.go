package bot

import "github.com/NastyaGoryachaya/forex-converter/internal/ports/errcode"

func translateBotError(code errcode.Code) string {
	switch code {
	case errcode.MissingField:
		return "Заполни все параметры: /convert USD EUR 100"
	case errcode.UnknownFromCurrency:
		return "Неизвестная исходная валюта, список: /currencies"
	case errcode.UnknownToCurrency:
		return "Неизвестная целевая валюта, список: /currencies"
	case errcode.InvalidAmount:
		return "Сумма должна быть неотрицательным числом"
	case errcode.NoKnownCurrencies, errcode.Upstream:
		return "Сервис курсов недоступен, попробуйте позже"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
