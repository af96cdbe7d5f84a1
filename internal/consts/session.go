package consts

import "strings"

// Ключи, под которыми данные лежат в сессии пользователя.
const (
	SessionCurrencies = "currencies"
	FlashError        = "error"
)

// UnknownSymbol — заглушка, если символ валюты не найден в таблице.
const UnknownSymbol = "Unknown Currency Code"

// NormalizeCode — приводит код валюты к виду "USD".
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
