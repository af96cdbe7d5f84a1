package botfmt

import (
	"fmt"
	"strings"

	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxMessageLen — запас до лимита Telegram в 4096 символов.
const MaxMessageLen = 4000

// FormatConversion — ответ на /convert
func FormatConversion(r domain.ConversionResult) string {
	return fmt.Sprintf("%s %s %s = %s %s %s",
		r.FromSymbol,
		r.Amount,
		r.From,
		r.ToSymbol,
		humanPrice(r.ConvertedPrice),
		r.To,
	)
}

// FormatCurrencyList — список валют для /currencies, разбитый на сообщения не длиннее MaxMessageLen.
func FormatCurrencyList(list domain.Currencies) []string {
	var (
		out []string
		bld strings.Builder
	)
	for _, code := range list.Codes() {
		line := fmt.Sprintf("%s — %s\n", code, list[code])
		if bld.Len()+len(line) > MaxMessageLen && bld.Len() > 0 {
			out = append(out, bld.String())
			bld.Reset()
		}
		bld.WriteString(line)
	}
	if bld.Len() > 0 {
		out = append(out, bld.String())
	}
	return out
}

// humanPrice — два знака после запятой; мелкие значения без округления, чтобы не получить 0.00.
func humanPrice(v decimal.Decimal) string {
	if v.Abs().LessThan(decimal.NewFromInt(1)) {
		return v.String()
	}
	return v.StringFixed(2)
}
