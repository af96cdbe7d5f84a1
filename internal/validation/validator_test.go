package validation

import (
	"errors"
	"testing"

	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	errs "github.com/NastyaGoryachaya/forex-converter/internal/errors"
)

var known = domain.NewKnownSet([]string{"USD", "EUR", "GBP"})

func TestValidate(t *testing.T) {
	v := New()

	cases := []struct {
		name  string
		req   domain.ConversionRequest
		known domain.KnownSet
		want  error
	}{
		{"ok", domain.ConversionRequest{From: "USD", To: "EUR", Amount: "100"}, known, nil},
		{"ok zero", domain.ConversionRequest{From: "USD", To: "USD", Amount: "0"}, known, nil},
		{"ok fraction", domain.ConversionRequest{From: "GBP", To: "EUR", Amount: "12.50"}, known, nil},
		{"empty from", domain.ConversionRequest{From: "", To: "EUR", Amount: "100"}, known, errs.ErrMissingField},
		{"empty to", domain.ConversionRequest{From: "USD", To: "", Amount: "100"}, known, errs.ErrMissingField},
		{"empty amount", domain.ConversionRequest{From: "USD", To: "EUR", Amount: ""}, known, errs.ErrMissingField},
		// пустые поля проверяются раньше принадлежности к набору
		{"empty beats unknown", domain.ConversionRequest{From: "XYZ", To: "", Amount: "100"}, known, errs.ErrMissingField},
		{"no known set", domain.ConversionRequest{From: "USD", To: "EUR", Amount: "100"}, nil, errs.ErrNoKnownCurrencies},
		{"unknown from", domain.ConversionRequest{From: "XYZ", To: "EUR", Amount: "100"}, known, errs.ErrUnknownFromCurrency},
		{"unknown to", domain.ConversionRequest{From: "USD", To: "XYZ", Amount: "100"}, known, errs.ErrUnknownToCurrency},
		// неизвестная валюта важнее неверной суммы
		{"unknown beats negative", domain.ConversionRequest{From: "USD", To: "XYZ", Amount: "-5"}, known, errs.ErrUnknownCurrencyCode},
		{"negative amount", domain.ConversionRequest{From: "USD", To: "EUR", Amount: "-1"}, known, errs.ErrInvalidAmount},
		{"not a number", domain.ConversionRequest{From: "USD", To: "EUR", Amount: "ten"}, known, errs.ErrInvalidAmount},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(tc.req, tc.known)
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

// Любая неизвестная валюта даёт UnknownCurrencyCode при любой сумме
func TestValidate_UnknownCodeAnyAmount(t *testing.T) {
	v := New()
	for _, amount := range []string{"0", "1", "100", "-3", "abc", "1e3"} {
		err := v.Validate(domain.ConversionRequest{From: "AAA", To: "USD", Amount: amount}, known)
		if !errors.Is(err, errs.ErrUnknownCurrencyCode) {
			t.Fatalf("amount %q: expected ErrUnknownCurrencyCode, got %v", amount, err)
		}
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount("100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String() != "100" {
		t.Fatalf("unexpected amount: %s", got)
	}

	if _, err := ParseAmount("-0.01"); !errors.Is(err, errs.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}
