package httptransport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/forex-converter/internal/config"
	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	derrors "github.com/NastyaGoryachaya/forex-converter/internal/errors"
	httpmocks "github.com/NastyaGoryachaya/forex-converter/internal/transport/httptransport/mocks"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionName = "forex_session"

var testCurrencies = domain.Currencies{
	"USD": "United States Dollar",
	"EUR": "Euro",
	"GBP": "British Pound Sterling",
}

func setupServer(t *testing.T) (*echo.Echo, *httpmocks.MockConverter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	svc := httpmocks.NewMockConverter(ctrl)

	renderer, err := NewRenderer()
	require.NoError(t, err)

	sessions := NewSessionStore(config.SessionConfig{
		Name:   testSessionName,
		Secret: "test-secret",
		MaxAge: 3600,
	})

	e := echo.New()
	e.Renderer = renderer
	e.Use(RequestID())
	NewConvertHandler(slog.Default(), svc, sessions, time.Second).RegisterRoutes(e)
	return e, svc
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	var found *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == testSessionName {
			found = c
		}
	}
	require.NotNil(t, found, "session cookie not set")
	return found
}

func doGet(e *echo.Echo, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doConvert(e *echo.Echo, cookie *http.Cookie, from, to, amount string) *httptest.ResponseRecorder {
	form := url.Values{"from": {from}, "to": {to}, "amount": {amount}}
	req := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// loadForm — GET / со списком валют; возвращает cookie с известным набором.
func loadForm(t *testing.T, e *echo.Echo, svc *httpmocks.MockConverter) *http.Cookie {
	t.Helper()
	svc.EXPECT().Currencies(gomock.Any()).Return(testCurrencies, nil)
	rec := doGet(e, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	return sessionCookie(t, rec)
}

func TestIndex_ListsCurrencies(t *testing.T) {
	e, svc := setupServer(t)
	svc.EXPECT().Currencies(gomock.Any()).Return(testCurrencies, nil)

	rec := doGet(e, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "USD")
	assert.Contains(t, body, "United States Dollar")
	assert.Contains(t, body, "Euro")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	sessionCookie(t, rec)
}

func TestIndex_UpstreamFailureShowsFlash(t *testing.T) {
	e, svc := setupServer(t)
	svc.EXPECT().Currencies(gomock.Any()).Return(nil, fmt.Errorf("list currencies: %w", derrors.ErrUpstream))

	rec := doGet(e, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "API error, please try again!")
}

func TestConvert_Success(t *testing.T) {
	e, svc := setupServer(t)
	cookie := loadForm(t, e, svc)

	svc.EXPECT().
		Convert(gomock.Any(), domain.ConversionRequest{From: "USD", To: "EUR", Amount: "100"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.ConversionRequest, known domain.KnownSet) (domain.ConversionResult, error) {
			assert.True(t, known.Contains("USD"))
			assert.True(t, known.Contains("EUR"))
			return domain.ConversionResult{
				From:           req.From,
				To:             req.To,
				Amount:         req.Amount,
				ConvertedPrice: decimal.RequireFromString("92.31"),
				FromSymbol:     "$",
				ToSymbol:       "€",
			}, nil
		})

	rec := doConvert(e, cookie, "USD", "EUR", "100")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "USD")
	assert.Contains(t, body, "EUR")
	assert.Contains(t, body, "100")
	assert.Contains(t, body, "92.31")
}

func TestConvert_SameCurrency(t *testing.T) {
	e, svc := setupServer(t)
	cookie := loadForm(t, e, svc)

	svc.EXPECT().
		Convert(gomock.Any(), domain.ConversionRequest{From: "USD", To: "USD", Amount: "100"}, gomock.Any()).
		Return(domain.ConversionResult{
			From: "USD", To: "USD", Amount: "100",
			ConvertedPrice: decimal.NewFromInt(100),
			FromSymbol:     "$", ToSymbol: "$",
		}, nil)

	rec := doConvert(e, cookie, "USD", "USD", "100")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "$ 100 USD = $ 100 USD")
}

func TestConvert_ErrorsRedirectWithFlash(t *testing.T) {
	cases := []struct {
		name      string
		from, to  string
		amount    string
		err       error
		wantFlash string
	}{
		{"unknown to", "USD", "XYZ", "10", fmt.Errorf("%w: %q", derrors.ErrUnknownToCurrency, "XYZ"), "Please enter valid value in field : Converting to"},
		{"unknown from", "XYZ", "USD", "10", fmt.Errorf("%w: %q", derrors.ErrUnknownFromCurrency, "XYZ"), "Please enter valid value in field : Converting from"},
		{"empty from", "", "USD", "10", fmt.Errorf("%w: From", derrors.ErrMissingField), "Please fill all the fields"},
		{"negative amount", "USD", "EUR", "-5", derrors.ErrInvalidAmount, "Please enter a valid amount in the form below"},
		{"upstream", "USD", "EUR", "10", derrors.ErrUpstream, "API error, please try again!"},
		{"unexpected", "USD", "EUR", "10", errors.New("boom"), "API error, please try again!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, svc := setupServer(t)
			cookie := loadForm(t, e, svc)

			svc.EXPECT().
				Convert(gomock.Any(), domain.ConversionRequest{From: tc.from, To: tc.to, Amount: tc.amount}, gomock.Any()).
				Return(domain.ConversionResult{}, tc.err)

			rec := doConvert(e, cookie, tc.from, tc.to, tc.amount)
			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

			// следующий показ формы выводит сообщение один раз
			svc.EXPECT().Currencies(gomock.Any()).Return(testCurrencies, nil).Times(2)
			next := doGet(e, sessionCookie(t, rec))
			assert.Contains(t, next.Body.String(), tc.wantFlash)

			again := doGet(e, sessionCookie(t, next))
			assert.NotContains(t, again.Body.String(), tc.wantFlash)
		})
	}
}

func TestConvert_WithoutSessionPassesEmptyKnownSet(t *testing.T) {
	e, svc := setupServer(t)

	svc.EXPECT().
		Convert(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.ConversionRequest, known domain.KnownSet) (domain.ConversionResult, error) {
			assert.True(t, known.Empty())
			return domain.ConversionResult{}, derrors.ErrNoKnownCurrencies
		})

	rec := doConvert(e, nil, "USD", "EUR", "1")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	svc.EXPECT().Currencies(gomock.Any()).Return(testCurrencies, nil)
	next := doGet(e, sessionCookie(t, rec))
	assert.Contains(t, next.Body.String(), "Currency list is not loaded, please try again")
}

func TestRequestID_Reused(t *testing.T) {
	e, svc := setupServer(t)
	svc.EXPECT().Currencies(gomock.Any()).Return(testCurrencies, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
