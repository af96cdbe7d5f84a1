package httptransport

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	"github.com/NastyaGoryachaya/forex-converter/internal/interfaces"
	"github.com/NastyaGoryachaya/forex-converter/internal/ports/errcode"
	"github.com/labstack/echo/v4"
)

// currencyOption — строка списка валют на главной странице.
type currencyOption struct {
	Code string
	Name string
}

type indexView struct {
	Flashes    []string
	Currencies []currencyOption
}

type convertView struct {
	Flashes    []string
	From       string
	To         string
	Amount     string
	Price      string
	FromSymbol string
	ToSymbol   string
}

func makeIndexView(flashes []string, list domain.Currencies) indexView {
	view := indexView{Flashes: flashes, Currencies: make([]currencyOption, 0, len(list))}
	for _, code := range list.Codes() {
		view.Currencies = append(view.Currencies, currencyOption{Code: code, Name: list[code]})
	}
	return view
}

func makeConvertView(res domain.ConversionResult) convertView {
	return convertView{
		From:       res.From,
		To:         res.To,
		Amount:     res.Amount,
		Price:      res.ConvertedPrice.String(),
		FromSymbol: res.FromSymbol,
		ToSymbol:   res.ToSymbol,
	}
}

// ConvertHandler — HTTP‑handler формы конвертации.
type ConvertHandler struct {
	logger   *slog.Logger
	svc      interfaces.Converter
	sessions *SessionStore
	timeout  time.Duration
}

func NewConvertHandler(logger *slog.Logger, svc interfaces.Converter, sessions *SessionStore, timeout time.Duration) *ConvertHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil {
		log.Fatal("nil service")
	}
	if sessions == nil {
		log.Fatal("nil session store")
	}
	// Таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ConvertHandler{
		logger:   logger,
		svc:      svc,
		sessions: sessions,
		timeout:  timeout,
	}
}

func (h *ConvertHandler) RegisterRoutes(r interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}) {
	r.GET("/", h.Index)
	r.POST("/convert", h.Convert)
}

// Index — форма конвертации. Список валют провайдера становится известным набором сессии.
func (h *ConvertHandler) Index(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	flashes := h.sessions.Flashes(c)

	list, err := h.svc.Currencies(ctx)
	if err != nil {
		// без списка форма всё равно показывается, иначе редирект на / зациклится
		h.logger.Error("Currencies failed",
			slog.String("op", "Index"),
			slog.String("request_id", requestID(c)),
			slog.String("error", err.Error()),
		)
		flashes = append(flashes, flashMessage(errcode.FromError(err)))
		if err := h.sessions.Save(c); err != nil {
			return h.internalError(c, "Index", err)
		}
		return c.Render(http.StatusOK, pageIndex, makeIndexView(flashes, nil))
	}

	h.sessions.SetCurrencies(c, list.Codes())
	if err := h.sessions.Save(c); err != nil {
		return h.internalError(c, "Index", err)
	}
	return c.Render(http.StatusOK, pageIndex, makeIndexView(flashes, list))
}

// Convert — обработка формы: результат (200) или редирект на / с flash-сообщением (303).
func (h *ConvertHandler) Convert(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	req := domain.ConversionRequest{
		From:   c.FormValue("from"),
		To:     c.FormValue("to"),
		Amount: c.FormValue("amount"),
	}

	res, err := h.svc.Convert(ctx, req, h.sessions.KnownSet(c))
	if err != nil {
		code := errcode.FromError(err)
		switch code {
		case errcode.Upstream, errcode.Internal:
			h.logger.Error("Convert failed",
				slog.String("op", "Convert"),
				slog.String("request_id", requestID(c)),
				slog.String("code", string(code)),
				slog.String("error", err.Error()),
			)
		default:
			h.logger.Debug("Convert rejected",
				slog.String("op", "Convert"),
				slog.String("code", string(code)),
				slog.String("error", err.Error()),
			)
		}
		h.sessions.AddFlash(c, flashMessage(code))
		if err := h.sessions.Save(c); err != nil {
			return h.internalError(c, "Convert", err)
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}

	return c.Render(http.StatusOK, pageConvert, makeConvertView(res))
}

func (h *ConvertHandler) internalError(c echo.Context, op string, err error) error {
	h.logger.Error("session save failed",
		slog.String("op", op),
		slog.String("request_id", requestID(c)),
		slog.String("error", err.Error()),
	)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}
