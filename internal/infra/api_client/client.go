package api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/NastyaGoryachaya/forex-converter/internal/config"
	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	errs "github.com/NastyaGoryachaya/forex-converter/internal/errors"
	"github.com/shopspring/decimal"
)

// Client — клиент API exchangerate.host. Любая ошибка транспорта или разбора
// ответа возвращается как errs.ErrUpstream (с исходной причиной внутри).
type Client struct {
	cfg        config.ExchangeConfig
	httpClient *http.Client
}

// apiError — тело ошибки провайдера ({"success": false, "error": {...}})
type apiError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

type listResponse struct {
	Success    *bool             `json:"success"`
	Error      *apiError         `json:"error"`
	Currencies map[string]string `json:"currencies"`
}

type convertResponse struct {
	Success *bool            `json:"success"`
	Error   *apiError        `json:"error"`
	Result  *decimal.Decimal `json:"result"`
}

// NewClient - Создаёт нового клиента для работы с API курсов.
func NewClient(cfg config.ExchangeConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ListCurrencies — список поддерживаемых валют (GET /list)
func (c *Client) ListCurrencies(ctx context.Context) (domain.Currencies, error) {
	var resp listResponse
	if err := c.get(ctx, "list", nil, &resp); err != nil {
		return nil, err
	}
	if err := checkFailure(resp.Success, resp.Error); err != nil {
		return nil, err
	}
	if len(resp.Currencies) == 0 {
		return nil, fmt.Errorf("%w: empty currencies list", errs.ErrUpstream)
	}
	return domain.Currencies(resp.Currencies), nil
}

// Convert — конвертация amount из from в to (GET /convert)
func (c *Client) Convert(ctx context.Context, from, to, amount string) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	q.Set("amount", amount)
	q.Set("format", "1")

	var resp convertResponse
	if err := c.get(ctx, "convert", q, &resp); err != nil {
		return decimal.Decimal{}, err
	}
	if err := checkFailure(resp.Success, resp.Error); err != nil {
		return decimal.Decimal{}, err
	}
	if resp.Result == nil {
		return decimal.Decimal{}, fmt.Errorf("%w: no result in response", errs.ErrUpstream)
	}
	return *resp.Result, nil
}

// get — общий GET-запрос к endpoint с ключом доступа и разбор JSON в out
func (c *Client) get(ctx context.Context, endpoint string, q url.Values, out any) error {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: invalid base URL: %v", errs.ErrUpstream, err)
	}
	u = u.JoinPath(endpoint)

	if q == nil {
		q = url.Values{}
	}
	q.Set("access_key", c.cfg.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", errs.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", errs.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: request failed: %s", errs.ErrUpstream, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", errs.ErrUpstream, err)
	}
	return nil
}

func checkFailure(success *bool, apiErr *apiError) error {
	if success != nil && !*success {
		if apiErr != nil {
			return fmt.Errorf("%w: %s (%d): %s", errs.ErrUpstream, apiErr.Type, apiErr.Code, apiErr.Info)
		}
		return fmt.Errorf("%w: success=false", errs.ErrUpstream)
	}
	return nil
}
