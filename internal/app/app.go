package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	botpkg "github.com/NastyaGoryachaya/forex-converter/internal/bot"
	"github.com/NastyaGoryachaya/forex-converter/internal/config"
	"github.com/NastyaGoryachaya/forex-converter/internal/infra/api_client"
	convertsvc "github.com/NastyaGoryachaya/forex-converter/internal/service/convert"
	"github.com/NastyaGoryachaya/forex-converter/internal/symbols"
	"github.com/NastyaGoryachaya/forex-converter/internal/transport/httptransport"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	e    *echo.Echo
	serv *http.Server

	symbols *symbols.Table
	convert *convertsvc.Service

	bot *botpkg.Bot
}

func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	table, err := symbols.Load(cfg.Symbols.Path)
	if err != nil {
		log.Error("symbols load failed", slog.String("path", cfg.Symbols.Path), slog.String("error", err.Error()))
		return nil, err
	}
	app.symbols = table

	provider := api_client.NewLoggingProvider(log, api_client.NewClient(cfg.Exchange))
	app.convert = convertsvc.NewService(provider, table, log)

	renderer, err := httptransport.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Use(
		httptransport.RequestID(),
		httptransport.RequestLogger(log),
		middleware.Recover(),
	)
	app.e = e

	sessions := httptransport.NewSessionStore(cfg.Session)
	ch := httptransport.NewConvertHandler(log, app.convert, sessions, cfg.Exchange.Timeout)
	ch.RegisterRoutes(e)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена — ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{
				Token:           token,
				LongPollTimeout: cfg.Telegram.LongPollTimeout,
				RequestTimeout:  cfg.Exchange.Timeout,
			},
			app.convert,
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.bot = botApp
	}
	log.Info("app initialized",
		slog.Int("symbols", table.Len()),
		slog.String("exchange_base_url", cfg.Exchange.BaseURL),
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.Bool("bot_attached", app.bot != nil),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.bot != nil {
		a.log.Info("starting bot")
		go a.bot.Start(ctx)
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	errCh := make(chan error, 1)
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return a.Shutdown(context.Background())
	case err := <-errCh:
		_ = a.Shutdown(context.Background())
		return err
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	a.log.Info("application stopped")
	return nil
}
