package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/forex-converter/internal/interfaces"
	"gopkg.in/telebot.v4"
)

// Config — конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
	// RequestTimeout — лимит на одну команду (список валют + конвертация)
	RequestTimeout time.Duration
}

// Bot — Telegram-фронтенд сценария конвертации
type Bot struct {
	bot     *telebot.Bot
	conv    interfaces.Converter
	logger  *slog.Logger
	timeout time.Duration
}

// New создаёт бота и регистрирует команды
func New(cfg Config, conv interfaces.Converter, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:     b,
		conv:    conv,
		logger:  logger,
		timeout: cfg.RequestTimeout,
	}

	// маршруты команд
	b.Handle("/start", bot.handleStart)
	b.Handle("/currencies", bot.handleCurrencies)
	b.Handle("/convert", bot.handleConvert)
	return bot, nil
}

// Start запускает long polling
func (b *Bot) Start(ctx context.Context) {
	go b.bot.Start()
	<-ctx.Done()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
