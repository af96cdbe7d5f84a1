package bot

import (
	"context"
	"log/slog"

	"github.com/NastyaGoryachaya/forex-converter/internal/domain"
	"github.com/NastyaGoryachaya/forex-converter/internal/pkg/botfmt"
	"github.com/NastyaGoryachaya/forex-converter/internal/ports/errcode"
	"gopkg.in/telebot.v4"
)

const usageConvert = "Формат: /convert {из} {в} {сумма}, например /convert USD EUR 100"

// handleStart — отправляет справку по доступным командам бота
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send("Привет! Доступные команды:\n" +
		"/currencies - список поддерживаемых валют\n" +
		"/convert {из} {в} {сумма} - конвертация (USD EUR 100)")
}

// handleCurrencies — список валют провайдера, при необходимости несколькими сообщениями
func (b *Bot) handleCurrencies(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	for _, msg := range b.currenciesMessages(ctx) {
		if err := c.Send(msg); err != nil {
			b.logger.Error("bot: /currencies send failed",
				slog.Int64("chat_id", c.Chat().ID),
				slog.String("error", err.Error()),
			)
			return err
		}
	}
	return nil
}

// handleConvert — /convert FROM TO AMOUNT
func (b *Bot) handleConvert(c telebot.Context) error {
	b.logger.Debug("bot: /convert received",
		slog.Int64("chat_id", c.Chat().ID),
		slog.String("text", c.Text()),
		slog.Int("args_len", len(c.Args())),
	)

	ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
	defer cancel()

	return c.Send(b.convertMessage(ctx, c.Args()))
}

func (b *Bot) currenciesMessages(ctx context.Context) []string {
	list, err := b.conv.Currencies(ctx)
	if err != nil {
		b.logger.Warn("bot: currencies failed", slog.String("error", err.Error()))
		return []string{translateBotError(errcode.FromError(err))}
	}
	msgs := botfmt.FormatCurrencyList(list)
	if len(msgs) == 0 {
		return []string{translateBotError(errcode.NoKnownCurrencies)}
	}
	return msgs
}

// convertMessage — известный набор берётся из свежего списка провайдера на каждую команду.
func (b *Bot) convertMessage(ctx context.Context, args []string) string {
	req, ok := parseConvertArgs(args)
	if !ok {
		return usageConvert
	}

	list, err := b.conv.Currencies(ctx)
	if err != nil {
		b.logger.Warn("bot: currencies failed", slog.String("error", err.Error()))
		return translateBotError(errcode.FromError(err))
	}

	res, err := b.conv.Convert(ctx, req, domain.NewKnownSet(list.Codes()))
	if err != nil {
		b.logger.Debug("bot: convert rejected", slog.String("error", err.Error()))
		return translateBotError(errcode.FromError(err))
	}
	return botfmt.FormatConversion(res)
}

// parseConvertArgs — ровно три аргумента: из, в, сумма
func parseConvertArgs(args []string) (domain.ConversionRequest, bool) {
	if len(args) != 3 {
		return domain.ConversionRequest{}, false
	}
	return domain.ConversionRequest{From: args[0], To: args[1], Amount: args[2]}, true
}
