package telegram

import (
	"context"
	"errors"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
	"github.com/heartmarshall/pricewatch-bot/internal/service/catalog"
	"github.com/heartmarshall/pricewatch-bot/internal/service/subscription"
)

const (
	msgStart          = "Send /start to begin."
	msgChooseAction   = "Choose an action:"
	msgEnterCode      = "Now send me the product code."
	msgIncorrectCode  = "Incorrect code, try again."
	msgUnavailable    = "Sorry, the product service is unavailable right now. Please try again later."
	msgInternal       = "Sorry, something went wrong. Please try again later."
	msgUnknownCommand = "I don't know this command."
	msgUnsubscribed   = "You have unsubscribed."
	msgNotSubscribed  = "You are not subscribed to any product."
	msgNoHistory      = "You have no lookups yet."
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	chatID := msg.Chat.ID

	if msg.IsCommand() && msg.Command() == "start" {
		b.states.set(chatID, stateChoosing)
		b.reply(ctx, chatID, msgChooseAction)
		return
	}

	switch b.states.get(chatID) {
	case stateNone:
		b.send(ctx, tgbotapi.NewMessage(chatID, msgStart))
	case stateAwaitingCode:
		b.states.set(chatID, stateChoosing)
		b.handleCode(ctx, chatID, msg.Text)
	case stateChoosing:
		b.handleMenu(ctx, chatID, msg.Text)
	}
}

func (b *Bot) handleMenu(ctx context.Context, chatID int64, text string) {
	switch menuOption(text) {
	case btnProductInfo:
		b.states.set(chatID, stateAwaitingCode)
		b.reply(ctx, chatID, msgEnterCode)
	case btnHistory:
		b.handleHistory(ctx, chatID)
	case btnStop:
		if b.subs.Unsubscribe(chatID) {
			b.reply(ctx, chatID, msgUnsubscribed)
			return
		}
		b.reply(ctx, chatID, msgNotSubscribed)
	default:
		b.reply(ctx, chatID, msgUnknownCommand)
	}
}

func (b *Bot) handleCode(ctx context.Context, chatID int64, text string) {
	res, err := b.catalog.Lookup(ctx, catalog.LookupInput{RequesterID: chatID, Code: text})
	if err != nil {
		b.log.ErrorContext(ctx, "lookup failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		b.reply(ctx, chatID, msgInternal)
		return
	}

	switch res.Outcome {
	case catalog.OutcomeFound:
		out := tgbotapi.NewMessage(chatID, FormatProduct(res.Product))
		out.ReplyMarkup = subscribeKeyboard(res.Product.Code)
		b.send(ctx, out)
	case catalog.OutcomeNotFound, catalog.OutcomeInvalidCode:
		b.reply(ctx, chatID, msgIncorrectCode)
	default:
		b.reply(ctx, chatID, msgUnavailable)
	}
}

func (b *Bot) handleHistory(ctx context.Context, chatID int64) {
	products, err := b.catalog.Recent(ctx, chatID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		b.reply(ctx, chatID, msgNoHistory)
	case err != nil:
		b.log.ErrorContext(ctx, "history failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		b.reply(ctx, chatID, msgInternal)
	default:
		b.reply(ctx, chatID, FormatHistory(products))
	}
}

func (b *Bot) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	code, ok := parseSubscribeData(cq.Data)
	if !ok || cq.Message == nil || cq.Message.Chat == nil {
		b.answerCallback(ctx, cq.ID, msgUnknownCommand)
		return
	}
	chatID := cq.Message.Chat.ID

	err := b.subs.Subscribe(chatID, code)
	switch {
	case err == nil:
		b.log.InfoContext(ctx, "subscribed", slog.Int64("chat_id", chatID), slog.String("code", code))
		b.answerCallback(ctx, cq.ID, "You will get updates every "+formatInterval(b.interval)+".")
	case errors.Is(err, domain.ErrValidation):
		b.answerCallback(ctx, cq.ID, msgIncorrectCode)
	case errors.Is(err, subscription.ErrSchedulerClosed):
		b.answerCallback(ctx, cq.ID, msgUnavailable)
	default:
		b.log.ErrorContext(ctx, "subscribe failed", slog.Int64("chat_id", chatID), slog.String("error", err.Error()))
		b.answerCallback(ctx, cq.ID, msgInternal)
	}
}

func (b *Bot) answerCallback(ctx context.Context, id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		b.log.WarnContext(ctx, "answer callback failed", slog.String("error", err.Error()))
	}
}
