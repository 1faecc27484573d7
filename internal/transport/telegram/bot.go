// Package telegram implements the chat front end: a small menu dialog over
// the Bot API long-polling interface.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/heartmarshall/pricewatch-bot/internal/config"
	"github.com/heartmarshall/pricewatch-bot/internal/domain"
	"github.com/heartmarshall/pricewatch-bot/internal/service/catalog"
	"github.com/heartmarshall/pricewatch-bot/pkg/ctxutil"
)

// workerQueueSize bounds the updates waiting for one worker before polling
// blocks.
const workerQueueSize = 16

type botAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type catalogService interface {
	Lookup(ctx context.Context, input catalog.LookupInput) (catalog.LookupResult, error)
	Recent(ctx context.Context, requesterID int64) ([]domain.Product, error)
}

type subscriptions interface {
	Subscribe(userID int64, code string) error
	Unsubscribe(userID int64) bool
}

// Bot receives updates and dispatches them to handlers.
type Bot struct {
	api            botAPI
	catalog        catalogService
	subs           subscriptions
	states         *stateStore
	pollTimeout    int
	handlerTimeout time.Duration
	interval       time.Duration
	workers        int
	log            *slog.Logger
}

// NewBot creates a Bot. interval is the notification period announced to
// users when they subscribe.
func NewBot(
	log *slog.Logger,
	cfg config.TelegramConfig,
	api botAPI,
	catalog catalogService,
	subs subscriptions,
	interval time.Duration,
) *Bot {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Bot{
		api:            api,
		catalog:        catalog,
		subs:           subs,
		states:         newStateStore(),
		pollTimeout:    cfg.PollTimeout,
		handlerTimeout: cfg.HandlerTimeout,
		interval:       interval,
		workers:        workers,
		log:            log.With("transport", "telegram"),
	}
}

// Run polls for updates until ctx is cancelled, then waits for queued and
// in-flight handlers to finish. Updates of one chat always land on the same
// worker, so a chat's messages are handled one at a time and in order while
// different chats proceed in parallel.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.pollTimeout
	updates := b.api.GetUpdatesChan(u)

	queues := make([]chan tgbotapi.Update, b.workers)
	var wg sync.WaitGroup
	for i := range queues {
		queues[i] = make(chan tgbotapi.Update, workerQueueSize)
		wg.Add(1)
		go func(q <-chan tgbotapi.Update) {
			defer wg.Done()
			for upd := range q {
				b.handleUpdate(ctx, upd)
			}
		}(queues[i])
	}
	defer func() {
		for _, q := range queues {
			close(q)
		}
		wg.Wait()
	}()

	b.log.InfoContext(ctx, "telegram polling started", slog.Int("workers", b.workers))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.log.InfoContext(ctx, "telegram polling stopped")
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			select {
			case queues[shardFor(upd, b.workers)] <- upd:
			case <-ctx.Done():
			}
		}
	}
}

// shardFor maps an update to a worker by chat ID. Updates without a chat go
// to worker 0.
func shardFor(upd tgbotapi.Update, workers int) int {
	chat := upd.FromChat()
	if chat == nil || workers <= 1 {
		return 0
	}
	return int(uint64(chat.ID) % uint64(workers))
}

// handleUpdate runs one update with its own timeout. In-flight handlers are
// detached from ctx cancellation so a reply is not lost on shutdown.
func (b *Bot) handleUpdate(ctx context.Context, upd tgbotapi.Update) {
	hctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.handlerTimeout)
	defer cancel()

	hctx = ctxutil.WithRequestID(hctx, "upd-"+strconv.Itoa(upd.UpdateID))
	if chat := upd.FromChat(); chat != nil {
		hctx = ctxutil.WithChatID(hctx, chat.ID)
	}

	defer func() {
		if rec := recover(); rec != nil {
			b.log.ErrorContext(hctx, "panic recovered",
				slog.Int("update_id", upd.UpdateID),
				slog.String("panic", fmt.Sprintf("%v", rec)),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()

	switch {
	case upd.CallbackQuery != nil:
		b.handleCallback(hctx, upd.CallbackQuery)
	case upd.Message != nil:
		b.handleMessage(hctx, upd.Message)
	}
}

// reply sends text to chatID with the main menu attached.
func (b *Bot) reply(ctx context.Context, chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = menuKeyboard()
	b.send(ctx, msg)
}

func (b *Bot) send(ctx context.Context, msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		b.log.WarnContext(ctx, "send message failed", slog.String("error", err.Error()))
	}
}
