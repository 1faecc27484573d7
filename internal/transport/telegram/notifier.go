package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier delivers scheduled product updates as chat messages.
type Notifier struct {
	api sender
	log *slog.Logger
}

// NewNotifier creates a Notifier.
func NewNotifier(api sender, log *slog.Logger) *Notifier {
	return &Notifier{api: api, log: log.With("transport", "telegram")}
}

// Notify sends the snapshot to chatID. The Bot API call itself is not
// cancellable; ctx is only checked before sending.
func (n *Notifier) Notify(ctx context.Context, chatID int64, p domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := n.api.Send(tgbotapi.NewMessage(chatID, FormatProduct(p))); err != nil {
		return fmt.Errorf("telegram: send notification to %d: %w", chatID, err)
	}

	n.log.DebugContext(ctx, "notification sent",
		slog.Int64("chat_id", chatID),
		slog.String("code", p.Code),
	)
	return nil
}
