package telegram

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

func TestNotifier_Notify(t *testing.T) {
	t.Parallel()

	api := &botAPIMock{
		SendFunc: func(c tgbotapi.Chattable) (tgbotapi.Message, error) { return tgbotapi.Message{}, nil },
	}
	n := NewNotifier(api, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := n.Notify(context.Background(), 42, domain.Product{Code: "123", Name: "Widget", Price: 9999, Rating: 4.5, StockQty: 5})
	require.NoError(t, err)

	require.Len(t, api.SendCalls(), 1)
	msg, ok := api.SendCalls()[0].C.(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Contains(t, msg.Text, "Widget")
	assert.Contains(t, msg.Text, "99.99")
}

func TestNotifier_SendError(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("Forbidden: bot was blocked by the user")
	api := &botAPIMock{
		SendFunc: func(c tgbotapi.Chattable) (tgbotapi.Message, error) { return tgbotapi.Message{}, sendErr },
	}
	n := NewNotifier(api, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := n.Notify(context.Background(), 42, domain.Product{Code: "1"})
	assert.ErrorIs(t, err, sendErr)
}

func TestNotifier_CancelledContext(t *testing.T) {
	t.Parallel()

	api := &botAPIMock{}
	n := NewNotifier(api, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Notify(ctx, 42, domain.Product{Code: "1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, api.SendCalls())
}
