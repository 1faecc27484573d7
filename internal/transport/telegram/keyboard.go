package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Menu options.
const (
	btnProductInfo = "Product info"
	btnHistory     = "My history"
	btnStop        = "Stop notifications"
	btnSubscribe   = "Subscribe"
)

const subscribePrefix = "subscribe:"

func menuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButton(btnProductInfo),
		tgbotapi.NewKeyboardButton(btnHistory),
		tgbotapi.NewKeyboardButton(btnStop),
	))
	kb.ResizeKeyboard = true
	return kb
}

func subscribeKeyboard(code string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(btnSubscribe, subscribePrefix+code),
	))
}

// parseSubscribeData extracts the product code from callback data.
func parseSubscribeData(data string) (string, bool) {
	code, ok := strings.CutPrefix(data, subscribePrefix)
	if !ok || code == "" {
		return "", false
	}
	return code, true
}

// menuOption matches free text against the menu buttons, ignoring case.
func menuOption(text string) string {
	text = strings.TrimSpace(text)
	for _, opt := range []string{btnProductInfo, btnHistory, btnStop} {
		if strings.EqualFold(text, opt) {
			return opt
		}
	}
	return ""
}
