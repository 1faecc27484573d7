// Command bot runs the price-watch Telegram bot and its ops HTTP server.
//
// Exit codes: 0 = clean shutdown, 1 = startup or runtime error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/pricewatch-bot/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("bot: %v", err)
		stop()
		os.Exit(1)
	}
}
