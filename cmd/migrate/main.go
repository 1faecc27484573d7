// Command migrate manages the database schema with the embedded goose
// migrations.
//
// Usage: migrate [-cmd up|down|status]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/pricewatch-bot/internal/adapter/postgres"
	"github.com/heartmarshall/pricewatch-bot/internal/app"
	"github.com/heartmarshall/pricewatch-bot/internal/config"
)

func main() {
	cmd := flag.String("cmd", "up", "migration command: up, down or status")
	flag.Parse()

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	switch *cmd {
	case "up":
		err = postgres.Migrate(ctx, pool, logger)
	case "down":
		err = postgres.Rollback(ctx, pool, logger)
	case "status":
		statuses, serr := postgres.MigrationStatus(ctx, pool)
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("path", s.Source.Path),
				slog.String("state", string(s.State)),
				slog.Time("applied_at", s.AppliedAt),
			)
		}
		err = serr
	default:
		logger.Error("unknown command", slog.String("cmd", *cmd))
		pool.Close()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("migration failed", slog.String("cmd", *cmd), slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("migration completed", slog.String("cmd", *cmd))
}
