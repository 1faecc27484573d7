package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/pricewatch-bot/migrations"
)

// Migrate applies all pending goose migrations embedded in the binary.
// goose needs a *sql.DB, so the pool is bridged through pgx/stdlib.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	return withProvider(pool, func(p *goose.Provider) error {
		results, err := p.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}

		for _, r := range results {
			logResult(ctx, log, "migration applied", r)
		}
		if len(results) == 0 {
			log.DebugContext(ctx, "database schema is up to date")
		}
		return nil
	})
}

// Rollback reverts the most recently applied migration.
func Rollback(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	return withProvider(pool, func(p *goose.Provider) error {
		r, err := p.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		logResult(ctx, log, "migration rolled back", r)
		return nil
	})
}

// MigrationStatus lists every embedded migration with its applied state.
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) ([]*goose.MigrationStatus, error) {
	var statuses []*goose.MigrationStatus
	err := withProvider(pool, func(p *goose.Provider) error {
		var err error
		statuses, err = p.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		return nil
	})
	return statuses, err
}

func withProvider(pool *pgxpool.Pool, fn func(p *goose.Provider) error) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}
	return fn(provider)
}

func logResult(ctx context.Context, log *slog.Logger, msg string, r *goose.MigrationResult) {
	if r == nil || r.Source == nil {
		return
	}
	log.InfoContext(ctx, msg,
		slog.Int64("version", r.Source.Version),
		slog.String("path", r.Source.Path),
		slog.Duration("duration", r.Duration),
	)
}
