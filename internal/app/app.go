// Package app wires the bot's components together and runs them until the
// context is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pricewatch-bot/internal/adapter/postgres"
	"github.com/heartmarshall/pricewatch-bot/internal/adapter/postgres/product"
	"github.com/heartmarshall/pricewatch-bot/internal/adapter/postgres/request"
	"github.com/heartmarshall/pricewatch-bot/internal/adapter/provider/wildberries"
	"github.com/heartmarshall/pricewatch-bot/internal/config"
	"github.com/heartmarshall/pricewatch-bot/internal/observability/metrics"
	"github.com/heartmarshall/pricewatch-bot/internal/service/catalog"
	"github.com/heartmarshall/pricewatch-bot/internal/service/subscription"
	"github.com/heartmarshall/pricewatch-bot/internal/transport/rest"
	"github.com/heartmarshall/pricewatch-bot/internal/transport/telegram"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and Telegram, then serves updates and the ops HTTP endpoints
// until ctx is cancelled. Only startup failures are returned as errors.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Duration("subscription_interval", cfg.Subscription.Interval),
	)

	// ---------------------------------------------------------------------------
	// Storage
	// ---------------------------------------------------------------------------

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// ---------------------------------------------------------------------------
	// Metrics
	// ---------------------------------------------------------------------------

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// ---------------------------------------------------------------------------
	// Services
	// ---------------------------------------------------------------------------

	productRepo := product.New(pool)
	requestRepo := request.New(pool)
	txManager := postgres.NewTxManager(pool)
	provider := wildberries.NewProvider(cfg.Lookup, logger)

	catalogService := catalog.NewService(logger, provider, productRepo, requestRepo, txManager, m)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("telegram auth: %w", err)
	}
	api.Debug = cfg.Telegram.Debug
	logger.Info("telegram authorized", slog.String("bot", api.Self.UserName))

	scheduler := subscription.NewScheduler(
		logger,
		cfg.Subscription,
		subscription.NewRegistry(),
		catalogService,
		telegram.NewNotifier(api, logger),
		clockwork.NewRealClock(),
		m,
	)

	bot := telegram.NewBot(logger, cfg.Telegram, api, catalogService, scheduler, cfg.Subscription.Interval)

	// ---------------------------------------------------------------------------
	// Ops HTTP
	// ---------------------------------------------------------------------------

	health := rest.NewHealthHandler(pool, scheduler, BuildVersion())
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(logger, health, registry),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// ---------------------------------------------------------------------------
	// Lifecycle
	// ---------------------------------------------------------------------------

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return bot.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("ops server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ops server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("ops server shutdown: %w", err))
		}
		if err := scheduler.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		logger.Error("application stopped with error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("application stopped")
	return nil
}
