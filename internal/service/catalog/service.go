// Package catalog answers product lookups and keeps the snapshot store and
// request history up to date.
package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
	"github.com/heartmarshall/pricewatch-bot/internal/observability/metrics"
)

type productProvider interface {
	FetchProduct(ctx context.Context, code string) (domain.Product, error)
}

type productRepo interface {
	Upsert(ctx context.Context, p domain.Product) (domain.Product, error)
	ListRecentByRequester(ctx context.Context, requesterID int64, limit int) ([]domain.Product, error)
}

type requestLog interface {
	Append(ctx context.Context, rec domain.RequestRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// RecentLimit is how many products Recent returns at most.
const RecentLimit = 5

// Service implements product lookup, background refresh and request history.
type Service struct {
	provider productProvider
	products productRepo
	requests requestLog
	tx       txManager
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewService creates a new catalog service. m may be nil.
func NewService(
	log *slog.Logger,
	provider productProvider,
	products productRepo,
	requests requestLog,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		provider: provider,
		products: products,
		requests: requests,
		tx:       tx,
		metrics:  m,
		log:      log.With("service", "catalog"),
	}
}
