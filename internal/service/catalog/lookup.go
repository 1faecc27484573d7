package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
	"github.com/heartmarshall/pricewatch-bot/internal/observability/metrics"
)

// Lookup fetches the product for an interactive request. On success the
// snapshot is upserted and the request is appended to the history in one
// transaction. Lookup failures are reported through the outcome; only a
// persistence failure is returned as an error.
func (s *Service) Lookup(ctx context.Context, input LookupInput) (LookupResult, error) {
	if err := input.Validate(); err != nil {
		return LookupResult{}, err
	}

	code, err := domain.NormalizeCode(input.Code)
	if err != nil {
		s.metrics.IncLookup(metrics.LookupInvalidCode)
		s.log.DebugContext(ctx, "invalid product code",
			slog.Int64("requester_id", input.RequesterID),
			slog.String("error", err.Error()),
		)
		return LookupResult{Outcome: OutcomeInvalidCode, Code: input.Code}, nil
	}

	fetched, err := s.fetch(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.IncLookup(metrics.LookupNotFound)
			return LookupResult{Outcome: OutcomeNotFound, Code: code}, nil
		}
		s.metrics.IncLookup(metrics.LookupUnavailable)
		s.log.WarnContext(ctx, "product lookup failed",
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
		return LookupResult{Outcome: OutcomeUnavailable, Code: code}, nil
	}

	var stored domain.Product
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		stored, txErr = s.products.Upsert(ctx, fetched)
		if txErr != nil {
			return fmt.Errorf("upsert product: %w", txErr)
		}

		if txErr = s.requests.Append(ctx, domain.RequestRecord{
			ID:          uuid.New(),
			RequesterID: input.RequesterID,
			Code:        stored.Code,
			RequestedAt: time.Now().UTC(),
		}); txErr != nil {
			return fmt.Errorf("append request: %w", txErr)
		}
		return nil
	})
	if err != nil {
		s.metrics.IncLookup(metrics.LookupPersistFail)
		return LookupResult{}, fmt.Errorf("persist lookup %s: %w", code, err)
	}

	s.metrics.IncLookup(metrics.LookupFound)
	s.log.InfoContext(ctx, "product looked up",
		slog.Int64("requester_id", input.RequesterID),
		slog.String("code", stored.Code),
		slog.String("product_id", stored.ID.String()),
	)

	return LookupResult{Outcome: OutcomeFound, Code: stored.Code, Product: stored}, nil
}

// fetch calls the card API and records its latency. The returned product
// carries a fresh ID for the case it is new to the snapshot store.
func (s *Service) fetch(ctx context.Context, code string) (domain.Product, error) {
	start := time.Now()
	p, err := s.provider.FetchProduct(ctx, code)
	s.metrics.ObserveLookupDuration(time.Since(start))
	if err != nil {
		return domain.Product{}, err
	}

	p.ID = uuid.New()
	return p, nil
}
