package catalog

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

// Refresh fetches the current state of a product for a scheduled
// notification and upserts the snapshot. It does not touch the request
// history. A failed upsert is logged and the fetched product is still
// returned so the notification can go out.
func (s *Service) Refresh(ctx context.Context, code string) (domain.Product, error) {
	fetched, err := s.fetch(ctx, code)
	if err != nil {
		return domain.Product{}, err
	}

	stored, err := s.products.Upsert(ctx, fetched)
	if err != nil {
		s.log.WarnContext(ctx, "snapshot upsert failed on refresh",
			slog.String("code", code),
			slog.String("error", err.Error()),
		)
		return fetched, nil
	}

	return stored, nil
}
