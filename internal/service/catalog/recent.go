package catalog

import (
	"context"
	"fmt"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

// Recent returns up to RecentLimit distinct products requesterID looked up,
// most recent first. Returns a wrapped domain.ErrNotFound when there are none.
func (s *Service) Recent(ctx context.Context, requesterID int64) ([]domain.Product, error) {
	if requesterID == 0 {
		return nil, domain.NewValidationError("requester_id", "required")
	}

	products, err := s.products.ListRecentByRequester(ctx, requesterID, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("list recent products: %w", err)
	}
	return products, nil
}
