package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product is the latest known snapshot of a catalog product, keyed by Code.
// ID is assigned once on creation and never changes afterwards.
type Product struct {
	ID        uuid.UUID
	Code      string
	Name      string
	Price     int64 // minor currency units (kopecks)
	Rating    float64
	StockQty  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RequestRecord is one entry of the append-only lookup history.
type RequestRecord struct {
	ID          uuid.UUID
	RequesterID int64
	Code        string
	RequestedAt time.Time
}
