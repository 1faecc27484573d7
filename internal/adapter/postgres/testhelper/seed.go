package testhelper

import (
	"context"
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

// UniqueCode returns a numeric product code that is unlikely to collide
// with codes seeded by other tests sharing the container.
func UniqueCode() string {
	return strconv.FormatInt(100_000_000+rand.Int64N(899_999_999), 10)
}

// SeedProduct inserts a product snapshot with a unique code and returns it.
func SeedProduct(t *testing.T, pool *pgxpool.Pool) domain.Product {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Product{
		ID:        uuid.New(),
		Code:      UniqueCode(),
		Name:      "Seeded product",
		Price:     129900,
		Rating:    4.7,
		StockQty:  12,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO products (id, code, name, price, rating, stock_qty, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Code, p.Name, p.Price, p.Rating, p.StockQty, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}

	return p
}

// SeedRequest appends a request history row for the given requester and code.
func SeedRequest(t *testing.T, pool *pgxpool.Pool, requesterID int64, code string) domain.RequestRecord {
	t.Helper()

	rec := domain.RequestRecord{
		ID:          uuid.New(),
		RequesterID: requesterID,
		Code:        code,
		RequestedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO request_history (id, requester_id, code, requested_at) VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.RequesterID, rec.Code, rec.RequestedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRequest: %v", err)
	}

	return rec
}

// UniqueRequesterID returns a random chat identifier for isolating history rows.
func UniqueRequesterID() int64 {
	return 1_000_000 + rand.Int64N(1<<40)
}
