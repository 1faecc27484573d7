// Package request implements the request log using PostgreSQL.
// It provides append-only operations; rows are never updated or deleted.
package request

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/pricewatch-bot/internal/adapter/postgres"
	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

const table = "request_history"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo appends lookup requests to the request history.
type Repo struct {
	db postgres.Querier
}

// New creates a new request log repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append records one request. Rows are never updated or deleted; the
// database assigns the ordering sequence.
func (r *Repo) Append(ctx context.Context, rec domain.RequestRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.RequestedAt.IsZero() {
		rec.RequestedAt = time.Now().UTC()
	}

	query, args, err := psql.Insert(table).
		Columns("id", "requester_id", "code", "requested_at").
		Values(rec.ID, rec.RequesterID, rec.Code, rec.RequestedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append request: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "request", rec.ID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// CountByRequester returns how many requests requesterID has made.
func (r *Repo) CountByRequester(ctx context.Context, requesterID int64) (int, error) {
	query, args, err := psql.Select("count(*)").
		From(table).
		Where(sq.Eq{"requester_id": requesterID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count requests: %w", err)
	}

	var count int
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &count, query, args...); err != nil {
		return 0, postgres.MapError(err, "requester", requesterID)
	}

	return count, nil
}
