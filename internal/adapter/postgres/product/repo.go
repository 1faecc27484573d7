// Package product implements the product snapshot store using PostgreSQL.
package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/pricewatch-bot/internal/adapter/postgres"
	"github.com/heartmarshall/pricewatch-bot/internal/domain"
)

const table = "products"

var (
	psql    = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	columns = []string{"id", "code", "name", "price", "rating", "stock_qty", "created_at", "updated_at"}
)

// Repo provides product snapshot persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new product repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// productRow mirrors the products table for scany.
type productRow struct {
	ID        uuid.UUID `db:"id"`
	Code      string    `db:"code"`
	Name      string    `db:"name"`
	Price     int64     `db:"price"`
	Rating    float64   `db:"rating"`
	StockQty  int64     `db:"stock_qty"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		ID:        r.ID,
		Code:      r.Code,
		Name:      r.Name,
		Price:     r.Price,
		Rating:    r.Rating,
		StockQty:  r.StockQty,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert creates the snapshot for p.Code or overwrites the mutable fields of
// the existing one. ID, code and created_at of an existing row never change.
// Concurrent upserts of the same code resolve last-write-wins.
func (r *Repo) Upsert(ctx context.Context, p domain.Product) (domain.Product, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()

	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(p.ID, p.Code, p.Name, p.Price, p.Rating, p.StockQty, now, now).
		Suffix(`ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			price = EXCLUDED.price,
			rating = EXCLUDED.rating,
			stock_qty = EXCLUDED.stock_qty,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Product{}, fmt.Errorf("build upsert product: %w", err)
	}

	var row productRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Product{}, postgres.MapError(err, "product", p.Code)
	}

	return row.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByCode returns the snapshot for a product code.
func (r *Repo) GetByCode(ctx context.Context, code string) (domain.Product, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"code": code}).
		ToSql()
	if err != nil {
		return domain.Product{}, fmt.Errorf("build get product: %w", err)
	}

	var row productRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return domain.Product{}, postgres.MapError(err, "product", code)
	}

	return row.toDomain(), nil
}

// ListRecentByRequester returns the distinct products requesterID asked for,
// most recently requested first, at most limit of them.
// Returns a wrapped domain.ErrNotFound when the requester has no history.
func (r *Repo) ListRecentByRequester(ctx context.Context, requesterID int64, limit int) ([]domain.Product, error) {
	if limit <= 0 {
		return nil, domain.NewValidationError("limit", "must be positive")
	}

	recent := psql.Select("code", "MAX(seq) AS last_seq").
		From("request_history").
		Where(sq.Eq{"requester_id": requesterID}).
		GroupBy("code")

	query, args, err := psql.Select(joinColumns("p.")...).
		From(table + " p").
		JoinClause(recent.Prefix("JOIN (").Suffix(") r ON r.code = p.code")).
		OrderBy("r.last_seq DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recent products: %w", err)
	}

	var rows []productRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "requester", requesterID)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("requester %d history: %w", requesterID, domain.ErrNotFound)
	}

	products := make([]domain.Product, len(rows))
	for i, row := range rows {
		products[i] = row.toDomain()
	}
	return products, nil
}

// joinColumns returns the column list with an optional table alias prefix.
func joinColumns(prefix string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = prefix + c
	}
	return out
}
