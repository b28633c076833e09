package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/sales"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type salesRepositoryImpl struct {
	db *database.DB
}

func NewSalesRepository(db *database.DB) sales.SalesRepository {
	return &salesRepositoryImpl{db: db}
}

// Upsert implements sales.SalesRepository.
func (r *salesRepositoryImpl) Upsert(ctx context.Context, rec sales.Record) (sales.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sales_records (id, store_id, sale_date, net_cents)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (store_id, sale_date)
		DO UPDATE SET net_cents = EXCLUDED.net_cents, updated_at = NOW()
		RETURNING id, store_id, sale_date, net_cents, created_at, updated_at
	`

	var out sales.Record
	err := q.QueryRow(ctx, query,
		rec.ID,
		rec.StoreID,
		rec.SaleDate,
		rec.NetCents,
	).Scan(
		&out.ID,
		&out.StoreID,
		&out.SaleDate,
		&out.NetCents,
		&out.CreatedAt,
		&out.UpdatedAt,
	)
	if err != nil {
		return sales.Record{}, fmt.Errorf("failed to upsert sales record: %w", err)
	}
	return out, nil
}

// ListByPeriod implements sales.SalesRepository.
func (r *salesRepositoryImpl) ListByPeriod(ctx context.Context, storeID string, from, to time.Time) ([]sales.Record, error) {
	return r.list(ctx, `
		SELECT id, store_id, sale_date, net_cents, created_at, updated_at
		FROM sales_records
		WHERE store_id = $1 AND sale_date >= $2 AND sale_date < $3
		ORDER BY sale_date, id
	`, storeID, from, to)
}

// ListAllByPeriod implements sales.SalesRepository.
func (r *salesRepositoryImpl) ListAllByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]sales.Record, error) {
	return r.list(ctx, `
		SELECT id, store_id, sale_date, net_cents, created_at, updated_at
		FROM sales_records
		WHERE store_id = ANY($1) AND sale_date >= $2 AND sale_date < $3
		ORDER BY sale_date, id
	`, storeIDs, from, to)
}

func (r *salesRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]sales.Record, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales records: %w", err)
	}
	defer rows.Close()

	var records []sales.Record
	for rows.Next() {
		var rec sales.Record
		err := rows.Scan(
			&rec.ID,
			&rec.StoreID,
			&rec.SaleDate,
			&rec.NetCents,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
