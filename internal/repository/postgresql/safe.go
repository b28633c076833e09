package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/safe"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type safeRepositoryImpl struct {
	db *database.DB
}

func NewSafeRepository(db *database.DB) safe.SafeRepository {
	return &safeRepositoryImpl{db: db}
}

// Create implements safe.SafeRepository.
func (r *safeRepositoryImpl) Create(ctx context.Context, e safe.Entry) (safe.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO safe_entries (id, store_id, count_date, counted_cents, note, recorded_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, store_id, count_date, counted_cents, note, recorded_by, created_at, updated_at
	`

	var created safe.Entry
	err := q.QueryRow(ctx, query,
		e.ID,
		e.StoreID,
		e.CountDate,
		e.CountedCents,
		e.Note,
		e.RecordedBy,
	).Scan(
		&created.ID,
		&created.StoreID,
		&created.CountDate,
		&created.CountedCents,
		&created.Note,
		&created.RecordedBy,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return safe.Entry{}, safe.ErrDuplicateCount
		}
		return safe.Entry{}, fmt.Errorf("failed to create safe entry: %w", err)
	}
	return created, nil
}

// GetByID implements safe.SafeRepository.
func (r *safeRepositoryImpl) GetByID(ctx context.Context, id string) (safe.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.store_id, e.count_date, e.counted_cents, e.note, e.recorded_by,
			e.created_at, e.updated_at, u.full_name
		FROM safe_entries e
		JOIN users u ON u.id = e.recorded_by
		WHERE e.id = $1
	`

	var e safe.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.StoreID,
		&e.CountDate,
		&e.CountedCents,
		&e.Note,
		&e.RecordedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.RecordedByName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return safe.Entry{}, safe.ErrEntryNotFound
		}
		return safe.Entry{}, fmt.Errorf("failed to get safe entry: %w", err)
	}
	return e, nil
}

// GetByStoreAndDate implements safe.SafeRepository.
func (r *safeRepositoryImpl) GetByStoreAndDate(ctx context.Context, storeID string, date time.Time) (*safe.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, count_date, counted_cents, note, recorded_by, created_at, updated_at
		FROM safe_entries
		WHERE store_id = $1 AND count_date = $2
	`

	var e safe.Entry
	err := q.QueryRow(ctx, query, storeID, date).Scan(
		&e.ID,
		&e.StoreID,
		&e.CountDate,
		&e.CountedCents,
		&e.Note,
		&e.RecordedBy,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get safe entry by date: %w", err)
	}
	return &e, nil
}

// ListByPeriod implements safe.SafeRepository.
func (r *safeRepositoryImpl) ListByPeriod(ctx context.Context, storeID string, from, to time.Time) ([]safe.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, count_date, counted_cents, note, recorded_by, created_at, updated_at
		FROM safe_entries
		WHERE store_id = $1 AND count_date >= $2 AND count_date < $3
		ORDER BY count_date, id
	`
	rows, err := q.Query(ctx, query, storeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list safe entries: %w", err)
	}
	defer rows.Close()

	var entries []safe.Entry
	for rows.Next() {
		var e safe.Entry
		err := rows.Scan(
			&e.ID,
			&e.StoreID,
			&e.CountDate,
			&e.CountedCents,
			&e.Note,
			&e.RecordedBy,
			&e.CreatedAt,
			&e.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
