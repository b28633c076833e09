package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/store"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepositoryImpl{db: db}
}

const storeColumns = `id, name, labor_tier, expected_drawer_cents,
	payroll_variance_warn_hours, payroll_shift_drift_warn_hours, created_at, updated_at`

func scanStore(row pgx.Row) (store.Store, error) {
	var s store.Store
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.LaborTier,
		&s.ExpectedDrawerCents,
		&s.PayrollVarianceWarnHours,
		&s.PayrollShiftDriftWarnHours,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}

// Create implements store.StoreRepository.
func (r *storeRepositoryImpl) Create(ctx context.Context, s store.Store) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stores (id, name, labor_tier, expected_drawer_cents,
			payroll_variance_warn_hours, payroll_shift_drift_warn_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + storeColumns

	created, err := scanStore(q.QueryRow(ctx, query,
		s.ID,
		s.Name,
		s.LaborTier,
		s.ExpectedDrawerCents,
		s.PayrollVarianceWarnHours,
		s.PayrollShiftDriftWarnHours,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return store.Store{}, store.ErrStoreNameExists
		}
		return store.Store{}, fmt.Errorf("failed to create store: %w", err)
	}
	return created, nil
}

// GetByID implements store.StoreRepository.
func (r *storeRepositoryImpl) GetByID(ctx context.Context, id string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	s, err := scanStore(q.QueryRow(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, fmt.Errorf("failed to get store: %w", err)
	}
	return s, nil
}

// GetByIDs implements store.StoreRepository.
func (r *storeRepositoryImpl) GetByIDs(ctx context.Context, ids []string) ([]store.Store, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+storeColumns+` FROM stores WHERE id = ANY($1) ORDER BY name, id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores by ids: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// List implements store.StoreRepository.
func (r *storeRepositoryImpl) List(ctx context.Context) ([]store.Store, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+storeColumns+` FROM stores ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

// Update implements store.StoreRepository.
func (r *storeRepositoryImpl) Update(ctx context.Context, s store.Store) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE stores
		SET name = $1, labor_tier = $2, expected_drawer_cents = $3,
		    payroll_variance_warn_hours = $4, payroll_shift_drift_warn_hours = $5,
		    updated_at = NOW()
		WHERE id = $6
	`
	tag, err := q.Exec(ctx, query,
		s.Name,
		s.LaborTier,
		s.ExpectedDrawerCents,
		s.PayrollVarianceWarnHours,
		s.PayrollShiftDriftWarnHours,
		s.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrStoreNameExists
		}
		return fmt.Errorf("failed to update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}
	return nil
}
