package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/advance"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type advanceRepositoryImpl struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepositoryImpl{db: db}
}

// Create implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO advances (id, profile_id, store_id, advance_date, advance_hours,
			cash_cents, note, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, profile_id, store_id, advance_date, advance_hours, cash_cents,
			note, status, created_by, created_at, updated_at
	`

	var created advance.Advance
	err := q.QueryRow(ctx, query,
		a.ID,
		a.ProfileID,
		a.StoreID,
		a.AdvanceDate,
		a.AdvanceHours,
		a.CashCents,
		a.Note,
		a.Status,
		a.CreatedBy,
	).Scan(
		&created.ID,
		&created.ProfileID,
		&created.StoreID,
		&created.AdvanceDate,
		&created.AdvanceHours,
		&created.CashCents,
		&created.Note,
		&created.Status,
		&created.CreatedBy,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}
	return created, nil
}

// GetByID implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.profile_id, a.store_id, a.advance_date, a.advance_hours,
			a.cash_cents, a.note, a.status, a.created_by, a.created_at, a.updated_at,
			u.full_name
		FROM advances a
		JOIN users u ON u.id = a.profile_id
		WHERE a.id = $1
	`

	var a advance.Advance
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.ProfileID,
		&a.StoreID,
		&a.AdvanceDate,
		&a.AdvanceHours,
		&a.CashCents,
		&a.Note,
		&a.Status,
		&a.CreatedBy,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.FullName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance: %w", err)
	}
	return a, nil
}

// ListByPeriod implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) ListByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.profile_id, a.store_id, a.advance_date, a.advance_hours,
			a.cash_cents, a.note, a.status, a.created_by, a.created_at, a.updated_at,
			u.full_name
		FROM advances a
		JOIN users u ON u.id = a.profile_id
		WHERE a.store_id = ANY($1) AND a.advance_date >= $2 AND a.advance_date < $3
		ORDER BY a.advance_date, a.id
	`
	rows, err := q.Query(ctx, query, storeIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	var advances []advance.Advance
	for rows.Next() {
		var a advance.Advance
		err := rows.Scan(
			&a.ID,
			&a.ProfileID,
			&a.StoreID,
			&a.AdvanceDate,
			&a.AdvanceHours,
			&a.CashCents,
			&a.Note,
			&a.Status,
			&a.CreatedBy,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.FullName,
		)
		if err != nil {
			return nil, err
		}
		advances = append(advances, a)
	}
	return advances, rows.Err()
}

// SetStatus implements advance.AdvanceRepository.
func (r *advanceRepositoryImpl) SetStatus(ctx context.Context, id string, status advance.Status) error {
	q := GetQuerier(ctx, r.db)

	// Guarded update: only a pending advance may change status
	tag, err := q.Exec(ctx,
		`UPDATE advances SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		status, id, advance.StatusPending,
	)
	if err != nil {
		return fmt.Errorf("failed to set advance status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM advances WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check advance: %w", err)
		}
		if !exists {
			return advance.ErrAdvanceNotFound
		}
		return advance.ErrAdvanceAlreadyProcessed
	}
	return nil
}
