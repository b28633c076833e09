package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `s.id, s.store_id, s.profile_id, s.shift_type, s.planned_start_at,
	s.started_at, s.ended_at, s.note, s.manual_closed, s.manual_closed_reviewed_at,
	s.last_action, s.excluded, s.created_at, s.updated_at`

func scanShift(row pgx.Row, withName bool) (shift.Shift, error) {
	var sh shift.Shift
	dest := []interface{}{
		&sh.ID,
		&sh.StoreID,
		&sh.ProfileID,
		&sh.ShiftType,
		&sh.PlannedStartAt,
		&sh.StartedAt,
		&sh.EndedAt,
		&sh.Note,
		&sh.ManualClosed,
		&sh.ManualClosedReviewedAt,
		&sh.LastAction,
		&sh.Excluded,
		&sh.CreatedAt,
		&sh.UpdatedAt,
	}
	if withName {
		dest = append(dest, &sh.FullName)
	}
	err := row.Scan(dest...)
	return sh, err
}

// Create implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (id, store_id, profile_id, shift_type, planned_start_at,
			started_at, ended_at, note, manual_closed, last_action, excluded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, store_id, profile_id, shift_type, planned_start_at,
			started_at, ended_at, note, manual_closed, manual_closed_reviewed_at,
			last_action, excluded, created_at, updated_at`

	created, err := scanShift(q.QueryRow(ctx, query,
		s.ID,
		s.StoreID,
		s.ProfileID,
		s.ShiftType,
		s.PlannedStartAt,
		s.StartedAt,
		s.EndedAt,
		s.Note,
		s.ManualClosed,
		s.LastAction,
		s.Excluded,
	), false)
	if err != nil {
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return created, nil
}

// GetByID implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `, u.full_name
		FROM shifts s
		JOIN users u ON u.id = s.profile_id
		WHERE s.id = $1
	`
	sh, err := scanShift(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return sh, nil
}

// GetOpenByProfile implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) GetOpenByProfile(ctx context.Context, profileID string) (*shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `, u.full_name
		FROM shifts s
		JOIN users u ON u.id = s.profile_id
		WHERE s.profile_id = $1 AND s.ended_at IS NULL AND NOT s.excluded
		ORDER BY s.started_at DESC
		LIMIT 1
	`
	sh, err := scanShift(q.QueryRow(ctx, query, profileID), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open shift: %w", err)
	}
	return &sh, nil
}

// ListByPeriod implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `, u.full_name
		FROM shifts s
		JOIN users u ON u.id = s.profile_id
		WHERE s.store_id = ANY($1) AND s.started_at >= $2 AND s.started_at < $3 AND NOT s.excluded
		ORDER BY s.started_at, s.id
	`
	rows, err := q.Query(ctx, query, storeIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows, true)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}

// ListOpenOlderThan implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) ListOpenOlderThan(ctx context.Context, cutoff time.Time) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + shiftColumns + `, u.full_name
		FROM shifts s
		JOIN users u ON u.id = s.profile_id
		WHERE s.ended_at IS NULL AND NOT s.excluded AND s.started_at < $1
		ORDER BY s.started_at, s.id
	`
	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale open shifts: %w", err)
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		sh, err := scanShift(rows, true)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, sh)
	}
	return shifts, rows.Err()
}

// Update implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET shift_type = $1, planned_start_at = $2, started_at = $3, ended_at = $4,
		    note = $5, manual_closed = $6, manual_closed_reviewed_at = $7,
		    last_action = $8, updated_at = NOW()
		WHERE id = $9
	`
	tag, err := q.Exec(ctx, query,
		s.ShiftType,
		s.PlannedStartAt,
		s.StartedAt,
		s.EndedAt,
		s.Note,
		s.ManualClosed,
		s.ManualClosedReviewedAt,
		s.LastAction,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// SetExcluded implements shift.ShiftRepository.
func (r *shiftRepositoryImpl) SetExcluded(ctx context.Context, id string, excluded bool, lastAction string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE shifts SET excluded = $1, last_action = $2, updated_at = NOW() WHERE id = $3`,
		excluded, lastAction, id,
	)
	if err != nil {
		return fmt.Errorf("failed to set shift excluded: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}
