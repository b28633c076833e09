package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/schedule"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, e schedule.Entry) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	// Reject slots overlapping an existing one for the same employee
	var overlaps bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM schedule_entries
			WHERE profile_id = $1 AND scheduled_start < $3 AND scheduled_end > $2
		)`,
		e.ProfileID, e.ScheduledStart, e.ScheduledEnd,
	).Scan(&overlaps)
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to check schedule overlap: %w", err)
	}
	if overlaps {
		return schedule.Entry{}, schedule.ErrEntryOverlaps
	}

	query := `
		INSERT INTO schedule_entries (id, profile_id, store_id, scheduled_start, scheduled_end)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, profile_id, store_id, scheduled_start, scheduled_end, created_at, updated_at
	`

	var created schedule.Entry
	err = q.QueryRow(ctx, query,
		e.ID,
		e.ProfileID,
		e.StoreID,
		e.ScheduledStart,
		e.ScheduledEnd,
	).Scan(
		&created.ID,
		&created.ProfileID,
		&created.StoreID,
		&created.ScheduledStart,
		&created.ScheduledEnd,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return schedule.Entry{}, fmt.Errorf("failed to create schedule entry: %w", err)
	}
	return created, nil
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.profile_id, e.store_id, e.scheduled_start, e.scheduled_end,
			e.created_at, e.updated_at, u.full_name
		FROM schedule_entries e
		JOIN users u ON u.id = e.profile_id
		WHERE e.id = $1
	`

	var e schedule.Entry
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.ProfileID,
		&e.StoreID,
		&e.ScheduledStart,
		&e.ScheduledEnd,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.FullName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.Entry{}, schedule.ErrEntryNotFound
		}
		return schedule.Entry{}, fmt.Errorf("failed to get schedule entry: %w", err)
	}
	return e, nil
}

// ListByPeriod implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ListByPeriod(ctx context.Context, storeIDs []string, from, to time.Time) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.profile_id, e.store_id, e.scheduled_start, e.scheduled_end,
			e.created_at, e.updated_at, u.full_name
		FROM schedule_entries e
		JOIN users u ON u.id = e.profile_id
		WHERE e.store_id = ANY($1) AND e.scheduled_start >= $2 AND e.scheduled_start < $3
		ORDER BY e.scheduled_start, e.id
	`
	rows, err := q.Query(ctx, query, storeIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", schedule.ErrSourceUnhealthy, err)
	}
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		var e schedule.Entry
		err := rows.Scan(
			&e.ID,
			&e.ProfileID,
			&e.StoreID,
			&e.ScheduledStart,
			&e.ScheduledEnd,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.FullName,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedule_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrEntryNotFound
	}
	return nil
}
