package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/shiftline/shiftline-backend-go/internal/domain/auth"
	"github.com/shiftline/shiftline-backend-go/internal/domain/shift"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/sse"
)

// A shift left open this long is considered forgotten.
const staleShiftAge = 16 * time.Hour

type ShiftJobs struct {
	shiftRepo        shift.ShiftRepository
	refreshTokenRepo auth.RefreshTokenRepository
	hub              *sse.Hub
}

func NewShiftJobs(shiftRepo shift.ShiftRepository, refreshTokenRepo auth.RefreshTokenRepository, hub *sse.Hub) *ShiftJobs {
	return &ShiftJobs{
		shiftRepo:        shiftRepo,
		refreshTokenRepo: refreshTokenRepo,
		hub:              hub,
	}
}

func (j *ShiftJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("remind_stale_open_shifts", 30*time.Minute, j.RemindStaleOpenShifts)
	scheduler.AddJob("purge_expired_refresh_tokens", 6*time.Hour, j.PurgeExpiredRefreshTokens)
}

// RemindStaleOpenShifts nudges employees who forgot to clock out. The shift
// stays open; closing it is the employee's (or a manager's) call.
func (j *ShiftJobs) RemindStaleOpenShifts(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-staleShiftAge)

	stale, err := j.shiftRepo.ListOpenOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	slog.Info("Cron: reminding stale open shifts", "count", len(stale))
	for _, s := range stale {
		j.hub.Publish(s.ProfileID, sse.Event{
			UserID: s.ProfileID,
			Event:  "shift_still_open",
			Data: map[string]string{
				"shift_id":   s.ID,
				"started_at": s.StartedAt.UTC().Format(time.RFC3339),
			},
		})
	}
	return nil
}

func (j *ShiftJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.refreshTokenRepo.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if deleted > 0 {
		slog.Info("Cron: purged expired refresh tokens", "count", deleted)
	}
	return nil
}
