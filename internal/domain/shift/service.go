package shift

import "context"

// ShiftService is the time clock. Employee actions operate on the caller's
// own open shift; manager actions operate on any shift within store scope.
type ShiftService interface {
	ClockIn(ctx context.Context, req ClockInRequest) (ShiftResponse, error)
	ClockOut(ctx context.Context) (ShiftResponse, error)

	// ManualClose ends the caller's open shift outside the normal flow and
	// flags it for manager review.
	ManualClose(ctx context.Context, req ManualCloseRequest) (ShiftResponse, error)

	// ReviewManualClose clears the manual-close flag. Manager only.
	ReviewManualClose(ctx context.Context, shiftID string) (ShiftResponse, error)

	// Edit corrects a shift record. Manager only.
	Edit(ctx context.Context, req EditShiftRequest) (ShiftResponse, error)

	// SetExcluded soft-hides or restores a shift. Manager only.
	SetExcluded(ctx context.Context, shiftID string, excluded bool) error

	List(ctx context.Context, req ListShiftsRequest) ([]ShiftResponse, error)

	// Current returns the caller's open shift, or nil when clocked out.
	Current(ctx context.Context) (*ShiftResponse, error)
}
