package payroll

import "errors"

var (
	ErrInvalidPeriod   = errors.New("invalid payroll period")
	ErrMalformedShift  = errors.New("shift row has inconsistent timestamps")
	ErrSnapshotFailed  = errors.New("failed to load payroll snapshot")
	ErrNothingToExport = errors.New("no shift lines to export")
)
