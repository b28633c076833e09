package advance

import "errors"

var (
	ErrAdvanceNotFound         = errors.New("advance not found")
	ErrAdvanceAlreadyProcessed = errors.New("advance has already been verified or voided")
	ErrInvalidStatus           = errors.New("invalid advance status")
)
