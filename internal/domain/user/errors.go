package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailExists             = errors.New("email already registered")
	ErrUserInactive            = errors.New("user account is inactive")
	ErrManagerRoleRequired     = errors.New("manager role required")
	ErrStoreOutsideScope       = errors.New("store is outside the caller's authorized scope")
	ErrEmployeeOutsideScope    = errors.New("employee is outside the caller's authorized scope")
	ErrInvalidRole             = errors.New("invalid role")
	ErrUserHasNoStoreGranted   = errors.New("user has no store granted")
	ErrCannotDeactivateOneself = errors.New("cannot deactivate your own account")
)
