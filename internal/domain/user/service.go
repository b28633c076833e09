package user

import "context"

// UserService is the people directory. Upserts are manager only.
type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	ListByStore(ctx context.Context, storeID string) ([]UserResponse, error)
	SetActive(ctx context.Context, id string, active bool) error

	// Me returns the caller's own profile.
	Me(ctx context.Context) (UserResponse, error)
}
