package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	ListByStore(ctx context.Context, storeID string) ([]User, error)
	Update(ctx context.Context, u User) error
	SetActive(ctx context.Context, id string, active bool) error
	GrantStore(ctx context.Context, userID, storeID string) error
	RevokeStore(ctx context.Context, userID, storeID string) error
}
