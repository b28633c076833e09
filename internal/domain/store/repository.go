package store

import "context"

// StoreRepository defines data access methods for stores.
type StoreRepository interface {
	Create(ctx context.Context, s Store) (Store, error)
	GetByID(ctx context.Context, id string) (Store, error)
	GetByIDs(ctx context.Context, ids []string) ([]Store, error)
	List(ctx context.Context) ([]Store, error)
	Update(ctx context.Context, s Store) error
}
