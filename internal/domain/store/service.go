package store

import "context"

// StoreService manages store records. Mutations are manager only and
// restricted to the caller's store scope.
type StoreService interface {
	Create(ctx context.Context, req CreateStoreRequest) (StoreResponse, error)
	Update(ctx context.Context, req UpdateStoreRequest) (StoreResponse, error)
	GetByID(ctx context.Context, id string) (StoreResponse, error)
	List(ctx context.Context) ([]StoreResponse, error)
}
