package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/claims"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	if err := caller.RequireManager(); err != nil {
		return user.UserResponse{}, err
	}
	if err := caller.RequireStore(req.StoreID); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}
	hashStr := string(hash)

	rec := user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hashStr,
		Role:         user.Role(req.Role),
		StoreIDs:     []string{req.StoreID},
		Hourly:       req.Hourly,
		IsActive:     true,
	}

	created, err := s.userRepo.Create(ctx, rec)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(created), nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}

	rec, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	// Anyone may read their own profile; others must share a store.
	if rec.ID != caller.UserID {
		inScope := false
		for _, storeID := range rec.StoreIDs {
			if caller.RequireStore(storeID) == nil {
				inScope = true
				break
			}
		}
		if !inScope {
			return user.UserResponse{}, user.ErrEmployeeOutsideScope
		}
	}
	return user.ToResponse(rec), nil
}

func (s *UserServiceImpl) ListByStore(ctx context.Context, storeID string) ([]user.UserResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := caller.RequireStore(storeID); err != nil {
		return nil, err
	}

	rows, err := s.userRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	out := make([]user.UserResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, user.ToResponse(r))
	}
	return out, nil
}

func (s *UserServiceImpl) SetActive(ctx context.Context, id string, active bool) error {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return err
	}
	if err := caller.RequireManager(); err != nil {
		return err
	}
	if id == caller.UserID && !active {
		return user.ErrCannotDeactivateOneself
	}

	rec, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	inScope := false
	for _, storeID := range rec.StoreIDs {
		if caller.RequireStore(storeID) == nil {
			inScope = true
			break
		}
	}
	if !inScope {
		return user.ErrEmployeeOutsideScope
	}

	return s.userRepo.SetActive(ctx, id, active)
}

func (s *UserServiceImpl) Me(ctx context.Context) (user.UserResponse, error) {
	caller, err := claims.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, err
	}
	rec, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(rec), nil
}
