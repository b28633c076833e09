package claims

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
)

// Claims is the authenticated caller, decoded from the access token.
type Claims struct {
	UserID   string
	Email    string
	Role     user.Role
	StoreIDs []string
}

// FromContext decodes the verified JWT claims placed in the request
// context by the jwtauth middleware.
func FromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	c := Claims{}
	c.UserID, _ = raw["user_id"].(string)
	c.Email, _ = raw["email"].(string)
	if role, ok := raw["role"].(string); ok {
		c.Role = user.Role(role)
	}
	// jwx yields []interface{} for tokens parsed from the wire and
	// []string for tokens encoded in-process.
	switch ids := raw["store_ids"].(type) {
	case []interface{}:
		for _, v := range ids {
			if id, ok := v.(string); ok {
				c.StoreIDs = append(c.StoreIDs, id)
			}
		}
	case []string:
		c.StoreIDs = append(c.StoreIDs, ids...)
	}

	if c.UserID == "" {
		return Claims{}, fmt.Errorf("user_id claim missing")
	}
	return c, nil
}

// IsManager reports whether the caller holds the manager role.
func (c Claims) IsManager() bool {
	return c.Role == user.RoleManager
}

// RequireManager returns ErrManagerRoleRequired for non-managers.
func (c Claims) RequireManager() error {
	if !c.IsManager() {
		return user.ErrManagerRoleRequired
	}
	return nil
}

// RequireStore checks the store against the caller's scope.
func (c Claims) RequireStore(storeID string) error {
	if len(c.StoreIDs) == 0 {
		return user.ErrUserHasNoStoreGranted
	}
	for _, id := range c.StoreIDs {
		if id == storeID {
			return nil
		}
	}
	return user.ErrStoreOutsideScope
}
