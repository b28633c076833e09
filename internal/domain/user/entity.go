package user

import "time"

// Role enum
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}

// User is one person who can sign in: a store employee or a manager.
// StoreIDs is the set of stores the user is attached to; employees have
// exactly one, managers may have several.
type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash *string
	GoogleID     *string
	Role         Role
	StoreIDs     []string

	// Hourly marks staff paid by worked hours. Salaried staff still clock
	// in and out but their rows are informational on payroll reports.
	Hourly   bool
	IsActive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// InScope reports whether the user's store scope covers the given store.
func (u User) InScope(storeID string) bool {
	for _, id := range u.StoreIDs {
		if id == storeID {
			return true
		}
	}
	return false
}
