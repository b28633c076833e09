package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline/shiftline-backend-go/internal/domain/user"
	"github.com/shiftline/shiftline-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, email, full_name, password_hash, google_id, role, hourly, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.GoogleID,
		&u.Role,
		&u.Hourly,
		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	return u, err
}

func (r *userRepositoryImpl) storeIDs(ctx context.Context, userID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT store_id FROM user_stores WHERE user_id = $1 ORDER BY store_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user stores: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	var created user.User
	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		query := `
			INSERT INTO users (id, email, full_name, password_hash, google_id, role, hourly, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING ` + userColumns

		var err error
		created, err = scanUser(q.QueryRow(txCtx, query,
			newUser.ID,
			newUser.Email,
			newUser.FullName,
			newUser.PasswordHash,
			newUser.GoogleID,
			newUser.Role,
			newUser.Hourly,
			newUser.IsActive,
		))
		if err != nil {
			if isUniqueViolation(err) {
				return user.ErrEmailExists
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		for _, storeID := range newUser.StoreIDs {
			if _, err := q.Exec(txCtx,
				`INSERT INTO user_stores (user_id, store_id) VALUES ($1, $2)`,
				created.ID, storeID,
			); err != nil {
				return fmt.Errorf("failed to grant store: %w", err)
			}
		}
		created.StoreIDs = newUser.StoreIDs
		return nil
	})
	if err != nil {
		return user.User{}, err
	}
	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	u.StoreIDs, err = r.storeIDs(ctx, u.ID)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	u.StoreIDs, err = r.storeIDs(ctx, u.ID)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// GetByGoogleID implements user.UserRepository.
func (r *userRepositoryImpl) GetByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE google_id = $1`, googleID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by google id: %w", err)
	}

	u.StoreIDs, err = r.storeIDs(ctx, u.ID)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

// ListByStore implements user.UserRepository.
func (r *userRepositoryImpl) ListByStore(ctx context.Context, storeID string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id IN (SELECT user_id FROM user_stores WHERE store_id = $1)
		ORDER BY full_name, id
	`
	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by store: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range users {
		users[i].StoreIDs, err = r.storeIDs(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return users, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1, full_name = $2, password_hash = $3, google_id = $4, role = $5,
		    hourly = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
	`
	tag, err := q.Exec(ctx, query, u.Email, u.FullName, u.PasswordHash, u.GoogleID, u.Role, u.Hourly, u.IsActive, u.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetActive implements user.UserRepository.
func (r *userRepositoryImpl) SetActive(ctx context.Context, id string, active bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE users SET is_active = $1, updated_at = NOW() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to set user active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// GrantStore implements user.UserRepository.
func (r *userRepositoryImpl) GrantStore(ctx context.Context, userID, storeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`INSERT INTO user_stores (user_id, store_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, storeID,
	)
	if err != nil {
		return fmt.Errorf("failed to grant store: %w", err)
	}
	return nil
}

// RevokeStore implements user.UserRepository.
func (r *userRepositoryImpl) RevokeStore(ctx context.Context, userID, storeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM user_stores WHERE user_id = $1 AND store_id = $2`,
		userID, storeID,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke store: %w", err)
	}
	return nil
}
