package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
)

// UserRepository persists application users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates the repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, email, password_hash, full_name, role, notifications_enabled, active, last_login, created_at, updated_at"

// FindByEmail returns a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin stamps the user's most recent login time.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, "UPDATE users SET last_login = $2, updated_at = $2 WHERE id = $1", id, at.UTC()); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

// NotificationPreference reports whether a user wants popup notifications.
// The flag is read from the profile first and the preferences table second;
// an absent or unreadable preference defaults to enabled.
func (r *UserRepository) NotificationPreference(ctx context.Context, userID string) (bool, error) {
	var enabled sql.NullBool
	err := r.db.GetContext(ctx, &enabled, "SELECT notifications_enabled FROM users WHERE id = $1", userID)
	if err == nil && enabled.Valid {
		return enabled.Bool, nil
	}
	if err != nil && err != sql.ErrNoRows {
		return true, nil
	}

	var fallback bool
	err = r.db.GetContext(ctx, &fallback, "SELECT enabled FROM user_preferences WHERE user_id = $1 AND kind = 'notifications'", userID)
	if err != nil {
		return true, nil
	}
	return fallback, nil
}
