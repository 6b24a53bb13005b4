package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/msokolov/bookshelf/internal/logger"
	"github.com/msokolov/bookshelf/internal/models"
)

// UserReadRepository provides read access to the users table.
type UserReadRepository struct {
	db *sqlx.DB
}

// NewUserReadRepository creates a new UserReadRepository.
func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

const userColumns = `id, email, user_id, password, avatar_url, reset_password_token, reset_password_expires, created_at, updated_at`

// GetByID returns the user with the given primary key, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByEmail returns the user with the given email, or nil if absent.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.get(ctx, query, email)
}

// GetByLogin returns the user with the given login handle, or nil if absent.
func (r *UserReadRepository) GetByLogin(ctx context.Context, login string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.get(ctx, query, login)
}

// GetByLoginOrEmail matches the identifier against either the login handle or
// the email in a single lookup.
func (r *UserReadRepository) GetByLoginOrEmail(ctx context.Context, identifier string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR user_id = $1`
	return r.get(ctx, query, identifier)
}

// GetByResetToken returns the user whose stored reset-token hash matches and
// whose token has not yet expired, or nil otherwise.
func (r *UserReadRepository) GetByResetToken(ctx context.Context, tokenHash string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users
		WHERE reset_password_token = $1 AND reset_password_expires > NOW()`
	return r.get(ctx, query, tokenHash)
}

func (r *UserReadRepository) get(ctx context.Context, query string, args ...any) (*models.UserDB, error) {
	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("user query failed", "err", err)
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository provides write access to the users table.
type UserWriteRepository struct {
	db *sqlx.DB
}

// NewUserWriteRepository creates a new UserWriteRepository.
func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the stored row.
func (r *UserWriteRepository) Save(ctx context.Context, email, login, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (email, user_id, password)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	var user models.UserDB
	if err := r.db.GetContext(ctx, &user, query, email, login, passwordHash); err != nil {
		logger.Log.Errorw("failed to insert user", "err", err)
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces the stored password digest.
func (r *UserWriteRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		logger.Log.Errorw("failed to update password", "err", err)
	}
	return err
}

// SetResetToken stores the hashed reset token and its expiry on the user.
func (r *UserWriteRepository) SetResetToken(ctx context.Context, id int64, tokenHash string, expires time.Time) error {
	const query = `
		UPDATE users
		SET reset_password_token = $1, reset_password_expires = $2, updated_at = NOW()
		WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, tokenHash, expires, id)
	if err != nil {
		logger.Log.Errorw("failed to set reset token", "err", err)
	}
	return err
}

// ResetPassword sets the new password digest and clears the reset-token
// fields in a single statement, so a consumed token cannot be replayed.
func (r *UserWriteRepository) ResetPassword(ctx context.Context, id int64, passwordHash string) error {
	const query = `
		UPDATE users
		SET password = $1, reset_password_token = NULL, reset_password_expires = NULL, updated_at = NOW()
		WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		logger.Log.Errorw("failed to reset password", "err", err)
	}
	return err
}

// UpdateAvatar stores the avatar value verbatim and returns the updated row.
func (r *UserWriteRepository) UpdateAvatar(ctx context.Context, id int64, avatar string) (*models.UserDB, error) {
	const query = `
		UPDATE users SET avatar_url = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + userColumns

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, avatar, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to update avatar", "err", err)
		return nil, err
	}
	return &user, nil
}
