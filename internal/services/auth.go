package services

import (
	"context"
	"errors"
	"time"

	"github.com/msokolov/bookshelf/internal/images"
	"github.com/msokolov/bookshelf/internal/logger"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/password"
	"github.com/msokolov/bookshelf/internal/resettoken"
)

// Error variables
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailExists        = errors.New("email already exists")
	ErrLoginExists        = errors.New("user id already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
	GetByLogin(ctx context.Context, login string) (*models.UserDB, error)
	GetByLoginOrEmail(ctx context.Context, identifier string) (*models.UserDB, error)
	GetByResetToken(ctx context.Context, tokenHash string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, email, login, passwordHash string) (*models.UserDB, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	SetResetToken(ctx context.Context, id int64, tokenHash string, expires time.Time) error
	ResetPassword(ctx context.Context, id int64, passwordHash string) error
	UpdateAvatar(ctx context.Context, id int64, avatar string) (*models.UserDB, error)
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64) (string, error)
}

// UserBooksReader lists the books owned by a user for the profile view.
type UserBooksReader interface {
	ListByUser(ctx context.Context, userID int64) ([]models.BookDB, error)
}

// AuthService handles registration, login, password lifecycle, avatar, and
// profile.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	books    UserBooksReader
	tokens   TokenGenerator
	resetTTL time.Duration
}

// NewAuthService creates a new AuthService. resetTTL bounds the lifetime of
// password reset tokens.
func NewAuthService(reader UserReader, writer UserWriter, books UserBooksReader, tokens TokenGenerator, resetTTL time.Duration) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		books:    books,
		tokens:   tokens,
		resetTTL: resetTTL,
	}
}

// Register creates a new user and returns a bearer token with the public
// user projection. The email is checked for duplicates before the login
// handle.
func (svc *AuthService) Register(ctx context.Context, email, login, pass, confirm string) (string, *models.UserPublic, error) {
	if pass != confirm {
		return "", nil, ErrPasswordMismatch
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailExists
	}

	existing, err = svc.reader.GetByLogin(ctx, login)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrLoginExists
	}

	hash, err := password.Hash(pass)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", nil, err
	}

	user, err := svc.writer.Save(ctx, email, login, hash)
	if err != nil {
		return "", nil, err
	}

	token, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}

// Login authenticates by login handle or email. Unknown identifiers and bad
// passwords fail with the same error so callers cannot enumerate users.
func (svc *AuthService) Login(ctx context.Context, identifier, pass string) (string, *models.UserPublic, error) {
	user, err := svc.reader.GetByLoginOrEmail(ctx, identifier)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !password.Verify(pass, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.tokens.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, err
	}

	return token, user.Public(), nil
}

// ChangePassword verifies the current password and stores a new digest.
func (svc *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if !password.Verify(current, user.Password) {
		return ErrInvalidCredentials
	}

	hash, err := password.Hash(next)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.UpdatePassword(ctx, user.ID, hash)
}

// ForgotPassword issues a reset token for the user with the given email and
// returns the plaintext for out-of-band delivery. Only the hash is stored.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	plain, hash, err := resettoken.Generate()
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return "", err
	}

	expires := time.Now().Add(svc.resetTTL)
	if err := svc.writer.SetResetToken(ctx, user.ID, hash, expires); err != nil {
		return "", err
	}

	return plain, nil
}

// ResetPassword consumes a reset token and stores the new password. The
// stored hash and expiry are cleared in the same statement, so the token is
// single-use.
func (svc *AuthService) ResetPassword(ctx context.Context, plainToken, next string) error {
	user, err := svc.reader.GetByResetToken(ctx, resettoken.Hash(plainToken))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrResetTokenInvalid
	}

	hash, err := password.Hash(next)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.ResetPassword(ctx, user.ID, hash)
}

// UpdateAvatar validates and stores an avatar value, which is either an
// http(s) image URL or an inline base64 data URI persisted verbatim.
func (svc *AuthService) UpdateAvatar(ctx context.Context, userID int64, avatar string) (*models.UserPublic, error) {
	if err := images.Validate(avatar); err != nil {
		return nil, err
	}

	user, err := svc.writer.UpdateAvatar(ctx, userID, avatar)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}

// Profile returns the public user projection together with the user's books,
// newest first.
func (svc *AuthService) Profile(ctx context.Context, userID int64) (*models.UserPublic, []models.BookDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	books, err := svc.books.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user.Public(), books, nil
}
