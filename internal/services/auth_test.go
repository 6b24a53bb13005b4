package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/resettoken"
	"github.com/msokolov/bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(ctrl *gomock.Controller) (
	*services.AuthService,
	*services.MockUserReader,
	*services.MockUserWriter,
	*services.MockUserBooksReader,
	*services.MockTokenGenerator,
) {
	reader := services.NewMockUserReader(ctrl)
	writer := services.NewMockUserWriter(ctrl)
	books := services.NewMockUserBooksReader(ctrl)
	tokens := services.NewMockTokenGenerator(ctrl)
	svc := services.NewAuthService(reader, writer, books, tokens, 10*time.Minute)
	return svc, reader, writer, books, tokens
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		email         string
		login         string
		password      string
		confirm       string
		emailExisting *models.UserDB
		loginExisting *models.UserDB
		wantErr       error
	}{
		{
			name:     "successful registration",
			email:    "alice@example.com",
			login:    "alice",
			password: "pass123",
			confirm:  "pass123",
		},
		{
			name:     "password mismatch",
			email:    "alice@example.com",
			login:    "alice",
			password: "pass123",
			confirm:  "other",
			wantErr:  services.ErrPasswordMismatch,
		},
		{
			name:          "email already taken",
			email:         "bob@example.com",
			login:         "bob",
			password:      "pass123",
			confirm:       "pass123",
			emailExisting: &models.UserDB{ID: 1, Email: "bob@example.com"},
			wantErr:       services.ErrEmailExists,
		},
		{
			name:          "login already taken",
			email:         "carol@example.com",
			login:         "carol",
			password:      "pass123",
			confirm:       "pass123",
			loginExisting: &models.UserDB{ID: 2, Login: "carol"},
			wantErr:       services.ErrLoginExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, reader, writer, _, tokens := newAuthService(ctrl)

			if tt.wantErr != services.ErrPasswordMismatch {
				reader.EXPECT().
					GetByEmail(gomock.Any(), tt.email).
					Return(tt.emailExisting, nil)
			}
			if tt.wantErr == nil || tt.wantErr == services.ErrLoginExists {
				reader.EXPECT().
					GetByLogin(gomock.Any(), tt.login).
					Return(tt.loginExisting, nil)
			}
			if tt.wantErr == nil {
				writer.EXPECT().
					Save(gomock.Any(), tt.email, tt.login, gomock.Any()).
					Return(&models.UserDB{ID: 10, Email: tt.email, Login: tt.login}, nil)
				tokens.EXPECT().
					Generate(gomock.Any(), int64(10)).
					Return("token123", nil)
			}

			token, user, err := svc.Register(ctx, tt.email, tt.login, tt.password, tt.confirm)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestAuthService_Register_ChecksEmailBeforeLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _ := newAuthService(ctrl)

	// Both identifiers collide; the email error wins
	reader.EXPECT().
		GetByEmail(gomock.Any(), "dup@example.com").
		Return(&models.UserDB{ID: 1}, nil)

	_, _, err := svc.Register(context.Background(), "dup@example.com", "dup", "pass", "pass")
	assert.ErrorIs(t, err, services.ErrEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	stored := &models.UserDB{ID: 5, Email: "alice@example.com", Login: "alice", Password: string(hashed)}

	tests := []struct {
		name       string
		identifier string
		password   string
		user       *models.UserDB
		wantErr    error
	}{
		{
			name:       "login by handle",
			identifier: "alice",
			password:   "secret",
			user:       stored,
		},
		{
			name:       "login by email",
			identifier: "alice@example.com",
			password:   "secret",
			user:       stored,
		},
		{
			name:       "unknown identifier",
			identifier: "nobody",
			password:   "secret",
			user:       nil,
			wantErr:    services.ErrInvalidCredentials,
		},
		{
			name:       "wrong password",
			identifier: "alice",
			password:   "wrong",
			user:       stored,
			wantErr:    services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, reader, _, _, tokens := newAuthService(ctrl)

			reader.EXPECT().
				GetByLoginOrEmail(gomock.Any(), tt.identifier).
				Return(tt.user, nil)
			if tt.wantErr == nil {
				tokens.EXPECT().
					Generate(gomock.Any(), tt.user.ID).
					Return("token123", nil)
			}

			token, user, err := svc.Login(context.Background(), tt.identifier, tt.password)
			if tt.wantErr != nil {
				// Unknown users and bad passwords fail identically
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "token123", token)
				assert.Equal(t, tt.user.Email, user.Email)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("current"), bcrypt.DefaultCost)
	stored := &models.UserDB{ID: 5, Password: string(hashed)}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, writer, _, _ := newAuthService(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)
		writer.EXPECT().UpdatePassword(gomock.Any(), int64(5), gomock.Any()).Return(nil)

		err := svc.ChangePassword(context.Background(), 5, "current", "next")
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, _, _, _ := newAuthService(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), int64(5)).Return(stored, nil)

		err := svc.ChangePassword(context.Background(), 5, "wrong", "next")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, _, _, _ := newAuthService(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		err := svc.ChangePassword(context.Background(), 99, "current", "next")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	t.Run("issues token with hash stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, writer, _, _ := newAuthService(ctrl)
		reader.EXPECT().
			GetByEmail(gomock.Any(), "alice@example.com").
			Return(&models.UserDB{ID: 5}, nil)

		var storedHash string
		writer.EXPECT().
			SetResetToken(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, hash string, expires time.Time) error {
				storedHash = hash
				assert.WithinDuration(t, time.Now().Add(10*time.Minute), expires, 5*time.Second)
				return nil
			})

		plain, err := svc.ForgotPassword(context.Background(), "alice@example.com")
		assert.NoError(t, err)
		assert.NotEmpty(t, plain)
		// Only the digest is persisted, never the plaintext
		assert.NotEqual(t, plain, storedHash)
		assert.Equal(t, resettoken.Hash(plain), storedHash)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, _, _, _ := newAuthService(ctrl)
		reader.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)

		_, err := svc.ForgotPassword(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, writer, _, _ := newAuthService(ctrl)
		plain := "aabbccdd"
		reader.EXPECT().
			GetByResetToken(gomock.Any(), resettoken.Hash(plain)).
			Return(&models.UserDB{ID: 5}, nil)
		writer.EXPECT().ResetPassword(gomock.Any(), int64(5), gomock.Any()).Return(nil)

		err := svc.ResetPassword(context.Background(), plain, "newpass")
		assert.NoError(t, err)
	})

	t.Run("expired or unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, _, _, _ := newAuthService(ctrl)
		reader.EXPECT().GetByResetToken(gomock.Any(), gomock.Any()).Return(nil, nil)

		err := svc.ResetPassword(context.Background(), "stale", "newpass")
		assert.ErrorIs(t, err, services.ErrResetTokenInvalid)
	})
}

func TestAuthService_UpdateAvatar(t *testing.T) {
	t.Run("valid url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, writer, _, _ := newAuthService(ctrl)
		avatar := "https://example.com/me.png"
		writer.EXPECT().
			UpdateAvatar(gomock.Any(), int64(5), avatar).
			Return(&models.UserDB{ID: 5, AvatarURL: &avatar}, nil)

		user, err := svc.UpdateAvatar(context.Background(), 5, avatar)
		assert.NoError(t, err)
		assert.Equal(t, &avatar, user.AvatarURL)
	})

	t.Run("invalid value never reaches storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, _, _, _, _ := newAuthService(ctrl)

		_, err := svc.UpdateAvatar(context.Background(), 5, "ftp://example.com/me.png")
		assert.Error(t, err)
	})
}

func TestAuthService_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, books, _ := newAuthService(ctrl)
	reader.EXPECT().
		GetByID(gomock.Any(), int64(5)).
		Return(&models.UserDB{ID: 5, Email: "alice@example.com"}, nil)
	books.EXPECT().
		ListByUser(gomock.Any(), int64(5)).
		Return([]models.BookDB{{ID: 1, Title: "Dune"}}, nil)

	user, ownBooks, err := svc.Profile(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Len(t, ownBooks, 1)
}

func TestAuthService_Login_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, _, _ := newAuthService(ctrl)
	reader.EXPECT().
		GetByLoginOrEmail(gomock.Any(), "alice").
		Return(nil, errors.New("db down"))

	_, _, err := svc.Login(context.Background(), "alice", "secret")
	assert.EqualError(t, err, "db down")
}
