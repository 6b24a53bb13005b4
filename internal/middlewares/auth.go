package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/msokolov/bookshelf/internal/jwt"
	"github.com/msokolov/bookshelf/internal/logger"
	"github.com/msokolov/bookshelf/internal/models"
)

// Tokener defines the token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserResolver checks that a token subject still exists.
type UserResolver interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// contextKey is an unexported type for keys in context.
type contextKey struct{}

var userIDKey = contextKey{}

// UserIDFromContext returns the authenticated user id set by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// AuthMiddleware verifies the bearer token, resolves its subject to an
// existing user, and stores the user id in the request context. It performs
// no ownership checks; those belong to the services.
func AuthMiddleware(tokener Tokener, users UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				unauthorized(w, "authorization failed", err)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				unauthorized(w, "authorization failed", err)
				return
			}

			user, err := users.GetByID(ctx, claims.UserID)
			if err != nil || user == nil {
				unauthorized(w, "token subject no longer exists", err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, user.ID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string, err error) {
	logger.Log.Errorw(msg, "err", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error": "Not authorized to access this route",
	})
}
