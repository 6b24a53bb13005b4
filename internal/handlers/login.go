package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, identifier, password string) (string, *models.UserPublic, error)
}

// LoginRequest represents the JSON body for user login. The user_id field
// accepts either the login handle or the email.
// swagger:model LoginRequest
type LoginRequest struct {
	// Login handle or email
	// required: true
	Identifier string `json:"user_id"`

	// Password
	// required: true
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	Success bool               `json:"success"`
	Token   string             `json:"token"`
	User    *models.UserPublic `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by login handle or email and returns a bearer token.
// @Tags users
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Bearer token returned"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Router /api/users/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Identifier, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Success: true,
			Token:   token,
			User:    user,
		})
	}
}
