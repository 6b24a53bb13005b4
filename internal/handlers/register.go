package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// Registerer defines the interface that the registration service must
// implement.
type Registerer interface {
	Register(ctx context.Context, email, login, password, confirm string) (string, *models.UserPublic, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	Email string `json:"email"`

	// Login handle
	// required: true
	Login string `json:"user_id"`

	// Password
	// required: true
	Password string `json:"password"`

	// Password confirmation, must equal password
	// required: true
	ConfirmPassword string `json:"confirm_password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	Success bool               `json:"success"`
	Token   string             `json:"token"`
	User    *models.UserPublic `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account with a unique email and login handle and returns a bearer token.
// @Tags users
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Registration request"
// @Success 201 {object} handlers.RegisterResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Password mismatch or duplicate email/login"
// @Router /api/users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Register(r.Context(), req.Email, req.Login, req.Password, req.ConfirmPassword)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPasswordMismatch):
				writeError(w, http.StatusBadRequest, "Passwords do not match")
			case errors.Is(err, services.ErrEmailExists):
				writeError(w, http.StatusBadRequest, "Email already exists")
			case errors.Is(err, services.ErrLoginExists):
				writeError(w, http.StatusBadRequest, "User ID already exists")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Success: true,
			Token:   token,
			User:    user,
		})
	}
}
