package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msokolov/bookshelf/internal/middlewares"
	"github.com/msokolov/bookshelf/internal/services"
)

// PasswordChanger defines the interface for changing a password.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID int64, current, next string) error
}

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	CurrentPassword string `json:"current_password"`

	// New password
	// required: true
	NewPassword string `json:"new_password"`
}

// ChangePasswordResponse represents a successful password change
// swagger:model ChangePasswordResponse
type ChangePasswordResponse struct {
	Message string `json:"message"`
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change password
// @Description Verifies the current password and stores the new one.
// @Tags users
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Change password request"
// @Success 200 {object} handlers.ChangePasswordResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Missing fields"
// @Failure 401 {object} handlers.ErrorResponse "Current password is incorrect"
// @Router /api/users/change-password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.CurrentPassword == "" || req.NewPassword == "" {
			writeError(w, http.StatusBadRequest, "Current password and new password are required")
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Current password is incorrect")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, ChangePasswordResponse{
			Message: "Password updated successfully",
		})
	}
}
