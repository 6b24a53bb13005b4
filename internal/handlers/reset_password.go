package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msokolov/bookshelf/internal/services"
)

// PasswordResetter defines the interface for consuming reset tokens.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, password string) error
}

// ResetPasswordRequest represents the JSON body for a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Plaintext reset token from forgot-password
	// required: true
	Token string `json:"token"`

	// New password
	// required: true
	Password string `json:"password"`
}

// ResetPasswordResponse represents a successful password reset
// swagger:model ResetPasswordResponse
type ResetPasswordResponse struct {
	Message string `json:"message"`
}

// NewResetPasswordHandler returns an HTTP handler for password resets.
// @Summary Reset password with a token
// @Description Consumes a one-time reset token and stores the new password. Tokens are single-use and expire.
// @Tags users
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Reset password request"
// @Success 200 {object} handlers.ResetPasswordResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired reset token"
// @Router /api/users/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
			if errors.Is(err, services.ErrResetTokenInvalid) {
				writeError(w, http.StatusBadRequest, "Invalid or expired reset token")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ResetPasswordResponse{
			Message: "Password reset successfully",
		})
	}
}
