package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msokolov/bookshelf/internal/services"
)

// PasswordForgetter defines the interface for issuing password reset tokens.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) (string, error)
}

// ForgotPasswordRequest represents the JSON body for a reset-token request
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Account email
	// required: true
	Email string `json:"email"`
}

// ForgotPasswordResponse carries the plaintext reset token back to the
// caller; delivery (e.g. email) is an external concern.
// swagger:model ForgotPasswordResponse
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}

// NewForgotPasswordHandler returns an HTTP handler for reset-token issuance.
// @Summary Request a password reset token
// @Description Issues a one-time, time-limited reset token for the account with the given email.
// @Tags users
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Forgot password request"
// @Success 200 {object} handlers.ForgotPasswordResponse "Reset token generated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/users/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := svc.ForgotPassword(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ForgotPasswordResponse{
			Message:    "Password reset token generated",
			ResetToken: token,
		})
	}
}
