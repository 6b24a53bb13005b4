package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msokolov/bookshelf/internal/images"
	"github.com/msokolov/bookshelf/internal/middlewares"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// AvatarUpdater defines the interface for updating an avatar.
type AvatarUpdater interface {
	UpdateAvatar(ctx context.Context, userID int64, avatar string) (*models.UserPublic, error)
}

// AvatarRequest represents the JSON body for an avatar update. The value is
// either an http(s) image URL or a base64 data URI.
// swagger:model AvatarRequest
type AvatarRequest struct {
	// Image URL or base64 data URI
	// required: true
	AvatarURL string `json:"avatar_url"`
}

// AvatarResponse represents a successful avatar update
// swagger:model AvatarResponse
type AvatarResponse struct {
	Success bool               `json:"success"`
	Data    *models.UserPublic `json:"data"`
}

// NewAvatarHandler returns an HTTP handler for avatar updates.
// @Summary Update avatar
// @Description Stores an avatar as an image URL or an inline base64 payload (max 10 MiB decoded).
// @Tags users
// @Accept json
// @Produce json
// @Param avatarRequest body handlers.AvatarRequest true "Avatar request"
// @Success 200 {object} handlers.AvatarResponse "Avatar updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid image format"
// @Failure 413 {object} handlers.ErrorResponse "Image too large"
// @Router /api/users/avatar [put]
// @Security BearerAuth
func NewAvatarHandler(svc AvatarUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		var req AvatarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.AvatarURL == "" {
			writeError(w, http.StatusBadRequest, "Avatar URL is required")
			return
		}

		user, err := svc.UpdateAvatar(r.Context(), userID, req.AvatarURL)
		if err != nil {
			switch {
			case errors.Is(err, images.ErrInvalidFormat):
				writeError(w, http.StatusBadRequest, "Invalid avatar format")
			case errors.Is(err, images.ErrTooLarge):
				writeError(w, http.StatusRequestEntityTooLarge, "Image too large")
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, AvatarResponse{
			Success: true,
			Data:    user,
		})
	}
}
