package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/msokolov/bookshelf/internal/middlewares"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// ProfileGetter defines the interface for fetching the authenticated user's
// profile.
type ProfileGetter interface {
	Profile(ctx context.Context, userID int64) (*models.UserPublic, []models.BookDB, error)
}

// ProfileData is the profile payload: the public user fields plus the user's
// books, newest first.
// swagger:model ProfileData
type ProfileData struct {
	*models.UserPublic
	Books []models.BookDB `json:"books"`
}

// ProfileResponse represents a successful profile fetch
// swagger:model ProfileResponse
type ProfileResponse struct {
	Success bool         `json:"success"`
	Data    *ProfileData `json:"data"`
}

// NewProfileHandler returns an HTTP handler for the profile view.
// @Summary Get own profile
// @Description Returns the authenticated user's public fields and owned books.
// @Tags users
// @Produce json
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/users/profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		user, books, err := svc.Profile(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				writeError(w, http.StatusNotFound, "User not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{
			Success: true,
			Data: &ProfileData{
				UserPublic: user,
				Books:      books,
			},
		})
	}
}
