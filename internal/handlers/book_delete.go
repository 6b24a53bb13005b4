package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/msokolov/bookshelf/internal/middlewares"
	"github.com/msokolov/bookshelf/internal/services"
)

// BookDeleter defines the interface for deleting a book.
type BookDeleter interface {
	Delete(ctx context.Context, userID, id int64) error
}

// BookDeleteResponse represents a successful deletion
// swagger:model BookDeleteResponse
type BookDeleteResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

// NewBookDeleteHandler returns an HTTP handler for book deletion. Only the
// owner may delete.
// @Summary Delete a book
// @Description Deletes a book owned by the authenticated user.
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} handlers.BookDeleteResponse "Book deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /api/books/{id} [delete]
// @Security BearerAuth
func NewBookDeleteHandler(svc BookDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Book not found")
			return
		}

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, "Book not found")
			case errors.Is(err, services.ErrNotOwner):
				writeError(w, http.StatusForbidden, "Not authorized to delete this book")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, BookDeleteResponse{
			Success: true,
			Data:    map[string]any{},
		})
	}
}
