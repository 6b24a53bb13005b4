package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/msokolov/bookshelf/internal/middlewares"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// BookUpdater defines the interface for updating a book.
type BookUpdater interface {
	Update(ctx context.Context, userID, id int64, in models.BookInput) (*models.BookDB, error)
}

// NewBookUpdateHandler returns an HTTP handler for book updates. Only the
// owner may update; the stored cover is kept unless a new one is supplied.
// @Summary Update a book
// @Description Replaces a book's fields. Accepts JSON or multipart/form-data.
// @Tags books
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path int true "Book id"
// @Param bookRequest body handlers.BookRequest true "Book fields"
// @Success 200 {object} handlers.BookResponse "Book updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload or genre"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /api/books/{id} [put]
// @Security BearerAuth
func NewBookUpdateHandler(svc BookUpdater) http.HandlerFunc {
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

		in, err := parseBookInput(r)
		if err != nil {
			writeBookInputError(w, err)
			return
		}

		book, err := svc.Update(r.Context(), userID, id, in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrBookNotFound):
				writeError(w, http.StatusNotFound, "Book not found")
			case errors.Is(err, services.ErrNotOwner):
				writeError(w, http.StatusForbidden, "Not authorized to update this book")
			case errors.Is(err, services.ErrInvalidGenre):
				writeError(w, http.StatusBadRequest, "Invalid genre ID")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, BookResponse{
			Success: true,
			Data:    book,
		})
	}
}
