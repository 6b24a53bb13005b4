package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/msokolov/bookshelf/internal/images"
	"github.com/msokolov/bookshelf/internal/middlewares"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// BookCreator defines the interface for creating a book.
type BookCreator interface {
	Create(ctx context.Context, userID int64, in models.BookInput) (*models.BookDB, error)
}

// NewBookCreateHandler returns an HTTP handler for book creation. The body
// may be JSON or a multipart form with an optional cover_image file.
// @Summary Create a book
// @Description Creates a book owned by the authenticated user. Accepts JSON or multipart/form-data.
// @Tags books
// @Accept json
// @Accept mpfd
// @Produce json
// @Param bookRequest body handlers.BookRequest true "Book fields"
// @Success 201 {object} handlers.BookResponse "Book created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid payload or genre"
// @Failure 413 {object} handlers.ErrorResponse "Cover image too large"
// @Router /api/books [post]
// @Security BearerAuth
func NewBookCreateHandler(svc BookCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.UserIDFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "User not authenticated")
			return
		}

		in, err := parseBookInput(r)
		if err != nil {
			writeBookInputError(w, err)
			return
		}

		book, err := svc.Create(r.Context(), userID, in)
		if err != nil {
			if errors.Is(err, services.ErrInvalidGenre) {
				writeError(w, http.StatusBadRequest, "Invalid genre ID")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, BookResponse{
			Success: true,
			Data:    book,
		})
	}
}

// writeBookInputError maps payload parsing failures to HTTP statuses.
func writeBookInputError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, images.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "Cover image too large")
	case errors.Is(err, images.ErrInvalidFormat):
		writeError(w, http.StatusBadRequest, "Invalid cover image format")
	default:
		writeError(w, http.StatusBadRequest, "Invalid book payload")
	}
}
