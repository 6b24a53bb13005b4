package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// BookGetter defines the interface for fetching a single book.
type BookGetter interface {
	Get(ctx context.Context, id int64) (*models.BookDB, error)
}

// BookResponse represents a single-book payload
// swagger:model BookResponse
type BookResponse struct {
	Success bool           `json:"success"`
	Data    *models.BookDB `json:"data"`
}

// NewBookGetHandler returns an HTTP handler for fetching one book.
// @Summary Get a book
// @Description Returns a book joined with its genre name and owner handle.
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} handlers.BookResponse "Book"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /api/books/{id} [get]
func NewBookGetHandler(svc BookGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Book not found")
			return
		}

		book, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrBookNotFound) {
				writeError(w, http.StatusNotFound, "Book not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BookResponse{
			Success: true,
			Data:    book,
		})
	}
}
