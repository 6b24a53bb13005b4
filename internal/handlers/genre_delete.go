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

// GenreDeleter defines the interface for deleting a genre.
type GenreDeleter interface {
	Delete(ctx context.Context, id int64) (*models.GenreDB, error)
}

// NewGenreDeleteHandler returns an HTTP handler for genre deletion. A genre
// that any book still references cannot be deleted.
// @Summary Delete a genre
// @Tags genres
// @Produce json
// @Param id path int true "Genre id"
// @Success 200 {object} handlers.GenreResponse "Genre deleted"
// @Failure 400 {object} handlers.ErrorResponse "Genre has associated books"
// @Failure 404 {object} handlers.ErrorResponse "Genre not found"
// @Router /api/genres/{id} [delete]
// @Security BearerAuth
func NewGenreDeleteHandler(svc GenreDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Genre not found")
			return
		}

		genre, err := svc.Delete(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGenreNotFound):
				writeError(w, http.StatusNotFound, "Genre not found")
			case errors.Is(err, services.ErrGenreInUse):
				writeError(w, http.StatusBadRequest, "Cannot delete genre that has associated books")
			default:
				writeInternalError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, GenreResponse{
			Success: true,
			Data:    genre,
		})
	}
}
