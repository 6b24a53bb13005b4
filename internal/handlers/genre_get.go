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

// GenreGetter defines the interface for fetching a single genre.
type GenreGetter interface {
	Get(ctx context.Context, id int64) (*models.GenreDB, error)
}

// GenreResponse represents a single-genre payload
// swagger:model GenreResponse
type GenreResponse struct {
	Success bool            `json:"success"`
	Data    *models.GenreDB `json:"data"`
}

// NewGenreGetHandler returns an HTTP handler for fetching one genre.
// @Summary Get a genre
// @Tags genres
// @Produce json
// @Param id path int true "Genre id"
// @Success 200 {object} handlers.GenreResponse "Genre"
// @Failure 404 {object} handlers.ErrorResponse "Genre not found"
// @Router /api/genres/{id} [get]
func NewGenreGetHandler(svc GenreGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Genre not found")
			return
		}

		genre, err := svc.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, services.ErrGenreNotFound) {
				writeError(w, http.StatusNotFound, "Genre not found")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, GenreResponse{
			Success: true,
			Data:    genre,
		})
	}
}
