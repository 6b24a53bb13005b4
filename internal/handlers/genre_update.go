package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// GenreUpdater defines the interface for renaming a genre.
type GenreUpdater interface {
	Update(ctx context.Context, id int64, name string) (*models.GenreDB, error)
}

// NewGenreUpdateHandler returns an HTTP handler for genre renames.
// @Summary Rename a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param id path int true "Genre id"
// @Param genreRequest body handlers.GenreRequest true "New genre name"
// @Success 200 {object} handlers.GenreResponse "Genre renamed"
// @Failure 400 {object} handlers.ErrorResponse "Genre name already exists"
// @Failure 404 {object} handlers.ErrorResponse "Genre not found"
// @Router /api/genres/{id} [put]
// @Security BearerAuth
func NewGenreUpdateHandler(svc GenreUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusNotFound, "Genre not found")
			return
		}

		var req GenreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			writeError(w, http.StatusBadRequest, "Genre name is required")
			return
		}

		genre, err := svc.Update(r.Context(), id, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrGenreNotFound):
				writeError(w, http.StatusNotFound, "Genre not found")
			case errors.Is(err, services.ErrGenreExists):
				writeError(w, http.StatusBadRequest, "Genre name already exists")
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
