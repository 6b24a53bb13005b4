package handlers

import (
	"context"
	"net/http"

	"github.com/msokolov/bookshelf/internal/models"
)

// GenreLister defines the interface for listing genres.
type GenreLister interface {
	List(ctx context.Context) ([]models.GenreDB, error)
}

// NewGenreListHandler returns an HTTP handler for listing all genres,
// ordered by name. The response is a bare array for front-end compatibility.
// @Summary List genres
// @Description Returns all genres ordered by name.
// @Tags genres
// @Produce json
// @Success 200 {array} models.GenreDB "Genres"
// @Router /api/genres [get]
func NewGenreListHandler(svc GenreLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := svc.List(r.Context())
		if err != nil {
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, genres)
	}
}
