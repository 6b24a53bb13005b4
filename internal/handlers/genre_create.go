package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// GenreCreator defines the interface for creating a genre.
type GenreCreator interface {
	Create(ctx context.Context, name string) (*models.GenreDB, error)
}

// GenreRequest represents the JSON body for creating or renaming a genre
// swagger:model GenreRequest
type GenreRequest struct {
	// Genre name, unique
	// required: true
	Name string `json:"name"`
}

// NewGenreCreateHandler returns an HTTP handler for genre creation.
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Param genreRequest body handlers.GenreRequest true "Genre name"
// @Success 201 {object} handlers.GenreResponse "Genre created"
// @Failure 400 {object} handlers.ErrorResponse "Genre already exists"
// @Router /api/genres [post]
// @Security BearerAuth
func NewGenreCreateHandler(svc GenreCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenreRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			writeError(w, http.StatusBadRequest, "Genre name is required")
			return
		}

		genre, err := svc.Create(r.Context(), req.Name)
		if err != nil {
			if errors.Is(err, services.ErrGenreExists) {
				writeError(w, http.StatusBadRequest, "Genre already exists")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, GenreResponse{
			Success: true,
			Data:    genre,
		})
	}
}
