package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
)

// BookLister defines the interface for the paginated book listing.
type BookLister interface {
	List(ctx context.Context, f models.BookFilter) ([]models.BookDB, int64, error)
}

// BookListResponse carries one page of books and the total matching count.
// swagger:model BookListResponse
type BookListResponse struct {
	Success bool            `json:"success"`
	Count   int64           `json:"count"`
	Data    []models.BookDB `json:"data"`
}

// NewBookListHandler returns an HTTP handler for the book listing.
// @Summary List books
// @Description Returns a filtered, sorted page of books plus the total matching row count.
// @Tags books
// @Produce json
// @Param search query string false "Case-insensitive substring over title and author"
// @Param author query string false "Case-insensitive substring over author"
// @Param genre query string false "Case-insensitive substring over genre name"
// @Param user_id query int false "Owning user id"
// @Param sortBy query string false "Sort column" default(title)
// @Param sortOrder query string false "asc or desc" default(asc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} handlers.BookListResponse "Books"
// @Failure 400 {object} handlers.ErrorResponse "Invalid sort column or direction"
// @Router /api/books [get]
func NewBookListHandler(svc BookLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := models.BookFilter{
			Search:    q.Get("search"),
			Author:    q.Get("author"),
			Genre:     q.Get("genre"),
			SortBy:    q.Get("sortBy"),
			SortOrder: q.Get("sortOrder"),
		}

		if v := q.Get("user_id"); v != "" {
			userID, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid user_id")
				return
			}
			filter.UserID = &userID
		}
		if v := q.Get("page"); v != "" {
			page, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid page")
				return
			}
			filter.Page = page
		}
		if v := q.Get("limit"); v != "" {
			limit, err := strconv.Atoi(v)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid limit")
				return
			}
			filter.Limit = limit
		}

		books, count, err := svc.List(r.Context(), filter)
		if err != nil {
			if errors.Is(err, services.ErrInvalidSort) {
				writeError(w, http.StatusBadRequest, "Invalid sort column or direction")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, BookListResponse{
			Success: true,
			Count:   count,
			Data:    books,
		})
	}
}
