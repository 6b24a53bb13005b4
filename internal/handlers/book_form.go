package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/msokolov/bookshelf/internal/images"
	"github.com/msokolov/bookshelf/internal/models"
)

// errInvalidBookBody marks malformed book payloads, mapped to 400.
var errInvalidBookBody = errors.New("invalid book payload")

const publishedDateLayout = "2006-01-02"

// BookRequest represents the JSON body for creating or updating a book
// swagger:model BookRequest
type BookRequest struct {
	// Title
	// required: true
	Title string `json:"title"`

	// Author
	// required: true
	Author string `json:"author"`

	// Optional ISBN
	ISBN *string `json:"isbn"`

	// Optional publication date, YYYY-MM-DD
	PublishedDate *string `json:"published_date"`

	// Genre id, must reference an existing genre
	// required: true
	GenreID int64 `json:"genre_id"`

	// Optional free-text description
	Description *string `json:"description"`

	// Optional price
	Price *float64 `json:"price"`

	// Optional cover image: http(s) image URL or base64 data URI
	CoverImage *string `json:"cover_image"`
}

// parseBookInput reads a book payload from either a JSON body or a multipart
// form with an optional cover_image file part. Both surfaces converge on the
// same BookInput shape: uploaded files are validated and re-encoded as data
// URIs before they reach the service.
func parseBookInput(r *http.Request) (models.BookInput, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return parseBookMultipart(r)
	}
	return parseBookJSON(r)
}

func parseBookJSON(r *http.Request) (models.BookInput, error) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return models.BookInput{}, errInvalidBookBody
	}

	in := models.BookInput{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBN,
		GenreID:     req.GenreID,
		Description: req.Description,
		Price:       req.Price,
	}

	if req.PublishedDate != nil && *req.PublishedDate != "" {
		date, err := time.Parse(publishedDateLayout, *req.PublishedDate)
		if err != nil {
			return models.BookInput{}, errInvalidBookBody
		}
		in.PublishedDate = &date
	}

	if req.CoverImage != nil && *req.CoverImage != "" {
		if err := images.Validate(*req.CoverImage); err != nil {
			return models.BookInput{}, err
		}
		in.CoverImage = req.CoverImage
	}

	return in, validateBookInput(in)
}

func parseBookMultipart(r *http.Request) (models.BookInput, error) {
	if err := r.ParseMultipartForm(images.MaxUploadSize); err != nil {
		return models.BookInput{}, errInvalidBookBody
	}

	in := models.BookInput{
		Title:  r.FormValue("title"),
		Author: r.FormValue("author"),
	}

	genreID, err := strconv.ParseInt(r.FormValue("genre_id"), 10, 64)
	if err != nil {
		return models.BookInput{}, errInvalidBookBody
	}
	in.GenreID = genreID

	if v := r.FormValue("isbn"); v != "" {
		in.ISBN = &v
	}
	if v := r.FormValue("description"); v != "" {
		in.Description = &v
	}
	if v := r.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return models.BookInput{}, errInvalidBookBody
		}
		in.Price = &price
	}
	if v := r.FormValue("published_date"); v != "" {
		date, err := time.Parse(publishedDateLayout, v)
		if err != nil {
			return models.BookInput{}, errInvalidBookBody
		}
		in.PublishedDate = &date
	}

	file, header, err := r.FormFile("cover_image")
	if err == nil {
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, images.MaxUploadSize+1))
		if err != nil {
			return models.BookInput{}, errInvalidBookBody
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = http.DetectContentType(data)
		}

		cover, err := images.EncodeUpload(data, contentType)
		if err != nil {
			return models.BookInput{}, err
		}
		in.CoverImage = &cover
	} else if !errors.Is(err, http.ErrMissingFile) {
		return models.BookInput{}, errInvalidBookBody
	}

	return in, validateBookInput(in)
}

func validateBookInput(in models.BookInput) error {
	if in.Title == "" || in.Author == "" || in.GenreID == 0 {
		return errInvalidBookBody
	}
	return nil
}
