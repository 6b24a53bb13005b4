package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/msokolov/bookshelf/internal/middlewares"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestBookCreateHandler_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRequest := func(body BookRequest) *http.Request {
		bodyBytes, _ := json.Marshal(body)
		req := httptest.NewRequest(http.MethodPost, "/api/books", bytes.NewBuffer(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
		return req.WithContext(middlewares.WithUserID(req.Context(), 5))
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, userID int64, in models.BookInput) (*models.BookDB, error) {
				assert.Equal(t, "Dune", in.Title)
				assert.Equal(t, "Frank Herbert", in.Author)
				assert.Equal(t, int64(3), in.GenreID)
				return &models.BookDB{ID: 42, Title: in.Title, UserID: userID}, nil
			})

		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, newRequest(BookRequest{
			Title:   "Dune",
			Author:  "Frank Herbert",
			GenreID: 3,
		}))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp BookResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(42), resp.Data.ID)
	})

	t.Run("invalid genre", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(5), gomock.Any()).
			Return(nil, services.ErrInvalidGenre)

		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, newRequest(BookRequest{
			Title:   "Dune",
			Author:  "Frank Herbert",
			GenreID: 99,
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing required fields", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)

		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, newRequest(BookRequest{Title: "Dune"}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad published date", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)
		date := "08/28/1965"

		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, newRequest(BookRequest{
			Title:         "Dune",
			Author:        "Frank Herbert",
			GenreID:       3,
			PublishedDate: &date,
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("invalid cover url", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)
		cover := "https://example.com/cover.svg"

		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, newRequest(BookRequest{
			Title:      "Dune",
			Author:     "Frank Herbert",
			GenreID:    3,
			CoverImage: &cover,
		}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("no authenticated user", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/api/books", strings.NewReader("{}"))
		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestBookCreateHandler_Multipart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newMultipartRequest := func(t *testing.T, fields map[string]string, fileName, fileType string, fileData []byte) *http.Request {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		for k, v := range fields {
			assert.NoError(t, mw.WriteField(k, v))
		}
		if fileName != "" {
			header := make(textproto.MIMEHeader)
			header.Set("Content-Disposition", `form-data; name="cover_image"; filename="`+fileName+`"`)
			header.Set("Content-Type", fileType)
			part, err := mw.CreatePart(header)
			assert.NoError(t, err)
			_, err = part.Write(fileData)
			assert.NoError(t, err)
		}
		assert.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/books", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req.WithContext(middlewares.WithUserID(req.Context(), 5))
	}

	fields := map[string]string{
		"title":    "Dune",
		"author":   "Frank Herbert",
		"genre_id": "3",
		"price":    "9.99",
	}

	t.Run("with cover upload", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, in models.BookInput) (*models.BookDB, error) {
				assert.Equal(t, "Dune", in.Title)
				assert.NotNil(t, in.Price)
				assert.Equal(t, 9.99, *in.Price)
				// The upload is re-encoded as a data URI before storage
				assert.NotNil(t, in.CoverImage)
				assert.True(t, strings.HasPrefix(*in.CoverImage, "data:image/jpeg;base64,"))
				return &models.BookDB{ID: 42}, nil
			})

		req := newMultipartRequest(t, fields, "cover.jpg", "image/jpeg", []byte("jpeg bytes"))
		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("without cover", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, in models.BookInput) (*models.BookDB, error) {
				assert.Nil(t, in.CoverImage)
				return &models.BookDB{ID: 43}, nil
			})

		req := newMultipartRequest(t, fields, "", "", nil)
		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("unsupported upload type", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)

		req := newMultipartRequest(t, fields, "cover.txt", "text/plain", []byte("plain text"))
		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad genre_id field", func(t *testing.T) {
		mockSvc := NewMockBookCreator(ctrl)

		bad := map[string]string{"title": "Dune", "author": "Frank Herbert", "genre_id": "abc"}
		req := newMultipartRequest(t, bad, "", "", nil)
		rr := httptest.NewRecorder()
		NewBookCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
