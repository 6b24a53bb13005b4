package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGenreListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockGenreLister(ctrl)
	mockSvc.EXPECT().
		List(gomock.Any()).
		Return([]models.GenreDB{{ID: 1, Name: "Fantasy"}, {ID: 2, Name: "Sci-Fi"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/genres", nil)
	rr := httptest.NewRecorder()
	NewGenreListHandler(mockSvc)(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	// The listing is a bare array
	var genres []models.GenreDB
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &genres))
	assert.Len(t, genres, 2)
	assert.Equal(t, "Fantasy", genres[0].Name)
}

func TestGenreGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("found", func(t *testing.T) {
		mockSvc := NewMockGenreGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), int64(2)).
			Return(&models.GenreDB{ID: 2, Name: "Sci-Fi"}, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/genres/2", nil), "id", "2")
		rr := httptest.NewRecorder()
		NewGenreGetHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp GenreResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Sci-Fi", resp.Data.Name)
	})

	t.Run("missing", func(t *testing.T) {
		mockSvc := NewMockGenreGetter(ctrl)
		mockSvc.EXPECT().
			Get(gomock.Any(), int64(99)).
			Return(nil, services.ErrGenreNotFound)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/genres/99", nil), "id", "99")
		rr := httptest.NewRecorder()
		NewGenreGetHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		mockSvc := NewMockGenreGetter(ctrl)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/genres/abc", nil), "id", "abc")
		rr := httptest.NewRecorder()
		NewGenreGetHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGenreCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockGenreCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), "Horror").
			Return(&models.GenreDB{ID: 3, Name: "Horror"}, nil)

		bodyBytes, _ := json.Marshal(GenreRequest{Name: "Horror"})
		req := httptest.NewRequest(http.MethodPost, "/api/genres", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewGenreCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mockSvc := NewMockGenreCreator(ctrl)
		mockSvc.EXPECT().
			Create(gomock.Any(), "Horror").
			Return(nil, services.ErrGenreExists)

		bodyBytes, _ := json.Marshal(GenreRequest{Name: "Horror"})
		req := httptest.NewRequest(http.MethodPost, "/api/genres", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewGenreCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty name", func(t *testing.T) {
		mockSvc := NewMockGenreCreator(ctrl)

		bodyBytes, _ := json.Marshal(GenreRequest{})
		req := httptest.NewRequest(http.MethodPost, "/api/genres", bytes.NewBuffer(bodyBytes))
		rr := httptest.NewRecorder()
		NewGenreCreateHandler(mockSvc)(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGenreUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRequest := func(id, name string) *http.Request {
		bodyBytes, _ := json.Marshal(GenreRequest{Name: name})
		req := httptest.NewRequest(http.MethodPut, "/api/genres/"+id, bytes.NewBuffer(bodyBytes))
		return withURLParam(req, "id", id)
	}

	t.Run("rename", func(t *testing.T) {
		mockSvc := NewMockGenreUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), int64(3), "Gothic").
			Return(&models.GenreDB{ID: 3, Name: "Gothic"}, nil)

		rr := httptest.NewRecorder()
		NewGenreUpdateHandler(mockSvc)(rr, newRequest("3", "Gothic"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing genre", func(t *testing.T) {
		mockSvc := NewMockGenreUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), int64(99), "Gothic").
			Return(nil, services.ErrGenreNotFound)

		rr := httptest.NewRecorder()
		NewGenreUpdateHandler(mockSvc)(rr, newRequest("99", "Gothic"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("name collision", func(t *testing.T) {
		mockSvc := NewMockGenreUpdater(ctrl)
		mockSvc.EXPECT().
			Update(gomock.Any(), int64(3), "Fantasy").
			Return(nil, services.ErrGenreExists)

		rr := httptest.NewRecorder()
		NewGenreUpdateHandler(mockSvc)(rr, newRequest("3", "Fantasy"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGenreDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	newRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodDelete, "/api/genres/"+id, nil)
		return withURLParam(req, "id", id)
	}

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockGenreDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), int64(3)).
			Return(&models.GenreDB{ID: 3, Name: "Horror"}, nil)

		rr := httptest.NewRecorder()
		NewGenreDeleteHandler(mockSvc)(rr, newRequest("3"))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("genre in use", func(t *testing.T) {
		mockSvc := NewMockGenreDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), int64(3)).
			Return(nil, services.ErrGenreInUse)

		rr := httptest.NewRecorder()
		NewGenreDeleteHandler(mockSvc)(rr, newRequest("3"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing genre", func(t *testing.T) {
		mockSvc := NewMockGenreDeleter(ctrl)
		mockSvc.EXPECT().
			Delete(gomock.Any(), int64(99)).
			Return(nil, services.ErrGenreNotFound)

		rr := httptest.NewRecorder()
		NewGenreDeleteHandler(mockSvc)(rr, newRequest("99"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
