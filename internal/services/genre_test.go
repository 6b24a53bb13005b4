package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/msokolov/bookshelf/internal/models"
	"github.com/msokolov/bookshelf/internal/services"
	"github.com/stretchr/testify/assert"
)

func newGenreService(ctrl *gomock.Controller) (
	*services.GenreService,
	*services.MockGenreReader,
	*services.MockGenreWriter,
	*services.MockGenreCache,
) {
	reader := services.NewMockGenreReader(ctrl)
	writer := services.NewMockGenreWriter(ctrl)
	cache := services.NewMockGenreCache(ctrl)
	svc := services.NewGenreService(reader, writer, cache)
	return svc, reader, writer, cache
}

func TestGenreService_List_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, cache := newGenreService(ctrl)
	cached := []models.GenreDB{{ID: 1, Name: "Fantasy"}}
	cache.EXPECT().Get(gomock.Any()).Return(cached, nil)

	genres, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, genres)
}

func TestGenreService_List_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, reader, _, cache := newGenreService(ctrl)
	stored := []models.GenreDB{{ID: 1, Name: "Fantasy"}, {ID: 2, Name: "Sci-Fi"}}
	cache.EXPECT().Get(gomock.Any()).Return(nil, nil)
	reader.EXPECT().List(gomock.Any()).Return(stored, nil)
	cache.EXPECT().Set(gomock.Any(), stored).Return(nil)

	genres, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, genres)
}

func TestGenreService_List_CacheFailureFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A broken cache must not break reads
	svc, reader, _, cache := newGenreService(ctrl)
	stored := []models.GenreDB{{ID: 1, Name: "Fantasy"}}
	cache.EXPECT().Get(gomock.Any()).Return(nil, errors.New("redis down"))
	reader.EXPECT().List(gomock.Any()).Return(stored, nil)
	cache.EXPECT().Set(gomock.Any(), stored).Return(errors.New("redis down"))

	genres, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, genres)
}

func TestGenreService_List_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockGenreReader(ctrl)
	writer := services.NewMockGenreWriter(ctrl)
	svc := services.NewGenreService(reader, writer, nil)

	stored := []models.GenreDB{{ID: 1, Name: "Fantasy"}}
	reader.EXPECT().List(gomock.Any()).Return(stored, nil)

	genres, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stored, genres)
}

func TestGenreService_Create(t *testing.T) {
	t.Run("success invalidates cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, writer, cache := newGenreService(ctrl)
		reader.EXPECT().GetByName(gomock.Any(), "Horror").Return(nil, nil)
		writer.EXPECT().Save(gomock.Any(), "Horror").Return(&models.GenreDB{ID: 3, Name: "Horror"}, nil)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		genre, err := svc.Create(context.Background(), "Horror")
		assert.NoError(t, err)
		assert.Equal(t, int64(3), genre.ID)
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, _, _ := newGenreService(ctrl)
		reader.EXPECT().GetByName(gomock.Any(), "Horror").Return(&models.GenreDB{ID: 3, Name: "Horror"}, nil)

		_, err := svc.Create(context.Background(), "Horror")
		assert.ErrorIs(t, err, services.ErrGenreExists)
	})
}

func TestGenreService_Update(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, writer, cache := newGenreService(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.GenreDB{ID: 3, Name: "Horror"}, nil)
		reader.EXPECT().GetByNameExcluding(gomock.Any(), "Gothic", int64(3)).Return(nil, nil)
		writer.EXPECT().Update(gomock.Any(), int64(3), "Gothic").Return(&models.GenreDB{ID: 3, Name: "Gothic"}, nil)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		genre, err := svc.Update(context.Background(), 3, "Gothic")
		assert.NoError(t, err)
		assert.Equal(t, "Gothic", genre.Name)
	})

	t.Run("missing genre", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, _, _ := newGenreService(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := svc.Update(context.Background(), 99, "Gothic")
		assert.ErrorIs(t, err, services.ErrGenreNotFound)
	})

	t.Run("name collides with another genre", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, _, _ := newGenreService(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.GenreDB{ID: 3, Name: "Horror"}, nil)
		reader.EXPECT().GetByNameExcluding(gomock.Any(), "Fantasy", int64(3)).Return(&models.GenreDB{ID: 1, Name: "Fantasy"}, nil)

		_, err := svc.Update(context.Background(), 3, "Fantasy")
		assert.ErrorIs(t, err, services.ErrGenreExists)
	})
}

func TestGenreService_Delete(t *testing.T) {
	t.Run("unreferenced genre", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, writer, cache := newGenreService(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.GenreDB{ID: 3, Name: "Horror"}, nil)
		reader.EXPECT().CountBooks(gomock.Any(), int64(3)).Return(int64(0), nil)
		writer.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil)

		genre, err := svc.Delete(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, "Horror", genre.Name)
	})

	t.Run("genre still referenced by books", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, _, _ := newGenreService(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), int64(3)).Return(&models.GenreDB{ID: 3, Name: "Horror"}, nil)
		reader.EXPECT().CountBooks(gomock.Any(), int64(3)).Return(int64(7), nil)

		_, err := svc.Delete(context.Background(), 3)
		assert.ErrorIs(t, err, services.ErrGenreInUse)
	})

	t.Run("missing genre", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, reader, _, _ := newGenreService(ctrl)
		reader.EXPECT().GetByID(gomock.Any(), int64(99)).Return(nil, nil)

		_, err := svc.Delete(context.Background(), 99)
		assert.ErrorIs(t, err, services.ErrGenreNotFound)
	})
}
