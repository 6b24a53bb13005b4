package services

import (
	"context"
	"errors"

	"github.com/msokolov/bookshelf/internal/logger"
	"github.com/msokolov/bookshelf/internal/models"
)

// Error variables
var (
	ErrGenreNotFound = errors.New("genre not found")
	ErrGenreExists   = errors.New("genre name already exists")
	ErrGenreInUse    = errors.New("genre has associated books")
)

// GenreReader defines read operations for genres.
type GenreReader interface {
	List(ctx context.Context) ([]models.GenreDB, error)
	GetByID(ctx context.Context, id int64) (*models.GenreDB, error)
	GetByName(ctx context.Context, name string) (*models.GenreDB, error)
	GetByNameExcluding(ctx context.Context, name string, excludeID int64) (*models.GenreDB, error)
	CountBooks(ctx context.Context, id int64) (int64, error)
}

// GenreWriter defines write operations for genres.
type GenreWriter interface {
	Save(ctx context.Context, name string) (*models.GenreDB, error)
	Update(ctx context.Context, id int64, name string) (*models.GenreDB, error)
	Delete(ctx context.Context, id int64) error
}

// GenreCache caches the genre list. All methods are best-effort from the
// service's point of view.
type GenreCache interface {
	Get(ctx context.Context) ([]models.GenreDB, error)
	Set(ctx context.Context, genres []models.GenreDB) error
	Invalidate(ctx context.Context) error
}

// GenreService handles genre reference data.
type GenreService struct {
	reader GenreReader
	writer GenreWriter
	cache  GenreCache
}

// NewGenreService creates a new GenreService. cache may be nil to disable
// caching.
func NewGenreService(reader GenreReader, writer GenreWriter, cache GenreCache) *GenreService {
	return &GenreService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// List returns all genres ordered by name, served from cache when possible.
func (s *GenreService) List(ctx context.Context) ([]models.GenreDB, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			logger.Log.Errorw("genre cache read failed", "err", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	genres, err := s.reader.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, genres); err != nil {
			logger.Log.Errorw("genre cache write failed", "err", err)
		}
	}

	return genres, nil
}

// Get returns a single genre.
func (s *GenreService) Get(ctx context.Context, id int64) (*models.GenreDB, error) {
	genre, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}
	return genre, nil
}

// Create inserts a genre with a unique name.
func (s *GenreService) Create(ctx context.Context, name string) (*models.GenreDB, error) {
	existing, err := s.reader.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrGenreExists
	}

	genre, err := s.writer.Save(ctx, name)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return genre, nil
}

// Update renames a genre. The new name must not collide with any genre other
// than the one being renamed.
func (s *GenreService) Update(ctx context.Context, id int64, name string) (*models.GenreDB, error) {
	existing, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrGenreNotFound
	}

	conflict, err := s.reader.GetByNameExcluding(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, ErrGenreExists
	}

	genre, err := s.writer.Update(ctx, id, name)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return genre, nil
}

// Delete removes a genre that no book references.
func (s *GenreService) Delete(ctx context.Context, id int64) (*models.GenreDB, error) {
	genre, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	count, err := s.reader.CountBooks(ctx, id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrGenreInUse
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return genre, nil
}

func (s *GenreService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("genre cache invalidation failed", "err", err)
	}
}
