package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/msokolov/bookshelf/internal/logger"
	"github.com/msokolov/bookshelf/internal/models"
)

const genreColumns = `id, name, created_at, updated_at`

// GenreReadRepository provides read access to the genres table.
type GenreReadRepository struct {
	db *sqlx.DB
}

// NewGenreReadRepository creates a new GenreReadRepository.
func NewGenreReadRepository(db *sqlx.DB) *GenreReadRepository {
	return &GenreReadRepository{db: db}
}

// List returns all genres ordered by name.
func (r *GenreReadRepository) List(ctx context.Context) ([]models.GenreDB, error) {
	const query = `SELECT ` + genreColumns + ` FROM genres ORDER BY name`

	genres := []models.GenreDB{}
	if err := r.db.SelectContext(ctx, &genres, query); err != nil {
		logger.Log.Errorw("genre list query failed", "err", err)
		return nil, err
	}
	return genres, nil
}

// GetByID returns the genre with the given id, or nil if absent.
func (r *GenreReadRepository) GetByID(ctx context.Context, id int64) (*models.GenreDB, error) {
	const query = `SELECT ` + genreColumns + ` FROM genres WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByName returns the genre with the given name, or nil if absent.
func (r *GenreReadRepository) GetByName(ctx context.Context, name string) (*models.GenreDB, error) {
	const query = `SELECT ` + genreColumns + ` FROM genres WHERE name = $1`
	return r.get(ctx, query, name)
}

// GetByNameExcluding returns the genre with the given name whose id differs
// from excludeID, or nil if absent. Used for duplicate checks on rename.
func (r *GenreReadRepository) GetByNameExcluding(ctx context.Context, name string, excludeID int64) (*models.GenreDB, error) {
	const query = `SELECT ` + genreColumns + ` FROM genres WHERE name = $1 AND id != $2`
	return r.get(ctx, query, name, excludeID)
}

// CountBooks returns the number of books referencing the genre.
func (r *GenreReadRepository) CountBooks(ctx context.Context, id int64) (int64, error) {
	const query = `SELECT COUNT(*) FROM books WHERE genre_id = $1`

	var count int64
	if err := r.db.GetContext(ctx, &count, query, id); err != nil {
		logger.Log.Errorw("genre book count query failed", "err", err)
		return 0, err
	}
	return count, nil
}

func (r *GenreReadRepository) get(ctx context.Context, query string, args ...any) (*models.GenreDB, error) {
	var genre models.GenreDB
	err := r.db.GetContext(ctx, &genre, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("genre query failed", "err", err)
		return nil, err
	}
	return &genre, nil
}

// GenreWriteRepository provides write access to the genres table.
type GenreWriteRepository struct {
	db *sqlx.DB
}

// NewGenreWriteRepository creates a new GenreWriteRepository.
func NewGenreWriteRepository(db *sqlx.DB) *GenreWriteRepository {
	return &GenreWriteRepository{db: db}
}

// Save inserts a new genre and returns the stored row.
func (r *GenreWriteRepository) Save(ctx context.Context, name string) (*models.GenreDB, error) {
	const query = `INSERT INTO genres (name) VALUES ($1) RETURNING ` + genreColumns

	var genre models.GenreDB
	if err := r.db.GetContext(ctx, &genre, query, name); err != nil {
		logger.Log.Errorw("failed to insert genre", "err", err)
		return nil, err
	}
	return &genre, nil
}

// Update renames a genre and returns the stored row.
func (r *GenreWriteRepository) Update(ctx context.Context, id int64, name string) (*models.GenreDB, error) {
	const query = `
		UPDATE genres SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + genreColumns

	var genre models.GenreDB
	if err := r.db.GetContext(ctx, &genre, query, name, id); err != nil {
		logger.Log.Errorw("failed to update genre", "err", err)
		return nil, err
	}
	return &genre, nil
}

// Delete removes a genre row.
func (r *GenreWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM genres WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Log.Errorw("failed to delete genre", "err", err)
	}
	return err
}
