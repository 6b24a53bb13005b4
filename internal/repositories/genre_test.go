package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newGenreMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func genreRows(names ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"})
	now := time.Now()
	for i, name := range names {
		rows.AddRow(int64(i+1), name, now, now)
	}
	return rows
}

func TestGenreReadRepository_List(t *testing.T) {
	db, mock := newGenreMockDB(t)
	repo := NewGenreReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, created_at, updated_at FROM genres ORDER BY name`)).
		WillReturnRows(genreRows("Fantasy", "Horror", "Sci-Fi"))

	genres, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, genres, 3)
	assert.Equal(t, "Fantasy", genres[0].Name)
	assert.Equal(t, "Sci-Fi", genres[2].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreReadRepository_GetByID(t *testing.T) {
	db, mock := newGenreMockDB(t)
	repo := NewGenreReadRepository(db)

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, created_at, updated_at FROM genres WHERE id = $1`)).
			WithArgs(int64(1)).
			WillReturnRows(genreRows("Fantasy"))

		genre, err := repo.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.NotNil(t, genre)
		assert.Equal(t, "Fantasy", genre.Name)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, created_at, updated_at FROM genres WHERE id = $1`)).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		genre, err := repo.GetByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, genre)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreReadRepository_GetByName(t *testing.T) {
	db, mock := newGenreMockDB(t)
	repo := NewGenreReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, created_at, updated_at FROM genres WHERE name = $1`)).
		WithArgs("Fantasy").
		WillReturnRows(genreRows("Fantasy"))

	genre, err := repo.GetByName(context.Background(), "Fantasy")
	assert.NoError(t, err)
	assert.NotNil(t, genre)
	assert.Equal(t, int64(1), genre.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreReadRepository_GetByNameExcluding(t *testing.T) {
	db, mock := newGenreMockDB(t)
	repo := NewGenreReadRepository(db)

	t.Run("OtherRowHoldsName", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, created_at, updated_at FROM genres WHERE name = $1 AND id != $2`)).
			WithArgs("Fantasy", int64(2)).
			WillReturnRows(genreRows("Fantasy"))

		genre, err := repo.GetByNameExcluding(context.Background(), "Fantasy", 2)
		assert.NoError(t, err)
		assert.NotNil(t, genre)
	})

	t.Run("OnlySelfHoldsName", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, created_at, updated_at FROM genres WHERE name = $1 AND id != $2`)).
			WithArgs("Fantasy", int64(1)).
			WillReturnError(sql.ErrNoRows)

		genre, err := repo.GetByNameExcluding(context.Background(), "Fantasy", 1)
		assert.NoError(t, err)
		assert.Nil(t, genre)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreReadRepository_CountBooks(t *testing.T) {
	db, mock := newGenreMockDB(t)
	repo := NewGenreReadRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM books WHERE genre_id = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	count, err := repo.CountBooks(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreWriteRepository_Save(t *testing.T) {
	db, mock := newGenreMockDB(t)
	repo := NewGenreWriteRepository(db)

	t.Run("Inserted", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO genres (name) VALUES ($1) RETURNING id, name, created_at, updated_at`)).
			WithArgs("Horror").
			WillReturnRows(genreRows("Horror"))

		genre, err := repo.Save(context.Background(), "Horror")
		assert.NoError(t, err)
		assert.NotNil(t, genre)
		assert.Equal(t, "Horror", genre.Name)
	})

	t.Run("UniqueViolation", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO genres (name) VALUES ($1) RETURNING id, name, created_at, updated_at`)).
			WithArgs("Horror").
			WillReturnError(sql.ErrConnDone)

		genre, err := repo.Save(context.Background(), "Horror")
		assert.Error(t, err)
		assert.Nil(t, genre)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreWriteRepository_Update(t *testing.T) {
	db, mock := newGenreMockDB(t)
	repo := NewGenreWriteRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE genres SET name = $1, updated_at = NOW()`)).
		WithArgs("Gothic", int64(3)).
		WillReturnRows(genreRows("Gothic"))

	genre, err := repo.Update(context.Background(), 3, "Gothic")
	assert.NoError(t, err)
	assert.NotNil(t, genre)
	assert.Equal(t, "Gothic", genre.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenreWriteRepository_Delete(t *testing.T) {
	db, mock := newGenreMockDB(t)
	repo := NewGenreWriteRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM genres WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 3)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
