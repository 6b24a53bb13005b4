package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/msokolov/bookshelf/internal/logger"
	"github.com/msokolov/bookshelf/internal/models"
)

// sortColumns is the allow-list of book columns accepted for ORDER BY. Sort
// input never reaches the query text without passing through this map.
var sortColumns = map[string]string{
	"title":          "b.title",
	"author":         "b.author",
	"isbn":           "b.isbn",
	"published_date": "b.published_date",
	"created_at":     "b.created_at",
	"updated_at":     "b.updated_at",
}

// ValidSortColumn reports whether the given sort key is allowed.
func ValidSortColumn(column string) bool {
	_, ok := sortColumns[column]
	return ok
}

// ValidSortOrder reports whether the given sort direction is allowed.
func ValidSortOrder(order string) bool {
	return order == "asc" || order == "desc"
}

const bookColumns = `
	b.id, b.title, b.author, b.isbn, b.published_date, b.genre_id, b.user_id,
	b.description, b.price, b.cover_image, b.created_at, b.updated_at,
	g.name AS genre_name, u.user_id AS creator_id`

const bookFrom = `
	FROM books b
	LEFT JOIN genres g ON b.genre_id = g.id
	LEFT JOIN users u ON b.user_id = u.id`

// buildBookFilter returns the WHERE clause and its arguments for a listing
// request. The same pair feeds both the paginated select and the count query.
func buildBookFilter(f models.BookFilter) (string, []any) {
	conds := []string{}
	args := []any{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(b.title ILIKE $%d OR b.author ILIKE $%d)", n, n))
	}
	if f.Author != "" {
		args = append(args, "%"+f.Author+"%")
		conds = append(conds, fmt.Sprintf("b.author ILIKE $%d", len(args)))
	}
	if f.Genre != "" {
		args = append(args, "%"+f.Genre+"%")
		conds = append(conds, fmt.Sprintf("g.name ILIKE $%d", len(args)))
	}
	if f.UserID != nil {
		args = append(args, *f.UserID)
		conds = append(conds, fmt.Sprintf("b.user_id = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// BookReadRepository provides read access to the books table.
type BookReadRepository struct {
	db *sqlx.DB
}

// NewBookReadRepository creates a new BookReadRepository.
func NewBookReadRepository(db *sqlx.DB) *BookReadRepository {
	return &BookReadRepository{db: db}
}

// List returns one page of books matching the filter, joined with genre name
// and creator login, plus the total number of matching rows. The filter's
// sort and pagination fields must already be validated and defaulted.
func (r *BookReadRepository) List(ctx context.Context, f models.BookFilter) ([]models.BookDB, int64, error) {
	where, args := buildBookFilter(f)

	countQuery := `SELECT COUNT(*)` + bookFrom + where
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Errorw("book count query failed", "err", err)
		return nil, 0, err
	}

	orderBy, ok := sortColumns[f.SortBy]
	if !ok {
		orderBy = "b.title"
	}
	direction := "ASC"
	if f.SortOrder == "desc" {
		direction = "DESC"
	}

	offset := (f.Page - 1) * f.Limit
	listArgs := append(args, f.Limit, offset)
	listQuery := fmt.Sprintf(`SELECT %s %s %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		bookColumns, bookFrom, where, orderBy, direction, len(args)+1, len(args)+2)

	books := []models.BookDB{}
	if err := r.db.SelectContext(ctx, &books, listQuery, listArgs...); err != nil {
		logger.Log.Errorw("book list query failed", "err", err)
		return nil, 0, err
	}

	return books, total, nil
}

// GetByID returns a single joined book row, or nil if absent.
func (r *BookReadRepository) GetByID(ctx context.Context, id int64) (*models.BookDB, error) {
	query := `SELECT ` + bookColumns + bookFrom + ` WHERE b.id = $1`

	var book models.BookDB
	err := r.db.GetContext(ctx, &book, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("book query failed", "err", err)
		return nil, err
	}
	return &book, nil
}

// ListByUser returns all books owned by a user, newest first.
func (r *BookReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.BookDB, error) {
	query := `SELECT ` + bookColumns + bookFrom + ` WHERE b.user_id = $1 ORDER BY b.created_at DESC`

	books := []models.BookDB{}
	if err := r.db.SelectContext(ctx, &books, query, userID); err != nil {
		logger.Log.Errorw("user books query failed", "err", err)
		return nil, err
	}
	return books, nil
}

// BookWriteRepository provides write access to the books table.
type BookWriteRepository struct {
	db *sqlx.DB
}

// NewBookWriteRepository creates a new BookWriteRepository.
func NewBookWriteRepository(db *sqlx.DB) *BookWriteRepository {
	return &BookWriteRepository{db: db}
}

// Save inserts a new book owned by userID and returns its id.
func (r *BookWriteRepository) Save(ctx context.Context, userID int64, in models.BookInput) (int64, error) {
	const query = `
		INSERT INTO books (title, author, isbn, published_date, genre_id, user_id, description, price, cover_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		in.Title, in.Author, in.ISBN, in.PublishedDate, in.GenreID, userID, in.Description, in.Price, in.CoverImage)
	if err != nil {
		logger.Log.Errorw("failed to insert book", "err", err)
		return 0, err
	}
	return id, nil
}

// Update replaces the writable columns of a book. A nil CoverImage keeps the
// stored cover.
func (r *BookWriteRepository) Update(ctx context.Context, id int64, in models.BookInput) error {
	const query = `
		UPDATE books
		SET title = $1, author = $2, isbn = $3, published_date = $4, genre_id = $5,
		    description = $6, price = $7, cover_image = COALESCE($8, cover_image),
		    updated_at = NOW()
		WHERE id = $9`

	_, err := r.db.ExecContext(ctx, query,
		in.Title, in.Author, in.ISBN, in.PublishedDate, in.GenreID, in.Description, in.Price, in.CoverImage, id)
	if err != nil {
		logger.Log.Errorw("failed to update book", "err", err)
	}
	return err
}

// Delete removes a book row.
func (r *BookWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Log.Errorw("failed to delete book", "err", err)
	}
	return err
}
