package models

import "time"

// BookDB represents a book record joined with its genre name and the owning
// user's login handle.
type BookDB struct {
	ID            int64      `json:"id" db:"id"`                         // Primary key
	Title         string     `json:"title" db:"title"`                   // Book title
	Author        string     `json:"author" db:"author"`                 // Book author
	ISBN          *string    `json:"isbn" db:"isbn"`                     // Optional ISBN
	PublishedDate *time.Time `json:"published_date" db:"published_date"` // Optional publication date
	GenreID       int64      `json:"genre_id" db:"genre_id"`             // FK to genres
	GenreName     *string    `json:"genre_name" db:"genre_name"`         // Joined genre name
	UserID        int64      `json:"user_id" db:"user_id"`               // FK to the owning user
	CreatorLogin  *string    `json:"creator_id" db:"creator_id"`         // Joined owner login handle
	Description   *string    `json:"description,omitempty" db:"description"`
	Price         *float64   `json:"price,omitempty" db:"price"`
	CoverImage    *string    `json:"cover_image" db:"cover_image"` // Image URL or data URI
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// BookInput carries the writable fields of a book.
type BookInput struct {
	Title         string
	Author        string
	ISBN          *string
	PublishedDate *time.Time
	GenreID       int64
	Description   *string
	Price         *float64
	CoverImage    *string
}

// BookFilter describes a paginated book listing request. Zero-valued fields
// are omitted from the predicate rather than matched as wildcards.
type BookFilter struct {
	Search    string // Case-insensitive substring over title and author
	Author    string // Case-insensitive substring over author
	Genre     string // Case-insensitive substring over the genre name
	UserID    *int64 // Owning user
	SortBy    string // Sort column, validated against an allow-list
	SortOrder string // "asc" or "desc"
	Page      int
	Limit     int
}
