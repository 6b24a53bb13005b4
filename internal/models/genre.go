package models

import "time"

// GenreDB represents a genre record in the database.
type GenreDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Name      string    `json:"name" db:"name"`             // Unique name
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
