package models

import "time"

// UserDB represents a user record in the database. The login column is named
// user_id for historical reasons; id is the numeric primary key.
type UserDB struct {
	ID           int64      `json:"id" db:"id"`                                           // Primary key
	Email        string     `json:"email" db:"email"`                                     // Unique email
	Login        string     `json:"user_id" db:"user_id"`                                 // Unique login handle
	Password     string     `json:"-" db:"password"`                                      // Bcrypt digest, never serialized
	AvatarURL    *string    `json:"avatar_url" db:"avatar_url"`                           // Image URL or data URI
	ResetToken   *string    `json:"-" db:"reset_password_token"`                          // Sha256 of the reset token
	ResetExpires *time.Time `json:"-" db:"reset_password_expires"`                        // Reset token expiry
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`                           // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`                           // Last update timestamp
}

// UserPublic is the projection of a user that leaves the service layer.
type UserPublic struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Login     string    `json:"user_id"`
	AvatarURL *string   `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Public returns the public projection of a user.
func (u *UserDB) Public() *UserPublic {
	return &UserPublic{
		ID:        u.ID,
		Email:     u.Email,
		Login:     u.Login,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
