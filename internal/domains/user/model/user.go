package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account. Guest users (e.g. the shared "Anonymous" author)
// have no email and no password hash and cannot log in.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        *string   `json:"email"`
	PasswordHash *string   `json:"-"` // never exposed in JSON

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsGuest reports whether this account was created without credentials.
func (u *User) IsGuest() bool {
	return u.PasswordHash == nil
}

// PublicUser is the projection returned to clients.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    *string   `json:"email"`
}

func (u *User) ToPublic() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
