package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table. A user is the
// identity-provider-linked account; at most one profile row (student,
// teacher or admin) references it.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password_hash"` // hashed, excluded from JSON
	Role      Role      `json:"role" db:"role" example:"student"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
