package models

import (
	"time"

	"github.com/google/uuid"
)

// Admin defines the admin model based on the 'admins' table. Exactly one
// admin row may reference a given user.
type Admin struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	FirstName   string    `json:"firstName" db:"first_name"`
	LastName    string    `json:"lastName" db:"last_name"`
	DisplayName *string   `json:"displayName,omitempty" db:"display_name"`
	Email       string    `json:"email" db:"email"`
	Phone       *string   `json:"phone,omitempty" db:"phone"`
	Department  *string   `json:"department,omitempty" db:"department"`
	AccessLevel *string   `json:"accessLevel,omitempty" db:"access_level"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}
