package models

import (
	"time"

	"github.com/google/uuid"
)

// Teacher defines the teacher model based on the 'teachers' table.
type Teacher struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      *uuid.UUID `json:"userId,omitempty" db:"user_id"`
	FirstName   string     `json:"firstName" db:"first_name"`
	LastName    string     `json:"lastName" db:"last_name"`
	DisplayName *string    `json:"displayName,omitempty" db:"display_name"`
	Email       string     `json:"email" db:"email"`
	Phone       *string    `json:"phone,omitempty" db:"phone"`
	Gender      *string    `json:"gender,omitempty" db:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	Department  string     `json:"department" db:"department"`
	Designation string     `json:"designation" db:"designation"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName resolves the teacher's display name with the display-name ->
// "first last" fallback chain.
func (t *Teacher) FullName() string {
	if t.DisplayName != nil && *t.DisplayName != "" {
		return *t.DisplayName
	}
	return t.FirstName + " " + t.LastName
}
