package models

import (
	"time"

	"github.com/google/uuid"
)

// Student defines the student model based on the 'students' table.
// Personal, contact and guardian fields plus the academic pair
// (program, batch year).
type Student struct {
	ID                   uuid.UUID  `json:"id" db:"id"`
	UserID               *uuid.UUID `json:"userId,omitempty" db:"user_id"`
	FirstName            string     `json:"firstName" db:"first_name"`
	LastName             string     `json:"lastName" db:"last_name"`
	DisplayName          *string    `json:"displayName,omitempty" db:"display_name"`
	Email                string     `json:"email" db:"email"`
	Phone                *string    `json:"phone,omitempty" db:"phone"`
	Gender               *string    `json:"gender,omitempty" db:"gender"`
	DateOfBirth          *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	PlaceOfBirth         *string    `json:"placeOfBirth,omitempty" db:"place_of_birth"`
	Nationality          *string    `json:"nationality,omitempty" db:"nationality"`
	CurrentAddress       *string    `json:"currentAddress,omitempty" db:"current_address"`
	PermanentAddress     *string    `json:"permanentAddress,omitempty" db:"permanent_address"`
	GuardianName         *string    `json:"guardianName,omitempty" db:"guardian_name"`
	GuardianRelationship *string    `json:"guardianRelationship,omitempty" db:"guardian_relationship"`
	GuardianPhone        *string    `json:"guardianPhone,omitempty" db:"guardian_phone"`
	GuardianEmail        *string    `json:"guardianEmail,omitempty" db:"guardian_email"`
	Batch                int        `json:"batch" db:"batch"`
	Program              string     `json:"program" db:"program"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName resolves the student's display name with the display-name ->
// "first last" fallback chain.
func (s *Student) FullName() string {
	if s.DisplayName != nil && *s.DisplayName != "" {
		return *s.DisplayName
	}
	return s.FirstName + " " + s.LastName
}
