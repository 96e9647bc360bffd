package dto

import "time"

// CreateStudentRequest represents student creation data. Constraints
// mirror the form-level validation of the admin dashboard.
type CreateStudentRequest struct {
	UserID               *string    `json:"userId" binding:"omitempty,uuid"`
	FirstName            string     `json:"firstName" binding:"required,min=2,max=50"`
	LastName             string     `json:"lastName" binding:"required,min=2,max=50"`
	DisplayName          *string    `json:"displayName" binding:"omitempty,min=2,max=100"`
	Email                string     `json:"email" binding:"required,email"`
	Phone                *string    `json:"phone"`
	Gender               *string    `json:"gender"`
	DateOfBirth          *time.Time `json:"dateOfBirth"`
	PlaceOfBirth         *string    `json:"placeOfBirth"`
	Nationality          *string    `json:"nationality"`
	CurrentAddress       *string    `json:"currentAddress"`
	PermanentAddress     *string    `json:"permanentAddress"`
	GuardianName         *string    `json:"guardianName"`
	GuardianRelationship *string    `json:"guardianRelationship"`
	GuardianPhone        *string    `json:"guardianPhone"`
	GuardianEmail        *string    `json:"guardianEmail" binding:"omitempty,email"`
	Batch                int        `json:"batch" binding:"required,min=1900"`
	Program              string     `json:"program" binding:"required,min=1"`
}

// UpdateStudentRequest represents a partial student patch; only provided
// fields are validated and written.
type UpdateStudentRequest struct {
	UserID               *string    `json:"userId" binding:"omitempty,uuid"`
	FirstName            *string    `json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName             *string    `json:"lastName" binding:"omitempty,min=2,max=50"`
	DisplayName          *string    `json:"displayName" binding:"omitempty,min=2,max=100"`
	Email                *string    `json:"email" binding:"omitempty,email"`
	Phone                *string    `json:"phone"`
	Gender               *string    `json:"gender"`
	DateOfBirth          *time.Time `json:"dateOfBirth"`
	PlaceOfBirth         *string    `json:"placeOfBirth"`
	Nationality          *string    `json:"nationality"`
	CurrentAddress       *string    `json:"currentAddress"`
	PermanentAddress     *string    `json:"permanentAddress"`
	GuardianName         *string    `json:"guardianName"`
	GuardianRelationship *string    `json:"guardianRelationship"`
	GuardianPhone        *string    `json:"guardianPhone"`
	GuardianEmail        *string    `json:"guardianEmail" binding:"omitempty,email"`
	Batch                *int       `json:"batch" binding:"omitempty,min=1900"`
	Program              *string    `json:"program" binding:"omitempty,min=1"`
}
