package dto

import "time"

// CreateTeacherRequest represents teacher creation data
type CreateTeacherRequest struct {
	UserID      *string    `json:"userId" binding:"omitempty,uuid"`
	FirstName   string     `json:"firstName" binding:"required,min=2,max=50"`
	LastName    string     `json:"lastName" binding:"required,min=2,max=50"`
	DisplayName *string    `json:"displayName" binding:"omitempty,min=2,max=100"`
	Email       string     `json:"email" binding:"required,email"`
	Phone       *string    `json:"phone"`
	Gender      *string    `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Department  string     `json:"department" binding:"required,min=2,max=100"`
	Designation string     `json:"designation" binding:"required,min=2,max=100"`
}

// UpdateTeacherRequest represents a partial teacher patch
type UpdateTeacherRequest struct {
	UserID      *string    `json:"userId" binding:"omitempty,uuid"`
	FirstName   *string    `json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName    *string    `json:"lastName" binding:"omitempty,min=2,max=50"`
	DisplayName *string    `json:"displayName" binding:"omitempty,min=2,max=100"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	Phone       *string    `json:"phone"`
	Gender      *string    `json:"gender"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	Department  *string    `json:"department" binding:"omitempty,min=2,max=100"`
	Designation *string    `json:"designation" binding:"omitempty,min=2,max=100"`
}
