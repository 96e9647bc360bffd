package dto

import "time"

// CreateEnrollmentRequest represents enrollment creation data
type CreateEnrollmentRequest struct {
	StudentID  string     `json:"studentId" binding:"required,uuid"`
	CourseID   string     `json:"courseId" binding:"required,uuid"`
	Semester   string     `json:"semester" binding:"required,min=1,max=50"`
	EnrolledAt *time.Time `json:"enrolledAt"`
}

// UpdateEnrollmentRequest represents a partial enrollment patch
type UpdateEnrollmentRequest struct {
	StudentID  *string    `json:"studentId" binding:"omitempty,uuid"`
	CourseID   *string    `json:"courseId" binding:"omitempty,uuid"`
	Semester   *string    `json:"semester" binding:"omitempty,min=1,max=50"`
	EnrolledAt *time.Time `json:"enrolledAt"`
}
