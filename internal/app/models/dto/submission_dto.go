package dto

import "time"

// CreateSubmissionRequest represents submission creation data
type CreateSubmissionRequest struct {
	AssignmentID string     `json:"assignmentId" binding:"required,uuid"`
	StudentID    string     `json:"studentId" binding:"required,uuid"`
	Status       string     `json:"status" binding:"required,oneof=pending submitted graded"`
	SubmittedAt  *time.Time `json:"submittedAt"`
	IsLate       bool       `json:"isLate"`
}

// UpdateSubmissionRequest represents a partial submission patch
type UpdateSubmissionRequest struct {
	Status      *string    `json:"status" binding:"omitempty,oneof=pending submitted graded"`
	SubmittedAt *time.Time `json:"submittedAt"`
	IsLate      *bool      `json:"isLate"`
}
