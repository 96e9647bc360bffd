package dto

import "time"

// CreateGradeRequest represents grade creation data. At most one of
// assignmentId/examId may be set; the letter grade is derived
// server-side from the marks.
type CreateGradeRequest struct {
	CourseID     string     `json:"courseId" binding:"required,uuid"`
	StudentID    string     `json:"studentId" binding:"required,uuid"`
	AssignmentID *string    `json:"assignmentId" binding:"omitempty,uuid"`
	ExamID       *string    `json:"examId" binding:"omitempty,uuid"`
	Marks        float64    `json:"marks" binding:"min=0,max=100"`
	GradedAt     *time.Time `json:"gradedAt"`
}

// UpdateGradeRequest represents a partial grade patch
type UpdateGradeRequest struct {
	AssignmentID *string    `json:"assignmentId" binding:"omitempty,uuid"`
	ExamID       *string    `json:"examId" binding:"omitempty,uuid"`
	Marks        *float64   `json:"marks" binding:"omitempty,min=0,max=100"`
	GradedAt     *time.Time `json:"gradedAt"`
}
