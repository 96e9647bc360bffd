package dto

import "time"

// CreateExamRequest represents exam creation data. Duration is minutes.
type CreateExamRequest struct {
	CourseID   string    `json:"courseId" binding:"required,uuid"`
	ExamType   string    `json:"examType" binding:"required,min=2,max=50"`
	ExamDate   time.Time `json:"examDate" binding:"required"`
	Duration   int       `json:"duration" binding:"required,min=1,max=600"`
	TotalMarks int       `json:"totalMarks" binding:"required,min=1,max=1000"`
}

// UpdateExamRequest represents a partial exam patch
type UpdateExamRequest struct {
	CourseID   *string    `json:"courseId" binding:"omitempty,uuid"`
	ExamType   *string    `json:"examType" binding:"omitempty,min=2,max=50"`
	ExamDate   *time.Time `json:"examDate"`
	Duration   *int       `json:"duration" binding:"omitempty,min=1,max=600"`
	TotalMarks *int       `json:"totalMarks" binding:"omitempty,min=1,max=1000"`
}
