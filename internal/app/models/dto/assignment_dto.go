package dto

import "time"

// CreateAssignmentRequest represents assignment creation data
type CreateAssignmentRequest struct {
	CourseID    string    `json:"courseId" binding:"required,uuid"`
	Title       string    `json:"title" binding:"required,min=3,max=200"`
	Description string    `json:"description" binding:"required,min=1,max=2000"`
	DueDate     time.Time `json:"dueDate" binding:"required"`
	TotalMarks  int       `json:"totalMarks" binding:"required,min=1,max=1000"`
}

// UpdateAssignmentRequest represents a partial assignment patch
type UpdateAssignmentRequest struct {
	CourseID    *string    `json:"courseId" binding:"omitempty,uuid"`
	Title       *string    `json:"title" binding:"omitempty,min=3,max=200"`
	Description *string    `json:"description" binding:"omitempty,min=1,max=2000"`
	DueDate     *time.Time `json:"dueDate"`
	TotalMarks  *int       `json:"totalMarks" binding:"omitempty,min=1,max=1000"`
}
