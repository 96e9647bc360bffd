package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment belongs to one course and carries a due date and a
// total-marks ceiling.
type Assignment struct {
	ID          uuid.UUID `json:"id" db:"id"`
	CourseID    uuid.UUID `json:"courseId" db:"course_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	DueDate     time.Time `json:"dueDate" db:"due_date"`
	TotalMarks  int       `json:"totalMarks" db:"total_marks"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`

	CourseName *string `json:"courseName,omitempty"`
	CourseCode *string `json:"courseCode,omitempty"`
}
