package models

import (
	"time"

	"github.com/google/uuid"
)

// Exam belongs to one course; duration is in minutes.
type Exam struct {
	ID         uuid.UUID `json:"id" db:"id"`
	CourseID   uuid.UUID `json:"courseId" db:"course_id"`
	ExamType   string    `json:"examType" db:"exam_type"`
	ExamDate   time.Time `json:"examDate" db:"exam_date"`
	Duration   int       `json:"duration" db:"duration"`
	TotalMarks int       `json:"totalMarks" db:"total_marks"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`

	CourseName *string `json:"courseName,omitempty"`
	CourseCode *string `json:"courseCode,omitempty"`
}
