package models

import (
	"time"

	"github.com/google/uuid"
)

// Submission belongs to one assignment and one student.
type Submission struct {
	ID           uuid.UUID        `json:"id" db:"id"`
	AssignmentID uuid.UUID        `json:"assignmentId" db:"assignment_id"`
	StudentID    uuid.UUID        `json:"studentId" db:"student_id"`
	Status       SubmissionStatus `json:"status" db:"status" example:"submitted"`
	SubmittedAt  *time.Time       `json:"submittedAt,omitempty" db:"submitted_at"`
	IsLate       bool             `json:"isLate" db:"is_late"`
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time        `json:"updatedAt" db:"updated_at"`

	StudentName     *string `json:"studentName,omitempty"`
	AssignmentTitle *string `json:"assignmentTitle,omitempty"`
}
